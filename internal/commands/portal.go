package commands

import (
	"fmt"

	"flexzone/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var portalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Open the interactive member portal",
	Long:  "Browse your dashboard, payments, trainer and membership plans in a terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		model := ui.NewModel(cmd.Context(), globalConfig, newClient(session), session)
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running portal: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portalCmd)
}
