package commands

import (
	"errors"
	"fmt"
	"strings"

	"flexzone/internal/portal"
	"flexzone/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a one-screen summary of your membership",
	Long:  `Show session, membership, trainer and renewal status together, loading each view once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}
		client := newClient(session)

		dashboard, err := portal.NewDashboard(client, session).Load(cmd.Context())
		if errors.Is(err, portal.ErrViewClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch dashboard.Phase {
		case portal.PhaseLoggedOut:
			fmt.Println("You are not logged in")
			printRedirect(dashboard.Redirect)
			return nil
		case portal.PhaseErrored:
			color.Red(dashboard.Error)
			return nil
		}

		profile := dashboard.Profile
		fmt.Printf("Member %s (%s)\n", profile.FullName, profile.MembershipID)
		fmt.Println()

		parts := []string{}
		if profile.IsActive() {
			color.Green("\tmembership: active %s", profile.MembershipPlan)
		} else {
			color.Red("\tmembership: inactive")
			parts = append(parts, "membership inactive")
		}

		trainer, err := portal.NewTrainerView(client, session).Load(cmd.Context())
		if err != nil {
			return nil
		}
		switch trainer.Outcome {
		case portal.TrainerAssigned:
			if trainer.AvailableToday {
				color.Green("\ttrainer:    %s (in today)", trainer.Trainer.TrainerName)
			} else {
				color.Yellow("\ttrainer:    %s (not in today)", trainer.Trainer.TrainerName)
			}
		case portal.TrainerFailed:
			color.Red("\ttrainer:    %s", trainer.Message)
		default:
			fmt.Printf("\ttrainer:    %s\n", strings.ToLower(trainer.Message))
			parts = append(parts, "no trainer")
		}

		renewal, err := portal.NewNotifications(client, session).Load(cmd.Context())
		if err != nil {
			return nil
		}
		switch {
		case renewal.Error != "":
			color.Red("\trenewal:    %s", renewal.Error)
		case renewal.Empty:
			fmt.Println("\trenewal:    none scheduled")
			parts = append(parts, "no renewal date")
		default:
			color.Yellow("\trenewal:    %s", util.FormatDate(renewal.RenewalDate))
		}
		fmt.Println()

		// Summary
		if len(parts) == 0 {
			fmt.Println("All set")
		} else {
			fmt.Printf("%s\n", strings.Join(parts, ", "))
			if !profile.IsActive() {
				fmt.Println("  (use \"flexzone plans\" to pick a membership plan)")
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
