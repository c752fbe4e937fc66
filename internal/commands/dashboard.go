package commands

import (
	"errors"
	"fmt"

	"flexzone/internal/portal"
	"flexzone/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"home", "profile"},
	Short:   "Show your membership and profile",
	Long:    "Load the member profile, the membership status and, for paid members, the gym entry barcode",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		state, err := portal.NewDashboard(newClient(session), session).Load(cmd.Context())
		if errors.Is(err, portal.ErrViewClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch state.Phase {
		case portal.PhaseLoggedOut:
			printRedirect(state.Redirect)
			return nil
		case portal.PhaseErrored:
			color.Red(state.Error)
			return nil
		}

		profile := state.Profile
		fmt.Printf("Welcome, %s\n", profile.FullName)
		fmt.Println(profile.Email)
		fmt.Println()

		fmt.Println("Membership Details:")
		if profile.IsActive() {
			color.Green("  Status:  Active")
		} else {
			color.Red("  Status:  Inactive")
		}
		fmt.Printf("  ID:      %s\n", profile.MembershipID)
		if profile.MembershipPlan != "" {
			fmt.Printf("  Plan:    %s\n", profile.MembershipPlan)
		}
		if profile.PaymentStatus != "" {
			fmt.Printf("  Payment: %s\n", profile.PaymentStatus)
		}
		switch {
		case state.Barcode != "":
			fmt.Printf("  Barcode: %s\n", state.Barcode)
		case state.BarcodeUnavailable:
			color.Yellow("  Barcode not available")
		}
		fmt.Println()

		fmt.Println("Personal Information:")
		fmt.Printf("  Age:     %s\n", util.OrDash(profile.Age.String()))
		fmt.Printf("  Gender:  %s\n", util.OrDash(profile.Gender))
		fmt.Printf("  Phone:   %s\n", util.OrDash(profile.PhoneNumber))
		fmt.Printf("  Address: %s\n", util.OrDash(profile.Address))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
