package commands

import (
	"errors"
	"fmt"

	"flexzone/internal/portal"
	"flexzone/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:     "payments",
	Aliases: []string{"payment-history"},
	Short:   "Show your latest payment",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		state, err := portal.NewPaymentHistory(newClient(session), session).Load(cmd.Context())
		if errors.Is(err, portal.ErrViewClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		if state.Error != "" {
			color.Red(state.Error)
			printRedirect(state.Redirect)
			return nil
		}
		if state.Empty {
			fmt.Println(portal.NoPaymentMessage)
			return nil
		}

		record := state.Record
		fmt.Println("Payment History:")
		fmt.Printf("  Name:           %s\n", util.OrDash(record.FullName))
		fmt.Printf("  Email:          %s\n", util.OrDash(record.Email))
		fmt.Printf("  Plan:           %s\n", util.OrDash(record.MembershipPlan))
		fmt.Printf("  Amount Paid:    %s\n", util.FormatRupees(record.AmountPaid))
		fmt.Printf("  Payment Date:   %s\n", util.OrDash(util.FormatDate(record.PaymentDate)))
		fmt.Printf("  Renewal Date:   %s\n", util.OrDash(util.FormatDate(record.RenewalDate)))
		fmt.Printf("  Transaction ID: %s\n", util.OrDash(record.TransactionID))
		if record.PaymentStatus == "completed" {
			color.Green("  Status:         %s", record.PaymentStatus)
		} else {
			color.Yellow("  Status:         %s", util.OrDash(record.PaymentStatus))
		}
		return nil
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show membership renewal reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		state, err := portal.NewNotifications(newClient(session), session).Load(cmd.Context())
		if errors.Is(err, portal.ErrViewClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case state.Error != "":
			color.Red(state.Error)
			printRedirect(state.Redirect)
		case state.Empty:
			fmt.Println(portal.NoRenewalDateMessage)
		default:
			color.Yellow("Your membership is due for renewal on %s", util.FormatDate(state.RenewalDate))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
	rootCmd.AddCommand(notificationsCmd)
}
