package commands

import (
	"errors"
	"fmt"

	"flexzone/internal/models"
	"flexzone/internal/portal"
	"flexzone/internal/util"
	"flexzone/pkg/logger"

	"github.com/fatih/color"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkoutPlan string
	checkoutOpen bool
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List membership plans and prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		checkout := portal.NewCheckout(newClient(session), session)
		if err := checkout.Load(cmd.Context()); err != nil {
			return reportCheckoutError(err)
		}

		fmt.Println("Membership plans:")
		for _, option := range checkout.Options() {
			fmt.Printf("  %-10s %-8s %s\n", option.Plan.Title(), util.FormatRupees(option.Price), option.Description)
		}
		fmt.Println()
		fmt.Println("Buy a plan with: flexzone checkout --plan <monthly|quarterly|annually>")
		return nil
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Buy a membership plan",
	Long: `Create a payment order for a membership plan and print the payment page URL.
Pass --open to open it in your browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		checkout := portal.NewCheckout(newClient(session), session)
		if err := checkout.Load(cmd.Context()); err != nil {
			return reportCheckoutError(err)
		}

		if checkoutPlan != "" {
			if err := checkout.Select(checkoutPlan); err != nil {
				color.Red("Unknown plan %q. Choose monthly, quarterly or annually.", checkoutPlan)
				return nil
			}
		}

		url, err := checkout.Submit(cmd.Context())
		if err != nil {
			return reportCheckoutError(err)
		}

		plan := checkout.Selected()
		color.Green("Payment order created for the %s plan", plan.Title())
		fmt.Printf("Complete your payment at: %s\n", url)

		if checkoutOpen {
			if err := browser.OpenURL(url); err != nil {
				logger.Warn("Failed to open browser", zap.Error(err))
				fmt.Println("Could not open a browser; open the URL above manually.")
			}
		}
		return nil
	},
}

// reportCheckoutError prints the member-facing text for a plan or checkout failure
func reportCheckoutError(err error) error {
	var checkoutErr *portal.CheckoutError
	switch {
	case errors.Is(err, portal.ErrViewClosed):
		return nil
	case errors.As(err, &checkoutErr):
		color.Red(checkoutErr.Message)
	case errors.Is(err, models.ErrMissingMemberID):
		color.Red(portal.MissingMemberMessage)
		fmt.Println("Run 'flexzone dashboard' after logging in to load your member ID.")
	case errors.Is(err, models.ErrNoPlanSelected):
		color.Red("Please select a membership plan with --plan")
	case errors.Is(err, models.ErrInvalidPrice):
		color.Red("Invalid price for the selected plan")
	case errors.Is(err, models.ErrMissingRedirectURL):
		color.Red(portal.CheckoutErrorMessage)
	case errors.Is(err, models.ErrCheckoutInProgress):
		color.Yellow("A payment order is already being created")
	default:
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(checkoutCmd)

	checkoutCmd.Flags().StringVar(&checkoutPlan, "plan", "", "Plan to buy (monthly, quarterly or annually)")
	checkoutCmd.Flags().BoolVar(&checkoutOpen, "open", false, "Open the payment page in the browser")
}
