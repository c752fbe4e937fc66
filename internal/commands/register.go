package commands

import (
	"bufio"
	"fmt"
	"os"

	"flexzone/internal/models"
	"flexzone/internal/portal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var stdin = bufio.NewReader(os.Stdin)

var registerForm = models.NewRegistrationForm("")

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a member account",
	Long: `Register a new member. Fields not passed as flags are prompted for.
Run this after 'flexzone login' reports that no account exists for your email.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		form := registerForm
		if form.Email == "" {
			form.Email = globalConfig.Email
		}

		promptField(cmd, "full-name", "Full name", &form.FullName)
		promptField(cmd, "email", "Email", &form.Email)
		promptField(cmd, "age", "Age", &form.Age)
		promptField(cmd, "gender", "Gender (male/female)", &form.Gender)
		promptField(cmd, "phone", "Phone number", &form.PhoneNumber)
		promptField(cmd, "emergency-contact", "Emergency contact", &form.EmergencyContact)
		promptField(cmd, "address", "Address", &form.Address)
		promptField(cmd, "pincode", "Pincode", &form.Pincode)
		promptField(cmd, "health-condition", "Health condition", &form.HealthCondition)

		state, err := portal.NewLogin(newClient(session), session).Register(cmd.Context(), form)
		if err != nil {
			return err
		}

		if state.Error != "" {
			color.Red(state.Error)
			for _, fe := range state.FieldErrors {
				fmt.Printf("  - %s\n", fe.Message)
			}
			return nil
		}

		rememberEmail(form.Email)
		color.Green("Registration complete. Welcome to FlexZone, %s!", form.FullName)
		fmt.Println("Run 'flexzone dashboard' to load your membership details.")
		return nil
	},
}

// promptField asks for a value unless the flag was given on the command line
func promptField(cmd *cobra.Command, flag, label string, value *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	*value = prompt(label, *value)
}

func init() {
	rootCmd.AddCommand(registerCmd)

	flags := registerCmd.Flags()
	flags.StringVar(&registerForm.FullName, "full-name", "", "Full name")
	flags.StringVar(&registerForm.Email, "email", "", "Verified email address")
	flags.StringVar(&registerForm.Age, "age", "", "Age in years")
	flags.StringVar(&registerForm.Gender, "gender", registerForm.Gender, "Gender (male or female)")
	flags.StringVar(&registerForm.PhoneNumber, "phone", "", "Phone number")
	flags.StringVar(&registerForm.EmergencyContact, "emergency-contact", "", "Emergency contact number")
	flags.StringVar(&registerForm.Address, "address", "", "Postal address")
	flags.StringVar(&registerForm.Pincode, "pincode", "", "Postal code")
	flags.StringVar(&registerForm.HealthCondition, "health-condition", registerForm.HealthCondition, "Health condition")
}
