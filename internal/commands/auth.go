package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"flexzone/internal/config"
	"flexzone/internal/models"
	"flexzone/internal/portal"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var (
	loginEmail      string
	loginOTPPayload string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the member portal",
	Long: `Exchange a verified email for a session token.

The email is verified by the OTP provider. Pass the payload it returned with
--otp-payload, or the verified email directly with --email.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		login := portal.NewLogin(newClient(session), session)

		var state portal.LoginState
		switch {
		case loginOTPPayload != "":
			data, err := os.ReadFile(loginOTPPayload)
			if err != nil {
				return fmt.Errorf("error reading OTP payload: %w", err)
			}
			var user models.OTPUser
			if err := json.Unmarshal(data, &user); err != nil {
				return fmt.Errorf("error parsing OTP payload: %w", err)
			}
			state, err = login.HandleOTPResult(cmd.Context(), &user)
			if err != nil && state.Error == "" {
				return err
			}
		default:
			email := loginEmail
			if email == "" {
				email = prompt("Email", globalConfig.Email)
			}
			if email == "" {
				fmt.Println("An email address is required")
				return nil
			}
			state, err = login.LoginWithEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
		}

		if state.Error != "" {
			color.Red(state.Error)
			return nil
		}

		rememberEmail(state.Email)

		switch state.Redirect {
		case portal.RouteRegister:
			fmt.Printf("No account found for %s\n", state.Email)
			color.Yellow("Complete your registration: flexzone register --email %s", state.Email)
		case portal.RouteDashboard:
			color.Green("Successfully logged in as %s", state.Email)
			fmt.Println("Run 'flexzone dashboard' to load your membership details.")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the member portal",
	Long:  "Remove the saved session token, member ID and profile snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		if _, err := portal.NewShell(session).Logout(); err != nil {
			return fmt.Errorf("error during logout: %w", err)
		}

		fmt.Println("Successfully logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current member information",
	Long:  "Display the stored session without contacting the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		current := session.Session()
		if !current.LoggedIn() {
			fmt.Println("You are not logged in")
			return nil
		}

		if profile := portal.NewShell(session).Member(); profile != nil {
			fmt.Printf("Logged in as: %s <%s>\n", profile.FullName, profile.Email)
		} else {
			fmt.Println("You are logged in, but member details have not been loaded yet")
		}

		if current.MemberID != "" {
			fmt.Printf("Member ID: %s\n", current.MemberID)
		}

		describeToken(current.Token)
		fmt.Printf("Server: %s\n", globalConfig.ServerURL)
		return nil
	},
}

// describeToken prints what the token claims about itself. The signature is
// not checked here; the backend decides whether the token is valid.
func describeToken(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			color.Yellow("Token expired at %s", exp.Local().Format(time.RFC1123))
		} else {
			fmt.Printf("Token expires: %s\n", exp.Local().Format(time.RFC1123))
		}
	}
}

func rememberEmail(email string) {
	if email == "" {
		return
	}
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return
	}
	cfg.Email = email
	_ = config.SaveGlobalConfig(cfg)
}

// prompt reads one line from stdin, returning fallback when the line is blank
func prompt(label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}

	line, _ := stdin.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Verified email address")
	loginCmd.Flags().StringVar(&loginOTPPayload, "otp-payload", "", "Path to the JSON payload returned by the OTP provider")
}
