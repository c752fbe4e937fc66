package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"flexzone/internal/portal"
	"flexzone/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var trainerCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Show your assigned trainer",
	Long:  "Show the trainer assigned to you, their weekly availability and whether they are in today",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		state, err := portal.NewTrainerView(newClient(session), session).Load(cmd.Context())
		if errors.Is(err, portal.ErrViewClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch state.Outcome {
		case portal.TrainerNone, portal.TrainerMemberNotFound:
			fmt.Println(state.Message)
			return nil
		case portal.TrainerFailed:
			color.Red(state.Message)
			if state.Retryable {
				fmt.Println("Run 'flexzone trainer' again to retry.")
			}
			printRedirect(state.Redirect)
			return nil
		}

		trainer := state.Trainer
		fmt.Printf("Trainer:        %s\n", trainer.TrainerName)
		fmt.Printf("Specialization: %s\n", util.OrDash(trainer.Specialization))
		fmt.Printf("Phone:          %s\n", util.OrDash(trainer.PhoneNumber))
		if trainer.AssignedMembers != nil {
			fmt.Printf("Members:        %d\n", *trainer.AssignedMembers)
		}

		if state.AvailableToday {
			color.Green("Available today")
		} else {
			color.Yellow("Not available today")
		}

		schedule := trainer.Availability.Schedule()
		if len(schedule) == 0 {
			fmt.Println("No weekly schedule published.")
			return nil
		}

		fmt.Println()
		fmt.Println("Weekly availability:")
		for _, day := range weekdays() {
			available, ok := schedule[day]
			if !ok {
				continue
			}
			mark := "no"
			if available {
				mark = "yes"
			}
			fmt.Printf("  %-10s %s\n", util.Capitalize(day), mark)
		}
		for _, day := range extraDays(schedule) {
			fmt.Printf("  %-10s %v\n", day, schedule[day])
		}
		return nil
	},
}

// weekdays returns the lowercase weekday names starting from Monday
func weekdays() []string {
	days := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		days = append(days, strings.ToLower(time.Weekday(i%7).String()))
	}
	return days
}

// extraDays returns schedule keys that are not lowercase weekday names
func extraDays(schedule map[string]bool) []string {
	known := map[string]bool{}
	for _, day := range weekdays() {
		known[day] = true
	}

	var extra []string
	for day := range schedule {
		if !known[day] {
			extra = append(extra, day)
		}
	}
	sort.Strings(extra)
	return extra
}

func init() {
	rootCmd.AddCommand(trainerCmd)
}
