// Package registration holds all cli commands related to event registrations
//
// e.g., eventreg registration ...
package registration

import (
	"log"

	"github.com/spf13/cobra"
)

// RegistrationCmd returns the registration parent command
func RegistrationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "registration",
		Aliases: []string{"reg"},
		Short:   "Register students for events and record attendance",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(AttendCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// addPairFlags adds the --event/--student flags shared by add and attend
func addPairFlags(cmd *cobra.Command) {
	cmd.Flags().Int("event", 0, "Event ID (required)")
	cmd.Flags().String("student", "", "Student ID (required)")
	for _, name := range []string{"event", "student"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}
}
