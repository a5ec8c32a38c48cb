// Package student holds all cli commands related to the student roster
//
// e.g., eventreg student ...
package student

import (
	"github.com/spf13/cobra"
)

// StudentCmd returns the student parent command
func StudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage the student roster",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(ExportCmd())

	return cmd
}
