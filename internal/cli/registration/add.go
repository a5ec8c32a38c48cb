package registration

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
)

// AddCmd returns the registration add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a student for an event",
		Long: `Register a student for an event. A student can register for an event once.

Examples:
  eventreg registration add --event=3 --student=2024-0001
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	addPairFlags(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (registration ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	eventID, _ := cmd.Flags().GetInt("event")
	studentID, _ := cmd.Flags().GetString("student")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	id, err := cliInstance.App.RegistrationService.Register(ctx, eventID, studentID)
	if err != nil {
		return formatter.Fail(err)
	}

	switch {
	case quietMode:
		fmt.Printf("%d\n", id)
		return nil
	case jsonOutput:
		return formatter.JSONData(map[string]interface{}{
			"registration_id": id,
			"event_id":        eventID,
			"student_id":      studentID,
		})
	}

	fmt.Printf("✓ Student %s registered for event %d (registration %d)\n", studentID, eventID, id)
	return nil
}
