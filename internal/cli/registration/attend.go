package registration

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
)

// AttendCmd returns the registration attend subcommand
func AttendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attend",
		Short: "Mark a registered student as present",
		Args:  cobra.NoArgs,
		RunE:  runAttend,
	}

	addPairFlags(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runAttend(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.RegistrationService.MarkAttendance(ctx, eventID, studentID); err != nil {
		return formatter.FailWithSuggestion(err,
			fmt.Sprintf("register first: eventreg registration add --event=%d --student=%s", eventID, studentID))
	}

	switch {
	case quietMode:
		return nil
	case jsonOutput:
		return formatter.JSONData(map[string]interface{}{
			"event_id":   eventID,
			"student_id": studentID,
			"status":     "present",
		})
	}

	fmt.Printf("✓ Student %s marked present at event %d\n", studentID, eventID)
	return nil
}
