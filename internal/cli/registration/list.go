package registration

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/styles"
)

// ListCmd returns the registration list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an event's registrations",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().Int("event", 0, "Event ID (required)")
	if err := cmd.MarkFlagRequired("event"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (student IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	eventID, _ := cmd.Flags().GetInt("event")
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

	regs, err := cliInstance.App.RegistrationService.GetEventRegistrations(ctx, eventID)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		for _, r := range regs {
			fmt.Println(r.StudentID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.JSONData(regs)
	}

	if len(regs) == 0 {
		fmt.Printf("No registrations for event %d\n", eventID)
		return nil
	}

	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.StudentID,
			r.FirstName + " " + r.LastName,
			r.Department,
			strconv.Itoa(r.YearLevel),
			styles.RenderStatus(r.Attended),
		})
	}
	fmt.Println(styles.RenderTable([]string{"Reg", "Student", "Name", "Department", "Year", "Status"}, rows))
	return nil
}
