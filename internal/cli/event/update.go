package event

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/models"
	eventservice "github.com/thenoetrevino/eventreg/internal/services/event"
)

// UpdateCmd returns the event update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an event",
		Long: `Update one or more fields of an event. Fields not given keep their value.

Examples:
  eventreg event update 3 --location="Auditorium"
  eventreg event update 3 --date=2026-04-02 --name="Tech Talk (moved)"
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New event name")
	cmd.Flags().String("date", "", "New event date, YYYY-MM-DD")
	cmd.Flags().String("location", "", "New event location")
	cmd.Flags().String("description", "", "New event description")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	eventID, err := cli.ParseEventID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	req := eventservice.UpdateEventRequest{ID: eventID}
	req.Name = changed(cmd, "name")
	req.Date = changed(cmd, "date")
	req.Location = changed(cmd, "location")
	req.Description = changed(cmd, "description")

	if req.Name == nil && req.Date == nil && req.Location == nil && req.Description == nil {
		return formatter.FailWithSuggestion(
			fmt.Errorf("%w: nothing to update", models.ErrInvalidInput),
			"pass at least one of --name, --date, --location, --description")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	event, err := cliInstance.App.EventService.UpdateEvent(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(event)
	}

	fmt.Printf("✓ Event %d updated successfully\n", event.ID)
	return nil
}

// changed returns the flag's value only when it was set on the command line
func changed(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
