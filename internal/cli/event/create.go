// Package event holds all cli commands related to events
//
// e.g., eventreg event ...
package event

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	eventservice "github.com/thenoetrevino/eventreg/internal/services/event"
)

// CreateCmd returns the event create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new event",
		Long: `Create a new event.

Examples:
  # Human-readable output
  eventreg event create --name="Tech Talk" --date=2026-04-01 --location="Room 101"

  # Quiet mode for bash capture
  EVENT_ID=$(eventreg event create --name="Career Fair" --date=2026-05-10 --location=Gym --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Event name (required)")
	cmd.Flags().String("date", "", "Event date, YYYY-MM-DD (required)")
	cmd.Flags().String("location", "", "Event location (required)")
	for _, name := range []string{"name", "date", "location"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().String("description", "", "Event description")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	date, _ := cmd.Flags().GetString("date")
	location, _ := cmd.Flags().GetString("location")
	description, _ := cmd.Flags().GetString("description")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	event, err := cliInstance.App.EventService.CreateEvent(ctx, eventservice.CreateEventRequest{
		Name:        name,
		Description: description,
		Date:        date,
		Location:    location,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(event)
	}

	// Human-readable output
	fmt.Printf("✓ Event '%s' created successfully (ID: %d)\n", event.Name, event.ID)
	fmt.Printf("  %s at %s\n", event.Date, event.Location)
	return nil
}
