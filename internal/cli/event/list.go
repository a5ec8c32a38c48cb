package event

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/styles"
)

// ListCmd returns the event list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all events",
		Long:  "List all events, most recent date first.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	events, err := cliInstance.App.EventService.GetAllEvents(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output in appropriate format
	if quietMode {
		// Just print IDs (one per line)
		for _, e := range events {
			fmt.Printf("%d\n", e.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.JSONData(events)
	}

	// Human-readable output
	if len(events) == 0 {
		fmt.Println("No events found")
		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{strconv.Itoa(e.ID), e.Date, e.Name, e.Location})
	}
	fmt.Println(styles.RenderTable([]string{"ID", "Date", "Name", "Location"}, rows))
	return nil
}
