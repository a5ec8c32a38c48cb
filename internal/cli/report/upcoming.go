package report

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/styles"
	"github.com/thenoetrevino/eventreg/internal/export"
)

// UpcomingCmd returns the report upcoming subcommand
func UpcomingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List events from today onward with registration counts",
		Args:  cobra.NoArgs,
		RunE:  runUpcoming,
	}
	cmd.Flags().Int("limit", 0, "Maximum number of events (default from config, 10)")
	addOutputFlags(cmd)
	return cmd
}

func runUpcoming(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := readOutputFlags(cmd)
	limit, _ := cmd.Flags().GetInt("limit")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return out.formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	events, err := cliInstance.App.ReportService.UpcomingEvents(ctx, limit)
	if err != nil {
		return out.formatter.Fail(err)
	}

	return out.render(events,
		func(w io.Writer) error { return export.WriteUpcoming(w, events) },
		func() {
			if len(events) == 0 {
				fmt.Println("No upcoming events")
				return
			}
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{
					strconv.Itoa(e.ID), e.Date, e.Name, e.Location, strconv.Itoa(e.RegisteredCount),
				})
			}
			fmt.Println(styles.RenderTable([]string{"ID", "Date", "Name", "Location", "Registered"}, rows))
		})
}
