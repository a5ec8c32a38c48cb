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

// AttendanceCmd returns the report attendance subcommand
func AttendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Show registered, attended and attendance rate per event",
		Args:  cobra.NoArgs,
		RunE:  runAttendance,
	}
	addOutputFlags(cmd)
	return cmd
}

func runAttendance(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := readOutputFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return out.formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	stats, err := cliInstance.App.ReportService.AttendanceStats(ctx)
	if err != nil {
		return out.formatter.Fail(err)
	}

	return out.render(stats,
		func(w io.Writer) error { return export.WriteAttendance(w, stats) },
		func() {
			if len(stats) == 0 {
				fmt.Println("No events found")
				return
			}
			rows := make([][]string, 0, len(stats))
			for _, s := range stats {
				rows = append(rows, []string{
					s.EventName,
					strconv.Itoa(s.Registered),
					strconv.Itoa(s.Attended),
					export.FormatPercent(s.Rate),
				})
			}
			fmt.Println(styles.RenderTable([]string{"Event", "Registered", "Attended", "Rate"}, rows))
		})
}
