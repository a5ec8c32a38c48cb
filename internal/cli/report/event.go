package report

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/styles"
	"github.com/thenoetrevino/eventreg/internal/export"
	reportservice "github.com/thenoetrevino/eventreg/internal/services/report"
)

// EventCmd returns the report event subcommand
func EventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event <id>",
		Short: "Attendance breakdown and participant list of one event",
		Long: `Show one event's present/absent split, department distribution and participants.

With --csv the participant list is written to the file.
`,
		Args: cobra.ExactArgs(1),
		RunE: runEvent,
	}
	addOutputFlags(cmd)
	return cmd
}

func runEvent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := readOutputFlags(cmd)

	eventID, err := cli.ParseEventID(args[0])
	if err != nil {
		return out.formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return out.formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	report, err := cliInstance.App.ReportService.EventReport(ctx, eventID)
	if err != nil {
		return out.formatter.Fail(err)
	}

	return out.render(report,
		func(w io.Writer) error { return export.WriteParticipants(w, report.Participants) },
		func() { fmt.Println(renderEventReport(report)) })
}

func renderEventReport(report *reportservice.EventReport) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(report.Event.Name))
	content.WriteString("  ")
	content.WriteString(styles.SubtitleStyle.Render(report.Event.Date + " · " + report.Event.Location))
	content.WriteString("\n\n")
	content.WriteString(styles.RenderFields(
		styles.Field{Label: "Registered", Value: strconv.Itoa(report.Registered)},
		styles.Field{Label: "Present", Value: strconv.Itoa(report.Present)},
		styles.Field{Label: "Absent", Value: strconv.Itoa(report.Absent)},
		styles.Field{Label: "Rate", Value: export.FormatPercent(report.AttendanceRate)},
	))
	content.WriteString("\n")

	if len(report.Departments) > 0 {
		content.WriteString(styles.SectionStyle.Render("Departments"))
		content.WriteString("\n")
		for _, d := range report.Departments {
			fmt.Fprintf(&content, "  %s %d (%s)\n", d.Department, d.Registrations, export.FormatPercent(d.Percentage))
		}
	}

	var b strings.Builder
	b.WriteString(styles.RenderCard(content.String()))

	if len(report.Participants) > 0 {
		rows := make([][]string, 0, len(report.Participants))
		for _, p := range report.Participants {
			rows = append(rows, []string{p.StudentID, p.FirstName + " " + p.LastName, p.Department, styles.RenderStatus(p.Attended)})
		}
		b.WriteString("\n")
		b.WriteString(styles.RenderTable([]string{"Student", "Name", "Department", "Status"}, rows))
	}

	return b.String()
}
