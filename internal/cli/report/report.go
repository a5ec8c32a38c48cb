// Package report holds all cli commands that print dashboards and reports
//
// e.g., eventreg report ...
package report

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
)

// ReportCmd returns the report parent command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Dashboards and attendance reports",
	}

	cmd.AddCommand(DashboardCmd())
	cmd.AddCommand(UpcomingCmd())
	cmd.AddCommand(AttendanceCmd())
	cmd.AddCommand(DepartmentsCmd())
	cmd.AddCommand(EventCmd())

	return cmd
}

// addOutputFlags adds the flags every report shares
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().String("csv", "", "Write the report to this CSV file instead of printing it")
}

type outputOptions struct {
	formatter *cli.OutputFormatter
	csvPath   string
}

func readOutputFlags(cmd *cobra.Command) outputOptions {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	csvPath, _ := cmd.Flags().GetString("csv")
	return outputOptions{
		formatter: &cli.OutputFormatter{JSON: jsonOutput},
		csvPath:   csvPath,
	}
}

// render writes the report as CSV, JSON or human output, in that order of preference
func (o outputOptions) render(data interface{}, writeCSV func(io.Writer) error, human func()) error {
	if o.csvPath != "" {
		if err := cli.WriteCSVFile(o.csvPath, writeCSV); err != nil {
			return o.formatter.Fail(err)
		}
		if o.formatter.JSON {
			return o.formatter.JSONData(map[string]string{"csv": o.csvPath})
		}
		fmt.Printf("✓ Report written to %s\n", o.csvPath)
		return nil
	}

	if o.formatter.JSON {
		return o.formatter.JSONData(data)
	}

	human()
	return nil
}
