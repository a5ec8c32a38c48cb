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

// DashboardCmd returns the report dashboard subcommand
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show total events, students and registrations",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}
	addOutputFlags(cmd)
	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
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

	counts, err := cliInstance.App.ReportService.Dashboard(ctx)
	if err != nil {
		return out.formatter.Fail(err)
	}

	return out.render(counts,
		func(w io.Writer) error { return export.WriteCounts(w, counts) },
		func() {
			fmt.Println(styles.RenderTable([]string{"Events", "Students", "Registrations"}, [][]string{{
				strconv.Itoa(counts.Events),
				strconv.Itoa(counts.Students),
				strconv.Itoa(counts.Registrations),
			}}))
		})
}
