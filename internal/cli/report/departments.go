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

// DepartmentsCmd returns the report departments subcommand
func DepartmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Show registrations per department and their share of the total",
		Args:  cobra.NoArgs,
		RunE:  runDepartments,
	}
	addOutputFlags(cmd)
	return cmd
}

func runDepartments(cmd *cobra.Command, args []string) error {
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

	shares, err := cliInstance.App.ReportService.DepartmentParticipation(ctx)
	if err != nil {
		return out.formatter.Fail(err)
	}

	return out.render(shares,
		func(w io.Writer) error { return export.WriteDepartments(w, shares) },
		func() {
			if len(shares) == 0 {
				fmt.Println("No registrations yet")
				return
			}
			rows := make([][]string, 0, len(shares))
			for _, s := range shares {
				rows = append(rows, []string{s.Department, strconv.Itoa(s.Registrations), export.FormatPercent(s.Percentage)})
			}
			fmt.Println(styles.RenderTable([]string{"Department", "Registrations", "Share"}, rows))
		})
}
