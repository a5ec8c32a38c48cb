package student

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/export"
)

// ExportCmd returns the student export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export the roster as CSV",
		Long:  "Write every student to a CSV file using the same columns 'student import' reads.",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	students, err := cliInstance.App.StudentService.GetAllStudents(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	path := args[0]
	if err := cli.WriteCSVFile(path, func(w io.Writer) error {
		return export.WriteStudents(w, students)
	}); err != nil {
		return formatter.Fail(err)
	}

	if jsonOutput {
		return formatter.JSONData(map[string]interface{}{"path": path, "exported": len(students)})
	}

	fmt.Printf("✓ Exported %d students to %s\n", len(students), path)
	return nil
}
