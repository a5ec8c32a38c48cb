package student

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
)

// ImportCmd returns the student import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import students from a CSV roster",
		Long: `Import students from a CSV file with a header row.

Required columns: student_id, first_name, last_name, department, year_level
Optional columns: email

Students whose ID already exists are skipped. A missing column or an
unparseable row aborts the import before anything is written.
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (imported count only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
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

	result, err := cliInstance.App.StudentService.ImportFile(ctx, args[0])
	if err != nil {
		if result != nil && result.Imported > 0 {
			log.Printf("Import %s stopped after %d students", result.BatchID, result.Imported)
		}
		return formatter.Fail(err)
	}

	switch {
	case quietMode:
		fmt.Println(result.Imported)
		return nil
	case jsonOutput:
		return formatter.JSONData(result)
	}

	fmt.Printf("✓ Imported %d students (%d already existed)\n", result.Imported, result.Skipped)
	return nil
}
