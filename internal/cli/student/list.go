package student

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/styles"
)

// ListCmd returns the student list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all students",
		Long:  "List all students ordered by last name, then first name.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

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

	students, err := cliInstance.App.StudentService.GetAllStudents(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		for _, s := range students {
			fmt.Println(s.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.JSONData(students)
	}

	if len(students) == 0 {
		fmt.Println("No students found")
		return nil
	}

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.ID, s.LastName, s.FirstName, s.Department, strconv.Itoa(s.YearLevel)})
	}
	fmt.Println(styles.RenderTable([]string{"ID", "Last", "First", "Department", "Year"}, rows))
	return nil
}
