package student

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/styles"
)

// ShowCmd returns the student show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <student-id>",
		Short: "Show a student",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	student, err := cliInstance.App.StudentService.GetStudent(ctx, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if jsonOutput {
		return formatter.JSONData(student)
	}

	fields := []styles.Field{
		{Label: "ID", Value: student.ID},
		{Label: "Department", Value: student.Department},
		{Label: "Year", Value: strconv.Itoa(student.YearLevel)},
	}
	if student.Email != "" {
		fields = append(fields, styles.Field{Label: "Email", Value: student.Email})
	}

	content := styles.TitleStyle.Render(student.FullName()) + "\n\n" + styles.RenderFields(fields...)
	fmt.Println(styles.RenderCard(content))
	return nil
}
