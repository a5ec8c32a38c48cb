package student

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	studentservice "github.com/thenoetrevino/eventreg/internal/services/student"
)

// AddCmd returns the student add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Long: `Add a student to the roster. The student ID is the institutional ID and cannot change.

Examples:
  eventreg student add --id=2024-0001 --first=Ada --last=Lovelace --department=CS --year=2
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("id", "", "Student ID (required)")
	cmd.Flags().String("first", "", "First name (required)")
	cmd.Flags().String("last", "", "Last name (required)")
	cmd.Flags().String("department", "", "Department (required)")
	cmd.Flags().Int("year", 0, "Year level, 1 or higher (required)")
	for _, name := range []string{"id", "first", "last", "department", "year"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().String("email", "", "Email address")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetString("id")
	first, _ := cmd.Flags().GetString("first")
	last, _ := cmd.Flags().GetString("last")
	department, _ := cmd.Flags().GetString("department")
	year, _ := cmd.Flags().GetInt("year")
	email, _ := cmd.Flags().GetString("email")
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

	student, err := cliInstance.App.StudentService.CreateStudent(ctx, studentservice.CreateStudentRequest{
		ID:         id,
		FirstName:  first,
		LastName:   last,
		Department: department,
		YearLevel:  year,
		Email:      email,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	switch {
	case quietMode:
		fmt.Println(student.ID)
		return nil
	case jsonOutput:
		return formatter.JSONData(student)
	}

	fmt.Printf("✓ Student %s (%s) added to %s\n", student.FullName(), student.ID, student.Department)
	return nil
}
