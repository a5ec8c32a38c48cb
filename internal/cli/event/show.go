package event

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/styles"
	"github.com/thenoetrevino/eventreg/internal/models"
)

// ShowCmd returns the event show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show event details",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	eventID, err := cli.ParseEventID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	event, err := cliInstance.App.EventService.GetEventByID(ctx, eventID)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(event)
	}

	fmt.Println(renderEvent(event))
	return nil
}

func renderEvent(event *models.Event) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", event.ID, event.Name)))
	content.WriteString("\n\n")
	content.WriteString(styles.RenderFields(
		styles.Field{Label: "Date", Value: event.Date},
		styles.Field{Label: "Location", Value: event.Location},
		styles.Field{Label: "Created", Value: event.CreatedAt.Format("2006-01-02 15:04")},
	))

	if event.Description != "" {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		for _, line := range strings.Split(event.Description, "\n") {
			content.WriteString("  " + styles.ValueStyle.Render(line) + "\n")
		}
	}

	return styles.RenderCard(content.String())
}
