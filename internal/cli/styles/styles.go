package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette
const (
	accentColor  = "#7D56F4"
	subtleColor  = "#6C7086"
	normalColor  = "#CDD6F4"
	successColor = "#A6E3A1"
	warningColor = "#F9E2AF"
)

var (
	// Card styles
	CardWidth = 72
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accentColor)).
			Padding(1, 2).
			Width(CardWidth)

	// Text styles
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(subtleColor))
	LabelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)) // For field labels like "Date:"
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(normalColor))
	SectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)).MarginTop(1)

	// Status styles
	PresentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(successColor))
	AbsentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(warningColor))

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderTable renders rows under headers as a rounded-border table
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(subtleColor))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// Field is one "Label: value" line of a card
type Field struct {
	Label string
	Value string
}

// RenderFields renders aligned "Label: value" lines
func RenderFields(fields ...Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		label := LabelStyle.Render(f.Label + ":" + strings.Repeat(" ", width-len(f.Label)))
		lines = append(lines, label+" "+ValueStyle.Render(f.Value))
	}
	return strings.Join(lines, "\n")
}

// RenderStatus renders an attendance status in its color
func RenderStatus(present bool) string {
	if present {
		return PresentStyle.Render("present")
	}
	return AbsentStyle.Render("absent")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
