package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/deyby01/agenda/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityColor returns the lipgloss style for the given priority level.
func PriorityColor(p domain.PriorityLevel) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return StyleRed
	case domain.PriorityHigh:
		return StyleYellow
	case domain.PriorityMedium:
		return StyleBlue
	case domain.PriorityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PriorityIndicator returns a colored indicator string such as "● CRITICAL".
func PriorityIndicator(p domain.PriorityLevel) string {
	label := strings.ToUpper(string(p))
	return PriorityColor(p).Render("● " + label)
}

// HealthIndicator returns a colored indicator for a project health status.
func HealthIndicator(h domain.HealthStatus) string {
	label := strings.ToUpper(string(h))
	switch h {
	case domain.HealthExcellent, domain.HealthGood:
		return StyleGreen.Render("● " + label)
	case domain.HealthFair:
		return StyleBlue.Render("● " + label)
	case domain.HealthPoor:
		return StyleYellow.Render("● " + label)
	case domain.HealthCritical:
		return StyleRed.Render("● " + label)
	default:
		return StyleDim.Render("● " + label)
	}
}

// SeverityIndicator returns a colored marker for a notification severity.
func SeverityIndicator(s domain.NotificationSeverity) string {
	switch s {
	case domain.SeverityCritical:
		return StyleRed.Render("!!")
	case domain.SeverityWarning:
		return StyleYellow.Render("! ")
	case domain.SeveritySuccess:
		return StyleGreen.Render("ok")
	default:
		return StyleBlue.Render("i ")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
