package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/creative-h/aopplan/internal/domain"
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

// SeverityColor returns the style for a risk severity band.
func SeverityColor(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	case domain.SeverityLow:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeverityIndicator returns a colored severity marker such as "● HIGH".
func SeverityIndicator(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return StyleRed.Render("● HIGH")
	case domain.SeverityMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.SeverityLow:
		return StyleBlue.Render("● LOW")
	default:
		return StyleDim.Render("● NONE")
	}
}

// GapIndicator renders the gap figure: a green check for No Gap, the
// shortfall in red otherwise.
func GapIndicator(gap domain.GapRecord) string {
	if !gap.HasGap() {
		return StyleGreen.Render("✔ on plan")
	}
	return StyleRed.Render(fmt.Sprintf("▼ %s short", FormatAmount(gap.Indicator)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
