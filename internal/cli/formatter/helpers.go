package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/creative-h/aopplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatAmount renders a numeric value without a trailing ".0" for whole
// numbers, one decimal otherwise.
func FormatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FieldLabel renders a human name for a target field.
func FieldLabel(field domain.TargetField) string {
	switch {
	case field == domain.FieldVILTSessions:
		return "VILT sessions"
	case field == domain.FieldILTSessions:
		return "ILT sessions"
	case field == domain.FieldLearningHours:
		return "Learning hours"
	case field.IsCompetency():
		return field.Area() + " hours"
	default:
		return string(field)
	}
}

// PeriodLabel renders a period with its year, e.g. "Q2 2026".
func PeriodLabel(p domain.Period) string {
	return fmt.Sprintf("%s %d", p.Label(), p.Year)
}

// FactorLabel renders a contributing-factor tag as readable text.
func FactorLabel(tag domain.FactorTag) string {
	switch tag {
	case domain.FactorRegistrationShortfall:
		return "low registrations"
	case domain.FactorSchedulingShortfall:
		return "under-scheduling"
	case domain.FactorCompletionShortfall:
		return "low closure"
	default:
		return string(tag)
	}
}
