package formatter

import (
	"fmt"
	"strings"

	"github.com/creative-h/aopplan/internal/domain"
)

// FormatTarget renders an annual target summary.
func FormatTarget(year int, target *domain.AnnualTarget) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold("VILT sessions"), FormatAmount(float64(target.VILTSessions))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold("ILT sessions"), FormatAmount(float64(target.ILTSessions))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold("Learning hours"), FormatAmount(target.LearningHours)))
	for _, area := range target.Areas() {
		b.WriteString(fmt.Sprintf("%s  %s\n", StylePurple.Render(area+" hours"), FormatAmount(target.CompetencyHours[area])))
	}
	return RenderBox(fmt.Sprintf("AOP target %d", year), b.String())
}

// FormatMetrics renders one period's aggregated actuals.
func FormatMetrics(m *domain.ActualMetrics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %d scheduled, %d completed\n", Bold("VILT"), m.VILTScheduled, m.VILTCompleted))
	b.WriteString(fmt.Sprintf("%s  %d scheduled, %d completed\n", Bold("ILT"), m.ILTScheduled, m.ILTCompleted))
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold("Learning hours"), FormatAmount(m.LearningHours)))
	for _, area := range sortedAreas(m.CompetencyHours) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StylePurple.Render(area+" hours"), FormatAmount(m.CompetencyHours[area])))
	}
	b.WriteString(fmt.Sprintf("%s  %d of %d registered, closure %.0f%%\n",
		Bold("Uptake"), m.Registrations, m.Capacity, m.ClosureRatio*100))
	if len(m.Sources) > 0 {
		names := make([]string, 0, len(m.Sources))
		for _, s := range m.Sources {
			names = append(names, string(s))
		}
		b.WriteString(Dim("sources: "+strings.Join(names, ", ")) + "\n")
	}
	return RenderBox("Actuals "+PeriodLabel(m.Period), b.String())
}

// FormatCatalog renders the action catalog in lexical order.
func FormatCatalog(catalog domain.ActionCatalog) string {
	if len(catalog.Actions) == 0 {
		return RenderBox("Action catalog", Dim("catalog is empty"))
	}

	var b strings.Builder
	for i, name := range catalog.Names() {
		if i > 0 {
			b.WriteString("\n")
		}
		effect := catalog.Actions[name]
		b.WriteString(Bold(name) + "\n")

		parts := make([]string, 0, 3+len(effect.CompetencyHours))
		if effect.LearningHours > 0 {
			parts = append(parts, FormatAmount(effect.LearningHours)+" learning hours")
		}
		if effect.VILTSessions > 0 {
			parts = append(parts, FormatAmount(effect.VILTSessions)+" VILT")
		}
		if effect.ILTSessions > 0 {
			parts = append(parts, FormatAmount(effect.ILTSessions)+" ILT")
		}
		for _, area := range sortedAreas(effect.CompetencyHours) {
			parts = append(parts, FormatAmount(effect.CompetencyHours[area])+" "+area)
		}
		b.WriteString(Dim("  per instance: "+strings.Join(parts, ", ")) + "\n")
	}
	return RenderBox("Action catalog", b.String())
}

func sortedAreas(hours map[string]float64) []string {
	t := domain.AnnualTarget{CompetencyHours: hours}
	return t.Areas()
}
