package formatter

import (
	"fmt"
	"strings"

	"github.com/creative-h/aopplan/internal/domain"
)

// FormatBreakdown renders the sub-targets of one granularity as a table,
// one competency column per area in sorted order.
func FormatBreakdown(breakdown *domain.TargetBreakdown, g domain.Granularity) string {
	subs := breakdown.ByGranularity(g)
	if len(subs) == 0 {
		return Dim("no breakdown for granularity "+string(g)) + "\n"
	}

	areas := breakdown.Annual.Areas()
	headers := []string{"PERIOD", "VILT", "ILT", "HOURS"}
	for _, area := range areas {
		headers = append(headers, strings.ToUpper(area))
	}

	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		row := []string{
			Bold(sub.Period.Label()),
			FormatAmount(float64(sub.VILTSessions)),
			FormatAmount(float64(sub.ILTSessions)),
			FormatAmount(sub.LearningHours),
		}
		for _, area := range areas {
			row = append(row, FormatAmount(sub.CompetencyHours[area]))
		}
		rows = append(rows, row)
	}

	title := fmt.Sprintf("%s breakdown", g)
	return RenderBox(title, RenderTable(headers, rows))
}

// FormatTasks renders each period's to-do list for one granularity.
func FormatTasks(breakdown *domain.TargetBreakdown, g domain.Granularity) string {
	subs := breakdown.ByGranularity(g)
	var b strings.Builder
	for _, sub := range subs {
		if len(sub.Tasks) == 0 {
			continue
		}
		b.WriteString(Bold(sub.Period.Label()) + "\n")
		for _, task := range sub.Tasks {
			b.WriteString("  " + StyleFg.Render("• "+task) + "\n")
		}
	}
	if b.Len() == 0 {
		return Dim("no tasks") + "\n"
	}
	return b.String()
}
