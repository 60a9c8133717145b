package formatter

import (
	"fmt"
	"strings"

	"github.com/creative-h/aopplan/internal/contract"
	"github.com/creative-h/aopplan/internal/domain"
)

const attainmentBarWidth = 10

// FormatPlan renders a full diagnostic run: gaps, risks, opportunities,
// then the report summary with its narrative.
func FormatPlan(result *contract.PlanResult) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("AOP diagnostic — %s", PeriodLabel(result.Period))))
	b.WriteString("\n\n")

	b.WriteString(formatGaps(result.GapAnalysis))
	b.WriteString("\n")
	b.WriteString(formatRisks(result.RiskAssessment))
	b.WriteString("\n")
	b.WriteString(formatOpportunities(result.Opportunities))
	b.WriteString("\n")
	b.WriteString(formatReport(result.DiagnosticReport))

	if result.RunID != "" {
		b.WriteString("\n" + Dim(fmt.Sprintf("run %s saved %s", result.RunID,
			result.GeneratedAt.Format("2006-01-02 15:04 MST"))) + "\n")
	}
	return b.String()
}

func formatGaps(gaps []domain.GapRecord) string {
	headers := []string{"FIELD", "TARGET", "ACTUAL", "ATTAINMENT", "GAP"}
	rows := make([][]string, 0, len(gaps))
	for _, gap := range gaps {
		rows = append(rows, []string{
			Bold(FieldLabel(gap.Field)),
			FormatAmount(gap.Target),
			FormatAmount(gap.Actual),
			RenderAttainment(gap.Actual, gap.Target, attainmentBarWidth),
			GapIndicator(gap),
		})
	}
	return RenderBox("Gap analysis", RenderTable(headers, rows))
}

func formatRisks(risks []domain.RiskRecord) string {
	if len(risks) == 0 {
		return RenderBox("Risks", StyleGreen.Render("✔ no at-risk targets this period"))
	}

	headers := []string{"FIELD", "SEVERITY", "BEHIND", "FACTORS"}
	rows := make([][]string, 0, len(risks))
	for _, risk := range risks {
		severity := SeverityIndicator(risk.Severity)
		if risk.Escalated {
			severity += " " + StylePurple.Render("↑ trend")
		}

		factors := make([]string, 0, len(risk.Factors))
		for _, tag := range risk.Factors {
			factors = append(factors, FactorLabel(tag))
		}
		factorCell := Dim("--")
		if len(factors) > 0 {
			factorCell = StyleFg.Render(strings.Join(factors, ", "))
		}

		rows = append(rows, []string{
			Bold(FieldLabel(risk.Gap.Field)),
			severity,
			fmt.Sprintf("%.0f%%", risk.GapFraction*100),
			factorCell,
		})
	}
	return RenderBox("Risks", RenderTable(headers, rows))
}

func formatOpportunities(opportunities []domain.Opportunity) string {
	if len(opportunities) == 0 {
		return RenderBox("Opportunities", Dim("no catalog actions needed"))
	}

	var b strings.Builder
	for i, opp := range opportunities {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold(FieldLabel(opp.Field)) +
			Dim(fmt.Sprintf("  close %s", FormatAmount(opp.GapMagnitude))) + "\n")
		for _, action := range opp.Actions {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("  → run %dx %s", action.Count, action.Action)) + "\n")
		}
		b.WriteString(Dim(fmt.Sprintf("  expected effect %s", FormatAmount(opp.ExpectedEffect))))
		if len(opp.AlsoCloses) > 0 {
			labels := make([]string, 0, len(opp.AlsoCloses))
			for _, field := range opp.AlsoCloses {
				labels = append(labels, FieldLabel(field))
			}
			b.WriteString(Dim(", also closes " + strings.Join(labels, ", ")))
		}
		b.WriteString("\n")
	}
	return RenderBox("Opportunities", b.String())
}

func formatReport(report domain.DiagnosticReport) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render(fmt.Sprintf("%d strengths", len(report.Strengths))) + Dim(", ") +
		StyleRed.Render(fmt.Sprintf("%d weaknesses", len(report.Weaknesses))) + "\n")

	for _, s := range report.Strengths {
		b.WriteString(StyleGreen.Render("  ▲ "+FieldLabel(s.Field)) +
			Dim(fmt.Sprintf("  %s of %s", FormatAmount(s.Actual), FormatAmount(s.Target))) + "\n")
	}
	for _, w := range report.Weaknesses {
		b.WriteString(StyleRed.Render("  ▼ "+FieldLabel(w.Field)) +
			Dim(fmt.Sprintf("  %s of %s", FormatAmount(w.Actual), FormatAmount(w.Target))) + "\n")
	}

	if report.Narrative != "" {
		b.WriteString("\n")
		if report.Narrative == domain.NarrativeUnavailable {
			b.WriteString(Dim(report.Narrative) + "\n")
		} else {
			b.WriteString(StyleFg.Render(report.Narrative) + "\n")
		}
	}
	return RenderBox("Report", b.String())
}
