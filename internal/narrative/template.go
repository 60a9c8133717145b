package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/domain"
)

// TemplateProvider builds a narrative directly from the findings without
// a model. Output is deterministic for identical facts, so plan runs stay
// reproducible when the LLM is disabled.
type TemplateProvider struct{}

func (TemplateProvider) Narrate(_ context.Context, facts analysis.NarrativeFacts) (string, error) {
	var b strings.Builder

	onTrack := len(facts.Strengths)
	behind := len(facts.Weaknesses)
	switch {
	case behind == 0 && onTrack == 0:
		b.WriteString("All tracked targets are on plan with no notable over-delivery.")
	case behind == 0:
		fmt.Fprintf(&b, "All targets are on plan, with %d ahead of target.", onTrack)
	default:
		fmt.Fprintf(&b, "%d target(s) are behind plan and %d are ahead.", behind, onTrack)
	}

	if risk := topRisk(facts.Risks); risk != nil {
		fmt.Fprintf(&b, " Largest risk: %s %s is %.0f%% behind target (%s severity).",
			risk.Gap.Period.Label(), fieldLabel(risk.Gap.Field), risk.GapFraction*100, risk.Severity)
		if risk.Escalated {
			b.WriteString(" The shortfall has worsened over consecutive periods.")
		}
	}

	for _, opp := range facts.Opportunities {
		fmt.Fprintf(&b, " To close the %s %s gap of %s, run %s.",
			opp.Period.Label(), fieldLabel(opp.Field), formatAmount(opp.GapMagnitude), planLabel(opp.Actions))
	}

	if onTrack > 0 {
		s := facts.Strengths[0]
		fmt.Fprintf(&b, " Strongest area: %s %s at %s against a target of %s.",
			s.Period.Label(), fieldLabel(s.Field), formatAmount(s.Actual), formatAmount(s.Target))
	}

	return b.String(), nil
}

func topRisk(risks []domain.RiskRecord) *domain.RiskRecord {
	var top *domain.RiskRecord
	for i := range risks {
		r := &risks[i]
		if top == nil || r.Severity.Rank() > top.Severity.Rank() ||
			(r.Severity.Rank() == top.Severity.Rank() && r.GapFraction > top.GapFraction) {
			top = r
		}
	}
	return top
}

func planLabel(actions []domain.ActionCount) string {
	parts := make([]string, len(actions))
	for i, ac := range actions {
		parts[i] = fmt.Sprintf("%dx %s", ac.Count, ac.Action)
	}
	return strings.Join(parts, " plus ")
}

func fieldLabel(field domain.TargetField) string {
	switch field {
	case domain.FieldVILTSessions:
		return "VILT sessions"
	case domain.FieldILTSessions:
		return "ILT sessions"
	case domain.FieldLearningHours:
		return "learning hours"
	default:
		if field.IsCompetency() {
			return field.Area() + " hours"
		}
		return string(field)
	}
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
