package analysis

import (
	"fmt"
	"math"

	"github.com/creative-h/aopplan/internal/domain"
)

// periodTasks derives the deterministic to-do list for one sub-target.
// The wording follows the delivery-manager playbook: quarters plan,
// months schedule, weeks prepare, days review.
func periodTasks(sub domain.SubTarget) []string {
	label := sub.Period.Label()
	switch sub.Period.Granularity {
	case domain.GranularityQuarter:
		return []string{
			fmt.Sprintf("Plan %s VILT and ILT schedule", label),
			fmt.Sprintf("Allocate trainers for %s delivery", label),
			fmt.Sprintf("Set up tracking for %s learning metrics", label),
		}
	case domain.GranularityMonth:
		return []string{
			fmt.Sprintf("Schedule %d VILT sessions", sub.VILTSessions),
			fmt.Sprintf("Schedule %d ILT sessions", sub.ILTSessions),
			"Monitor registration and closure rates",
		}
	case domain.GranularityWeek:
		return []string{
			fmt.Sprintf("Confirm trainers for %s sessions", label),
			"Send reminders to registered participants",
			fmt.Sprintf("Track %s delivered hours against %s", label, formatHours(sub.LearningHours)),
		}
	case domain.GranularityDay:
		return []string{
			"Review the day's scheduled sessions",
			"Check registrations for upcoming sessions",
			"Update tracking dashboards",
		}
	default:
		return nil
	}
}

func formatHours(h float64) string {
	return fmt.Sprintf("%gh target", math.Round(h*10)/10)
}
