package cli

import (
	"github.com/spf13/cobra"

	"github.com/creative-h/aopplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Targets service.TargetService
	Metrics service.MetricsService
	Catalog service.CatalogService
	Plans   service.PlanService
	Runs    service.RunService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are skipped when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "aopplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "aopplan",
		Short: "AOP target decomposition and gap diagnostics for learning delivery",
	}

	root.AddCommand(
		newTargetCmd(app),
		newMetricsCmd(app),
		newCatalogCmd(app),
		newBreakdownCmd(app),
		newPlanCmd(app),
		newReportCmd(app),
	)

	return root
}
