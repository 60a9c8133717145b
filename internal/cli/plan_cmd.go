package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/cli/formatter"
)

func newPlanCmd(a *App) *cobra.Command {
	var (
		year        int
		granularity string
		index       int
		asJSON      bool
		noSave      bool
		weighting   weightingFlags
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the full diagnostic pipeline for one period",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := parsePeriod(year, granularity, index)
			if err != nil {
				return err
			}

			policy, err := weighting.resolve()
			if err != nil {
				return err
			}

			req := app.NewPlanRequest(period)
			req.Policy = policy
			req.Persist = !noSave

			var stop func()
			if !asJSON && a.interactive() {
				stop = formatter.StartSpinner("running diagnostic pipeline")
			}
			result, err := a.Plans.RunPlan(context.Background(), req)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(result)
			}
			fmt.Print(formatter.FormatPlan(result))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", defaultYear(), "Planning year")
	cmd.Flags().StringVar(&granularity, "granularity", "quarter", "Period granularity")
	cmd.Flags().IntVar(&index, "period", 1, "Period index (1-based)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip persisting the run")
	cmd.Flags().BoolVar(&weighting.seasonal, "seasonal", false, "Use the seasonal weighting preset")
	cmd.Flags().StringVar(&weighting.weightsPath, "weights", "", "Custom weighting policy YAML file")

	return cmd
}
