package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/cli/formatter"
	"github.com/creative-h/aopplan/internal/domain"
)

func newBreakdownCmd(a *App) *cobra.Command {
	var (
		year        int
		granularity string
		tasks       bool
		asJSON      bool
		weighting   weightingFlags
	)

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Decompose the annual target into period sub-targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidGranularities[granularity] {
				return fmt.Errorf("unknown granularity %q (quarter, month, week, day)", granularity)
			}

			policy, err := weighting.resolve()
			if err != nil {
				return err
			}

			req := app.NewBreakdownRequest(year)
			req.Policy = policy

			breakdown, err := a.Plans.Breakdown(context.Background(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(breakdown)
			}

			g := domain.Granularity(granularity)
			fmt.Print(formatter.FormatBreakdown(breakdown, g))
			fmt.Println()
			if tasks {
				fmt.Print(formatter.FormatTasks(breakdown, g))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", defaultYear(), "Planning year")
	cmd.Flags().StringVar(&granularity, "granularity", "quarter", "Granularity to display")
	cmd.Flags().BoolVar(&tasks, "tasks", false, "Show per-period to-do lists")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full breakdown as JSON")
	cmd.Flags().BoolVar(&weighting.seasonal, "seasonal", false, "Use the seasonal weighting preset")
	cmd.Flags().StringVar(&weighting.weightsPath, "weights", "", "Custom weighting policy YAML file")

	return cmd
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
