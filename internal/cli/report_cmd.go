package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creative-h/aopplan/internal/cli/formatter"
	"github.com/creative-h/aopplan/internal/contract"
)

func newReportCmd(a *App) *cobra.Command {
	var (
		year   int
		asJSON bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the latest saved diagnostic run",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if list {
				runs, err := a.Runs.ListRuns(ctx, year)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Println(formatter.Dim(fmt.Sprintf("no runs for %d", year)))
					return nil
				}
				headers := []string{"RUN", "CREATED", "NARRATIVE"}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						formatter.Bold(run.ID),
						run.CreatedAt.Format("2006-01-02 15:04"),
						formatter.Dim(run.NarrativeSource),
					})
				}
				fmt.Print(formatter.RenderTable(headers, rows))
				return nil
			}

			run, err := a.Runs.LatestRun(ctx, year)
			if err != nil {
				return err
			}

			if asJSON {
				fmt.Println(string(run.ResultJSON))
				return nil
			}

			var result contract.PlanResult
			if err := json.Unmarshal(run.ResultJSON, &result); err != nil {
				return fmt.Errorf("decoding stored run %s: %w", run.ID, err)
			}
			fmt.Print(formatter.FormatPlan(&result))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", defaultYear(), "Planning year")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the stored result JSON")
	cmd.Flags().BoolVar(&list, "list", false, "List saved runs instead of showing the latest")

	return cmd
}
