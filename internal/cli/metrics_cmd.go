package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/creative-h/aopplan/internal/cli/formatter"
	"github.com/creative-h/aopplan/internal/importer"
)

func newMetricsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Import and inspect actual delivery metrics",
	}
	cmd.AddCommand(
		newMetricsImportCmd(app),
		newMetricsShowCmd(app),
	)
	return cmd
}

func newMetricsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import a metrics extract file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := importer.LoadMetricsFile(args[0])
			if err != nil {
				return err
			}

			stats, err := app.Metrics.ImportMetrics(context.Background(), file)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n",
				formatter.Bold(fmt.Sprintf("imported %d rows", stats.RowsImported)),
				formatter.Dim("from "+strings.Join(stats.Sources, ", ")))
			for _, warning := range stats.Warnings {
				fmt.Println(formatter.StyleYellow.Render("  WARNING: " + warning))
			}
			return nil
		},
	}
}

func newMetricsShowCmd(app *App) *cobra.Command {
	var (
		year        int
		granularity string
		index       int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show aggregated actuals for one period",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := parsePeriod(year, granularity, index)
			if err != nil {
				return err
			}

			metrics, err := app.Metrics.GetPeriodMetrics(context.Background(), period)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatMetrics(metrics))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", defaultYear(), "Planning year")
	cmd.Flags().StringVar(&granularity, "granularity", "quarter", "Period granularity")
	cmd.Flags().IntVar(&index, "period", 1, "Period index (1-based)")
	return cmd
}
