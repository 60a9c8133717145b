package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/creative-h/aopplan/internal/cli/formatter"
	"github.com/creative-h/aopplan/internal/domain"
)

func newTargetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage annual AOP targets",
	}
	cmd.AddCommand(
		newTargetSetCmd(app),
		newTargetShowCmd(app),
		newTargetYearsCmd(app),
	)
	return cmd
}

func newTargetSetCmd(app *App) *cobra.Command {
	var (
		year         int
		vilt         int
		ilt          int
		hours        float64
		competencies []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the annual target for a year",
		Long: "Set the annual target for a year. With no value flags on an\n" +
			"interactive terminal, an entry form is shown instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.AnnualTarget{
				VILTSessions:  vilt,
				ILTSessions:   ilt,
				LearningHours: hours,
			}

			var err error
			target.CompetencyHours, err = parseCompetencyPairs(competencies)
			if err != nil {
				return err
			}

			valuesGiven := cmd.Flags().Changed("vilt") ||
				cmd.Flags().Changed("ilt") ||
				cmd.Flags().Changed("hours") ||
				cmd.Flags().Changed("competency")
			if !valuesGiven {
				if !app.interactive() {
					return errors.New("no target values given; pass --vilt/--ilt/--hours or run interactively")
				}
				if err := runTargetForm(&target); err != nil {
					return err
				}
			}

			if err := app.Targets.SetTarget(context.Background(), year, target); err != nil {
				return err
			}
			fmt.Print(formatter.FormatTarget(year, &target))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", defaultYear(), "Planning year")
	cmd.Flags().IntVar(&vilt, "vilt", 0, "Annual VILT session target")
	cmd.Flags().IntVar(&ilt, "ilt", 0, "Annual ILT session target")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Annual learning hours target")
	cmd.Flags().StringArrayVar(&competencies, "competency", nil,
		"Competency hours as area=hours (repeatable)")

	return cmd
}

func newTargetShowCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the annual target for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.Targets.GetTarget(context.Background(), year)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTarget(year, target))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", defaultYear(), "Planning year")
	return cmd
}

func newTargetYearsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List years with a stored target",
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := app.Targets.ListTargetYears(context.Background())
			if err != nil {
				return err
			}
			if len(years) == 0 {
				fmt.Println(formatter.Dim("no targets stored"))
				return nil
			}
			for _, y := range years {
				fmt.Println(formatter.Bold(strconv.Itoa(y)))
			}
			return nil
		},
	}
}

// runTargetForm collects target numbers through a huh form and writes
// them into target.
func runTargetForm(target *domain.AnnualTarget) error {
	var viltStr, iltStr, hoursStr, compStr string

	form := huh.NewForm(
		huh.NewGroup(
			numberInput("Annual VILT sessions", "400", &viltStr),
			numberInput("Annual ILT sessions", "200", &iltStr),
			numberInput("Annual learning hours", "12000", &hoursStr),
			huh.NewInput().
				Title("Competency hours (area=hours, comma separated, blank for none)").
				Placeholder("technical=2400, leadership=800").
				Value(&compStr).
				Validate(validateCompetencyList),
		),
	).WithTheme(aopplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	target.VILTSessions = atoiOrZero(viltStr)
	target.ILTSessions = atoiOrZero(iltStr)
	target.LearningHours = atofOrZero(hoursStr)

	if strings.TrimSpace(compStr) != "" {
		pairs, err := parseCompetencyPairs(strings.Split(compStr, ","))
		if err != nil {
			return err
		}
		target.CompetencyHours = pairs
	}
	return nil
}

// parseCompetencyPairs parses "area=hours" entries into a map. nil input
// yields a nil map.
func parseCompetencyPairs(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		area, value, found := strings.Cut(pair, "=")
		area = strings.TrimSpace(area)
		if !found || area == "" {
			return nil, fmt.Errorf("competency %q: want area=hours", pair)
		}
		hours, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("competency %q: %w", pair, err)
		}
		out[area] = hours
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
