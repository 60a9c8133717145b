package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/cli"
	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/llm"
	"github.com/creative-h/aopplan/internal/narrative"
	"github.com/creative-h/aopplan/internal/repository"
	"github.com/creative-h/aopplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.aopplan/aopplan.db
	dbPath := os.Getenv("AOPPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".aopplan", "aopplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	targetRepo := repository.NewSQLiteTargetRepo(database)
	metricsRepo := repository.NewSQLiteMetricsRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	runRepo := repository.NewSQLiteRunRepo(database)

	// Wire unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	// Narrative provider: LLM when enabled, deterministic template
	// fallback either way.
	llmCfg := llm.LoadConfig()
	var provider analysis.NarrativeProvider = narrative.TemplateProvider{}
	narrativeSource := "template"
	if llmCfg.Enabled {
		narrativeSource = "llm"
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		provider = narrative.Chain{
			Primary:  narrative.NewLLMProvider(llmClient),
			Fallback: narrative.TemplateProvider{},
		}
	}

	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("AOPPLAN_LOG_USE_CASES") == "true" {
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	bounds := analysis.DefaultYearBounds(time.Now().UTC())

	app := &cli.App{
		Targets: service.NewTargetService(targetRepo),
		Metrics: service.NewMetricsService(metricsRepo, uow),
		Catalog: service.NewCatalogService(catalogRepo, uow),
		Plans: service.NewPlanService(
			targetRepo, metricsRepo, catalogRepo, runRepo,
			provider, narrativeSource, bounds, useCaseObserver,
		),
		Runs: service.NewRunService(runRepo),
	}

	// Detect interactive terminal for forms and spinners.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
