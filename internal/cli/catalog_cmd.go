package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creative-h/aopplan/internal/cli/formatter"
	"github.com/creative-h/aopplan/internal/importer"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and inspect the action catalog",
	}
	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogShowCmd(app),
	)
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import an action catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := importer.LoadCatalogFile(args[0])
			if err != nil {
				return err
			}

			stats, err := app.Catalog.ImportCatalog(context.Background(), file)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Bold(fmt.Sprintf("imported %d actions", stats.ActionsImported)))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored action catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.Catalog.GetCatalog(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCatalog(catalog))
			return nil
		},
	}
}
