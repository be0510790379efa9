package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	filesource "github.com/bnema/med-cli/internal/adapters/source/file"
	sqlitesource "github.com/bnema/med-cli/internal/adapters/source/sqlite"
	"github.com/bnema/med-cli/internal/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export, import and initialise session catalogs",
	}

	cmd.AddCommand(
		newCatalogExportCmd(app),
		newCatalogImportCmd(app),
		newCatalogInitCmd(app),
	)

	return cmd
}

func newCatalogExportCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured catalog to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := filesource.ParseFormat(format)
			if err != nil {
				return err
			}

			sessions, err := app.catalog.ListSessions(cmd.Context())
			if err != nil {
				return err
			}

			data, err := filesource.Marshal(f, sessions)
			if err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(filesource.FormatTOML), "Output format: toml, yaml or json")

	return cmd
}

func newCatalogImportCmd(app *app) *cobra.Command {
	var from, dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a catalog file into a SQLite catalog database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := filesource.NewSourceAt(from)
			if err != nil {
				return err
			}

			sessions, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}

			db, err := sqlitesource.Open(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Replace(cmd.Context(), sessions); err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}

			app.logger.Debug("catalog imported", "from", src.Path(), "db", dbPath, "sessions", len(sessions))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions into %s\n", len(sessions), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Catalog file to import (.toml, .yaml or .json)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to write")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func newCatalogInitCmd(app *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in sample catalog to a file or database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = app.config.CatalogPath
			}
			sessions := catalog.Sample().List()

			if isDatabasePath(path) {
				db, err := sqlitesource.Open(cmd.Context(), path)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.Replace(cmd.Context(), sessions); err != nil {
					return err
				}
			} else {
				src, err := filesource.NewSourceAt(path)
				if err != nil {
					return err
				}
				if err := src.Save(cmd.Context(), sessions); err != nil {
					return err
				}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sessions to %s\n", len(sessions), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Destination (defaults to the configured catalog path)")

	return cmd
}

func isDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}
