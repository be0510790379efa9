package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bnema/med-cli/internal/adapters/source/builtin"
	filesource "github.com/bnema/med-cli/internal/adapters/source/file"
	sqlitesource "github.com/bnema/med-cli/internal/adapters/source/sqlite"
	"github.com/bnema/med-cli/internal/application"
	"github.com/bnema/med-cli/internal/config"
	"github.com/bnema/med-cli/internal/logging"
	"github.com/bnema/med-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootFlags struct {
	catalogSource string
	catalogPath   string
	logLevel      string
}

type app struct {
	config  config.Config
	logger  *slog.Logger
	catalog *application.CatalogService
}

func (a *app) wire(cmd *cobra.Command, v *viper.Viper, flags rootFlags) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	if err := config.Load(v, env); err != nil {
		return err
	}

	if flags.catalogSource != "" {
		v.Set(config.KeyCatalogSource, flags.catalogSource)
	}
	if flags.catalogPath != "" {
		v.Set(config.KeyCatalogPath, flags.catalogPath)
	}
	if flags.logLevel != "" {
		v.Set(config.KeyLogLevel, flags.logLevel)
	}

	cfg, err := config.Resolve(v)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	source, err := newSessionSource(cfg, v)
	if err != nil {
		return fmt.Errorf("wire session source: %w", err)
	}
	logger.Debug("catalog source configured", "source", cfg.CatalogSource, "path", cfg.CatalogPath)

	a.config = cfg
	a.logger = logger
	a.catalog = application.NewCatalogService(source, ports.SystemClock{}, logger)

	return nil
}

func newSessionSource(cfg config.Config, v *viper.Viper) (ports.SessionSource, error) {
	switch cfg.CatalogSource {
	case config.SourceFile:
		return filesource.NewSource(v)
	case config.SourceSQLite:
		return sqlitesource.NewPathSource(cfg.CatalogPath)
	default:
		return builtin.Source{}, nil
	}
}
