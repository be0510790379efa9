// Package config resolves runtime settings from the config file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/med"

	KeyCatalogSource = "catalog.source"
	KeyCatalogPath   = "catalog.path"
	KeyLogLevel      = "log.level"
)

type CatalogSource string

const (
	SourceBuiltin CatalogSource = "builtin"
	SourceFile    CatalogSource = "file"
	SourceSQLite  CatalogSource = "sqlite"
)

var ErrUnknownCatalogSource = errors.New("unknown catalog source")

func ParseCatalogSource(raw string) (CatalogSource, error) {
	switch source := CatalogSource(strings.ToLower(strings.TrimSpace(raw))); source {
	case SourceBuiltin, SourceFile, SourceSQLite:
		return source, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCatalogSource, raw)
	}
}

// Env holds the MED_* overrides.
type Env struct {
	ConfigDir     string `env:"MED_CONFIG_DIR"`
	CatalogSource string `env:"MED_CATALOG_SOURCE"`
	CatalogPath   string `env:"MED_CATALOG_PATH"`
	LogLevel      string `env:"MED_LOG_LEVEL"`
}

type Config struct {
	Dir           string
	CatalogSource CatalogSource
	CatalogPath   string
	LogLevel      string
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Load populates v from defaults, the config file and e, then returns the
// resolved settings. Callers may v.Set flag values before calling Resolve.
func Load(v *viper.Viper, e Env) error {
	dir := e.ConfigDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(homeDir, configDir)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetDefault(KeyCatalogSource, string(SourceBuiltin))
	v.SetDefault(KeyCatalogPath, filepath.Join(dir, "catalog.toml"))
	v.SetDefault(KeyLogLevel, "info")
	v.Set("config.dir", dir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	if e.CatalogSource != "" {
		v.Set(KeyCatalogSource, e.CatalogSource)
	}
	if e.CatalogPath != "" {
		v.Set(KeyCatalogPath, e.CatalogPath)
	}
	if e.LogLevel != "" {
		v.Set(KeyLogLevel, e.LogLevel)
	}

	return nil
}

func Resolve(v *viper.Viper) (Config, error) {
	source, err := ParseCatalogSource(v.GetString(KeyCatalogSource))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Dir:           v.GetString("config.dir"),
		CatalogSource: source,
		CatalogPath:   v.GetString(KeyCatalogPath),
		LogLevel:      v.GetString(KeyLogLevel),
	}, nil
}
