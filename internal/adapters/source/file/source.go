package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	CatalogPathKey    = "catalog.path"
	catalogFileMode   = 0o644
	catalogDirMode    = 0o755
	catalogConfigDir  = ".config/med"
	catalogConfigFile = "catalog.toml"
	tempFilePattern   = ".catalog-*.tmp"
)

var ErrCatalogFileNotFound = errors.New("catalog file not found")

// Source reads sessions from a TOML, YAML or JSON catalog file.
type Source struct {
	path   string
	format Format
	mu     *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionSource = (*Source)(nil)

func NewSource(cfg *viper.Viper) (*Source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(CatalogPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, catalogConfigDir, catalogConfigFile)
	}

	return NewSourceAt(path)
}

func NewSourceAt(path string) (*Source, error) {
	path, err := normalizeCatalogPath(path)
	if err != nil {
		return nil, err
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	return &Source{path: path, format: format, mu: lockForPath(path)}, nil
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Load(ctx context.Context) ([]domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogFileNotFound, s.path)
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	return Unmarshal(s.format, data)
}

// Save validates sessions and atomically replaces the catalog file.
func (s *Source) Save(ctx context.Context, sessions []domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateCatalog(sessions); err != nil {
		return err
	}

	data, err := Marshal(s.format, sessions)
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeFile(data)
}

func (s *Source) writeFile(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}

	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizeCatalogPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
