package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/ports"
)

var ErrDatabaseNotFound = errors.New("catalog database not found")

// PathSource opens the database for the duration of a single Load.
type PathSource struct {
	path string
}

var _ ports.SessionSource = (*PathSource)(nil)

func NewPathSource(path string) (*PathSource, error) {
	if path == "" {
		return nil, errors.New("catalog database path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog database path: %w", err)
	}

	return &PathSource{path: filepath.Clean(absPath)}, nil
}

func (s *PathSource) Load(ctx context.Context) ([]domain.Session, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, s.path)
		}
		return nil, fmt.Errorf("stat catalog database: %w", err)
	}

	src, err := Open(ctx, s.path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return src.Load(ctx)
}
