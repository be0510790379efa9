package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/med-cli/internal/catalog"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/ports"
)

// CatalogService loads the catalog once from its source and serves read-only
// queries for the rest of the process.
type CatalogService struct {
	source ports.SessionSource
	clock  ports.Clock
	logger *slog.Logger

	mu       sync.Mutex
	catalog  *catalog.Catalog
	loadedAt time.Time
}

func NewCatalogService(source ports.SessionSource, clock ports.Clock, logger *slog.Logger) *CatalogService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &CatalogService{
		source: source,
		clock:  clock,
		logger: logger,
	}
}

// Open loads the catalog if it has not been loaded yet. A failed load is not
// cached; the next call retries.
func (s *CatalogService) Open(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *CatalogService) load(ctx context.Context) (*catalog.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sessions, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	c, err := catalog.New(sessions)
	if err != nil {
		return nil, err
	}

	s.catalog = c
	s.loadedAt = s.clock.Now()
	s.logger.Debug("catalog loaded", "sessions", c.Len(), "loaded_at", s.loadedAt)

	return c, nil
}

func (s *CatalogService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return c.List(), nil
}

func (s *CatalogService) GetSession(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	c, err := s.load(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	return c.Get(id)
}

func (s *CatalogService) FilterSessions(ctx context.Context, preds ...Predicate) ([]domain.Session, error) {
	sessions, err := s.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Filter(sessions, preds...)
	s.logger.Debug("catalog filtered", "total", len(sessions), "matched", len(filtered))

	return filtered, nil
}

func (s *CatalogService) Summarize(ctx context.Context, preds ...Predicate) (Summary, error) {
	sessions, err := s.FilterSessions(ctx, preds...)
	if err != nil {
		return Summary{}, err
	}

	s.mu.Lock()
	loadedAt := s.loadedAt
	s.mu.Unlock()

	return summarize(sessions, loadedAt), nil
}
