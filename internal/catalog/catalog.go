// Package catalog holds the read-only, insertion-ordered list of meditation
// sessions. It does no filtering and makes no access decisions.
package catalog

import (
	"fmt"

	"github.com/bnema/med-cli/internal/domain"
)

type Catalog struct {
	sessions []domain.Session
	index    map[domain.SessionID]int
}

// New validates sessions and copies them into an immutable catalog.
func New(sessions []domain.Session) (*Catalog, error) {
	if err := domain.ValidateCatalog(sessions); err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	owned := make([]domain.Session, len(sessions))
	copy(owned, sessions)

	index := make(map[domain.SessionID]int, len(owned))
	for i, session := range owned {
		index[session.ID] = i
	}

	return &Catalog{sessions: owned, index: index}, nil
}

// List returns every session in insertion order. The slice is a fresh copy.
func (c *Catalog) List() []domain.Session {
	out := make([]domain.Session, len(c.sessions))
	copy(out, c.sessions)
	return out
}

func (c *Catalog) Len() int {
	return len(c.sessions)
}

func (c *Catalog) Get(id domain.SessionID) (domain.Session, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
	}
	return c.sessions[i], nil
}
