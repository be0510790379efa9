package ports

import (
	"context"

	"github.com/bnema/med-cli/internal/domain"
)

// SessionSource yields the ordered session list a catalog is built from.
type SessionSource interface {
	Load(ctx context.Context) ([]domain.Session, error)
}
