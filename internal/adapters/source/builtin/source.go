package builtin

import (
	"context"

	"github.com/bnema/med-cli/internal/catalog"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/ports"
)

// Source serves the sample catalog compiled into the binary.
type Source struct{}

var _ ports.SessionSource = Source{}

func (Source) Load(ctx context.Context) ([]domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return catalog.Sample().List(), nil
}
