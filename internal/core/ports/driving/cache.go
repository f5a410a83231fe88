package driving

import (
	"context"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// CacheService manages the generation stamps.
type CacheService interface {
	// List returns every stamp ordered by target.
	List(ctx context.Context) ([]domain.Stamp, error)

	// Clear removes the stamps for targets, or every stamp when none are
	// given. It returns how many stamps were removed.
	Clear(ctx context.Context, targets ...string) (int, error)
}
