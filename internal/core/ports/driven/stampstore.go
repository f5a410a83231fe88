package driven

import (
	"context"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// StampStore persists the input digest each artifact was last generated from.
type StampStore interface {
	// Save stores or updates the stamp for stamp.Target.
	Save(ctx context.Context, stamp domain.Stamp) error

	// Get retrieves the stamp for a target.
	// Returns domain.ErrNotFound if the target was never generated.
	Get(ctx context.Context, target string) (*domain.Stamp, error)

	// Delete removes the stamp for a target.
	Delete(ctx context.Context, target string) error

	// List returns all stamps ordered by target.
	List(ctx context.Context) ([]domain.Stamp, error)
}
