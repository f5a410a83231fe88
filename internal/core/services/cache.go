package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/core/ports/driving"
	"github.com/custodia-labs/headergen/internal/logger"
)

// Ensure CacheService implements the interface.
var _ driving.CacheService = (*CacheService)(nil)

// CacheService lists and clears generation stamps.
type CacheService struct {
	stamps driven.StampStore
}

// NewCacheService creates a cache service over stamps.
func NewCacheService(stamps driven.StampStore) *CacheService {
	return &CacheService{stamps: stamps}
}

// List returns every stamp ordered by target.
func (s *CacheService) List(ctx context.Context) ([]domain.Stamp, error) {
	stamps, err := s.stamps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stamps: %w", err)
	}
	return stamps, nil
}

// Clear removes the stamps for targets, or every stamp when targets is empty.
// Targets without a stamp are ignored.
func (s *CacheService) Clear(ctx context.Context, targets ...string) (int, error) {
	stamps, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	known := make(map[string]bool, len(stamps))
	for _, st := range stamps {
		known[st.Target] = true
	}
	if len(targets) == 0 {
		for _, st := range stamps {
			targets = append(targets, st.Target)
		}
	}

	removed := 0
	for _, target := range targets {
		if !known[target] {
			logger.Debug("no stamp to clear", "target", target)
			continue
		}
		if err := s.stamps.Delete(ctx, target); err != nil {
			return removed, fmt.Errorf("clear stamp %s: %w", target, err)
		}
		delete(known, target)
		removed++
	}
	return removed, nil
}
