package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/headergen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/headergen/internal/core/domain"
)

func seededStamps(t *testing.T, targets ...string) *memory.StampStore {
	t.Helper()
	store := memory.NewStampStore()
	for _, target := range targets {
		require.NoError(t, store.Save(context.Background(), domain.Stamp{
			Target:      target,
			Digest:      "d-" + target,
			GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}))
	}
	return store
}

func TestCacheService_List(t *testing.T) {
	service := NewCacheService(seededStamps(t, "b.h", "a.h"))

	stamps, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, stamps, 2)
	assert.Equal(t, "a.h", stamps[0].Target)
	assert.Equal(t, "b.h", stamps[1].Target)
}

func TestCacheService_ClearAll(t *testing.T) {
	store := seededStamps(t, "a.h", "b.h")
	ctx := context.Background()

	removed, err := NewCacheService(store).Clear(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	left, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCacheService_ClearTargets(t *testing.T) {
	store := seededStamps(t, "a.h", "b.h")
	ctx := context.Background()

	removed, err := NewCacheService(store).Clear(ctx, "b.h", "missing.h", "b.h")

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	_, err = store.Get(ctx, "b.h")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(ctx, "a.h")
	assert.NoError(t, err)
}

// brokenStamps fails every List call.
type brokenStamps struct{ *memory.StampStore }

func (brokenStamps) List(context.Context) ([]domain.Stamp, error) {
	return nil, errors.New("database is locked")
}

func TestCacheService_ListError(t *testing.T) {
	service := NewCacheService(brokenStamps{memory.NewStampStore()})

	_, err := service.List(context.Background())
	assert.ErrorContains(t, err, "database is locked")

	_, err = service.Clear(context.Background())
	assert.ErrorContains(t, err, "database is locked")
}
