package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "stamps.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_RecordsMigrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store1, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store1.StampStore().Save(context.Background(), domain.Stamp{Target: "a", Digest: "d"}))
	require.NoError(t, store1.Close())

	store2, err := NewStore(dir)
	require.NoError(t, err)
	defer store2.Close()

	var count int
	require.NoError(t, store2.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	got, err := store2.StampStore().Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "d", got.Digest)
}

// ==================== Stamp Store Tests ====================

func TestStampStore_SaveAndGet(t *testing.T) {
	stamps := setupTestStore(t).StampStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC)

	require.NoError(t, stamps.Save(ctx, domain.Stamp{Target: "core/license.gen.h", Digest: "abc", GeneratedAt: now}))

	got, err := stamps.Get(ctx, "core/license.gen.h")
	require.NoError(t, err)
	assert.Equal(t, "core/license.gen.h", got.Target)
	assert.Equal(t, "abc", got.Digest)
	assert.True(t, now.Equal(got.GeneratedAt))
}

func TestStampStore_GetNotFound(t *testing.T) {
	stamps := setupTestStore(t).StampStore()

	_, err := stamps.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStampStore_SaveUpserts(t *testing.T) {
	stamps := setupTestStore(t).StampStore()
	ctx := context.Background()

	require.NoError(t, stamps.Save(ctx, domain.Stamp{Target: "a", Digest: "1"}))
	require.NoError(t, stamps.Save(ctx, domain.Stamp{Target: "a", Digest: "2"}))

	got, err := stamps.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", got.Digest)

	list, err := stamps.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStampStore_DeleteAndList(t *testing.T) {
	stamps := setupTestStore(t).StampStore()
	ctx := context.Background()

	for _, target := range []string{"c", "a", "b"} {
		require.NoError(t, stamps.Save(ctx, domain.Stamp{Target: target, Digest: target}))
	}
	require.NoError(t, stamps.Delete(ctx, "b"))

	list, err := stamps.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Target)
	assert.Equal(t, "c", list[1].Target)
}

func TestStampStore_ListEmpty(t *testing.T) {
	list, err := setupTestStore(t).StampStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
