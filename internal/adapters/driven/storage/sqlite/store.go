package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/headergen/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
)

// DefaultCacheDir is used when no cache directory is configured.
const DefaultCacheDir = ".headergen"

// dbFile is the database file name inside the cache directory.
const dbFile = "stamps.db"

// Store is a SQLite-based stamp cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in cacheDir.
// If cacheDir is empty, defaults to DefaultCacheDir.
func NewStore(cacheDir string) (*Store, error) {
	if cacheDir == "" {
		cacheDir = DefaultCacheDir
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cacheDir, dbFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// StampStore returns a StampStore interface backed by this store.
func (s *Store) StampStore() driven.StampStore {
	return &stampStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_stamps.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// apply executes one migration and records its version atomically.
func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ==================== Stamp Store ====================

// stampStore implements driven.StampStore.
type stampStore struct {
	store *Store
}

var _ driven.StampStore = (*stampStore)(nil)

// Save stores or updates a stamp.
func (s *stampStore) Save(ctx context.Context, stamp domain.Stamp) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO stamps (target, digest, generated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(target) DO UPDATE SET
			digest = excluded.digest,
			generated_at = excluded.generated_at
	`, stamp.Target, stamp.Digest, stamp.GeneratedAt.UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("saving stamp: %w", err)
	}
	return nil
}

// Get retrieves the stamp for a target.
func (s *stampStore) Get(ctx context.Context, target string) (*domain.Stamp, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT target, digest, generated_at FROM stamps WHERE target = ?", target)

	stamp, err := scanStamp(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting stamp: %w", err)
	}
	return stamp, nil
}

// Delete removes the stamp for a target.
func (s *stampStore) Delete(ctx context.Context, target string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM stamps WHERE target = ?", target); err != nil {
		return fmt.Errorf("deleting stamp: %w", err)
	}
	return nil
}

// List returns all stamps ordered by target.
func (s *stampStore) List(ctx context.Context) ([]domain.Stamp, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT target, digest, generated_at FROM stamps ORDER BY target")
	if err != nil {
		return nil, fmt.Errorf("listing stamps: %w", err)
	}
	defer rows.Close()

	var stamps []domain.Stamp
	for rows.Next() {
		stamp, err := scanStamp(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stamp: %w", err)
		}
		stamps = append(stamps, *stamp)
	}
	return stamps, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStamp(row rowScanner) (*domain.Stamp, error) {
	var (
		stamp       domain.Stamp
		generatedAt int64
	)
	if err := row.Scan(&stamp.Target, &stamp.Digest, &generatedAt); err != nil {
		return nil, err
	}
	stamp.GeneratedAt = time.Unix(0, generatedAt).UTC()
	return &stamp, nil
}
