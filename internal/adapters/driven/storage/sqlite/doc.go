// Package sqlite provides a SQLite-backed implementation of driven.StampStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Stamps record the digest each header was last generated
// from so unchanged inputs can skip the write.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are tracked in schema_migrations.
//
// # Data Location
//
// The database lives at <cache dir>/stamps.db. The cache directory defaults
// to .headergen in the working directory.
package sqlite
