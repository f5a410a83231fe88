// Package file provides the TOML-file implementation of driven.ConfigStore.
//
// The store reads headergen.toml from a configuration directory. Nested
// tables are flattened into dot-notation keys ("certs.system_path") on load
// and rebuilt into tables on save.
package file
