// Package domain defines the core entities for headergen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LicenseRecord: One license entry extracted from a copyright manifest
//   - SectionEntries: Bullet entries grouped under configured headings
//   - PackagedBlob: Compressed bytes annotated with their sizes
//   - GeneratorSettings: The resolved configuration for a generation run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
