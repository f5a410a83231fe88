// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Emitter: Renders one kind of header document from its inputs
//   - EmitterRegistry: Selects the emitter for an artifact kind
//   - SourceReader: Reads input assets
//   - ArtifactWriter: Finalises generated documents
//   - ConfigStore: Application configuration
//   - Compressor: Reversible compression for embedded blobs
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - StampStore: Generation cache. Without it every run regenerates.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, emitter, or parser package
package driven
