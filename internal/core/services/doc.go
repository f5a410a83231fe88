// Package services implements the driving port interfaces.
// Services contain the generation workflow and orchestrate
// calls to driven ports (adapters).
//
// The whole output document is rendered in memory before the
// artifact writer is called, so a failed run writes nothing.
package services
