// Package emitters provides implementations of the Emitter interface
// for each generated header document. Each emitter knows how to turn one
// kind of build asset into a C header.
//
// Emitters are registered with the EmitterRegistry at startup.
package emitters
