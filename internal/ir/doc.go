// Package ir holds the in-memory records a definitions file compiles to.
//
// This package contains record types and the pure transformations over them
// (canonical ordering, canonical JSON, fingerprints). All other internal
// packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Records are immutable once the loader returns them
//   - Emission order is always derived, never taken from map iteration
//   - The auxiliary payload (Extra) is carried but never rendered into code
package ir
