// Package pga implements the computational kernel of the projective
// geometric algebra over 3D Euclidean space: planes, lines and points
// as value types, together with the rotors, translators and motors
// that move them.
//
// Entities are stored in 4-lane float32 registers. All operations are
// total over finite inputs and return values; there are no error paths
// and IEEE-754 special values propagate through arithmetic unchanged.
// Values are immutable: every method returns a new value.
//
// On amd64 the elementary register operations are implemented in SSE
// assembly; other platforms and builds tagged noasm use a portable pure
// Go path with identical semantics. The selection can be forced through
// the PGA_SIMD environment variable and inspected with ActiveSIMD.
package pga
