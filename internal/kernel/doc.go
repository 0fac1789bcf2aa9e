// Package kernel implements the geometric products and sandwich
// conjugations of the projective algebra over simd.Vec registers.
//
// Every entity occupies one or two registers with a fixed lane layout:
//
//	plane      p0: (e0, e1, e2, e3)
//	rotor      p1: (1, e23, e31, e12)
//	translator p2: (e0123, e01, e02, e03)
//	motor      p1 + p2
//	line       pE: (_, e23, e31, e12)   pI: (_, e01, e02, e03)
//	point      p3: (e032, e013, e021, e123)
//
// Lane 0 of a line register is padding and must be zero on entry; the
// kernels neither read it nor write a nonzero value into it. The line
// registers share their shape with the motor registers so that a line
// can feed the even-grade kernels directly.
//
// Kernels are pure functions over register values. They allocate
// nothing, hold no state, and are safe to call concurrently.
package kernel
