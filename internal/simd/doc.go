// Package simd provides the 4-lane float32 register the algebra kernels
// are built on, together with its elementary operations: lane-wise
// add/sub/multiply, uniform scale and approximate inverse scale,
// selective sign flips, the metric dot product, and a fast approximate
// reciprocal square root with Newton-Raphson refinement.
//
// # Supported Platforms
//
//   - x86-64: SSE2 baseline, SSE3 horizontal dot path
//   - everything else: pure Go struct-of-four fallback
//
// Runtime CPU feature detection selects the implementation. Build with
// -tags noasm (or set PGA_SIMD=generic) to force the generic Go
// fallback. The generic fallback implements identical lane semantics;
// correctness, not speed, is the portable contract.
package simd
