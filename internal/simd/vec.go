package simd

import "math"

// Vec is a 4-lane float32 register. Lane 0 occupies the lowest address,
// matching an unaligned vector load from a caller-owned float buffer.
type Vec [4]float32

// Lane mask bits for NegMask. Bit i selects lane i.
const (
	MaskLane0 = 1 << iota
	MaskLane1
	MaskLane2
	MaskLane3

	// MaskAll selects every lane; used for unary minus.
	MaskAll = MaskLane0 | MaskLane1 | MaskLane2 | MaskLane3

	// MaskHi selects lanes 1-3, the metric-relevant lanes of a
	// grade-1 register and the bivector lanes of an even-grade
	// register (used by reversion).
	MaskHi = MaskLane1 | MaskLane2 | MaskLane3
)

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override them when the detected ISA allows.
var (
	addImpl      = addGeneric
	subImpl      = subGeneric
	mulImpl      = mulGeneric
	scaleImpl    = scaleGeneric
	invScaleImpl = invScaleGeneric
	hiDPBCImpl   = hiDPBCGeneric
)

// Add returns the lane-wise sum a + b.
func Add(a, b Vec) Vec { return addImpl(a, b) }

// Sub returns the lane-wise difference a - b.
func Sub(a, b Vec) Vec { return subImpl(a, b) }

// Mul returns the lane-wise product a * b.
func Mul(a, b Vec) Vec { return mulImpl(a, b) }

// Scale multiplies every lane of a by s.
func Scale(a Vec, s float32) Vec { return scaleImpl(a, s) }

// InvScale multiplies every lane of a by the reciprocal of s.
//
// The reciprocal is an approximation (RCPPS on x86-64, with roughly
// 1.5x2^-12 relative error); the generic fallback divides exactly, which
// trivially satisfies the same bound. A zero s yields the approximate
// reciprocal's natural result, saturated or infinite, never an error.
func InvScale(a Vec, s float32) Vec { return invScaleImpl(a, s) }

// HiDPBC computes the metric dot product of two registers - the sum of
// the pairwise products of lanes 1-3, the lane 0 pair never contributes
// because the algebra's metric is degenerate there - and broadcasts the
// result into every lane.
func HiDPBC(a, b Vec) Vec { return hiDPBCImpl(a, b) }

// HiDP is HiDPBC reduced to its scalar value.
func HiDP(a, b Vec) float32 { return hiDPBCImpl(a, b)[0] }

// Dot4 is the full 4-lane dot product, used where lane 0 carries a
// metric coefficient (the scalar lane of a rotor).
func Dot4(a, b Vec) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// NegMask flips the sign bit of the lanes selected by mask. The flip is
// a pure bit operation: negating twice restores the original bit
// pattern exactly, including for zeros and NaNs.
func NegMask(a Vec, mask uint8) Vec {
	for i := range a {
		if mask&(1<<i) != 0 {
			a[i] = math.Float32frombits(math.Float32bits(a[i]) ^ 0x80000000)
		}
	}
	return a
}

// Neg is unary minus: NegMask over all lanes.
func Neg(a Vec) Vec { return NegMask(a, MaskAll) }

func addGeneric(a, b Vec) Vec {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func subGeneric(a, b Vec) Vec {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func mulGeneric(a, b Vec) Vec {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func scaleGeneric(a Vec, s float32) Vec {
	for i := range a {
		a[i] *= s
	}
	return a
}

func invScaleGeneric(a Vec, s float32) Vec {
	return scaleGeneric(a, 1/s)
}

func hiDPBCGeneric(a, b Vec) Vec {
	d := a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
	return Vec{d, d, d, d}
}

// rsqrtApprox is the fast approximate reciprocal square root seed. The
// integer-shift estimate refined once lands near the accuracy of the
// hardware RSQRTPS approximation (about 1.5x2^-12 relative error).
func rsqrtApprox(x float32) float32 {
	y := math.Float32frombits(0x5f375a86 - math.Float32bits(x)>>1)
	return y * (1.5 - 0.5*x*y*y)
}

// RSqrtNR1 returns the reciprocal square root of x: the fast
// approximation with one Newton-Raphson refinement step applied.
// Maximum relative error is on the order of 2^-12; it is not corrected
// further. When x == 0 the result saturates rather than erroring.
func RSqrtNR1(x float32) float32 {
	y := rsqrtApprox(x)
	return y * (1.5 - 0.5*x*y*y)
}

// Sqrt composes the reciprocal of RSqrtNR1, yielding the true
// (non-reciprocal) square root to the same error bound. Norm queries
// use it for distances between normalized entities.
func Sqrt(x float32) float32 {
	if x == 0 {
		return 0
	}
	return 1 / RSqrtNR1(x)
}
