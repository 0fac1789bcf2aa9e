package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/go-pga/internal/simd"
)

// Register fixtures below are written in internal lane order:
// plane (e0, e1, e2, e3), even p1 (1, e23, e31, e12),
// even p2 (e0123, e01, e02, e03), point (e032, e013, e021, e123).

func TestPlanePlane(t *testing.T) {
	// x + 2y + 3z + 4 = 0 and 2x + 3y - z - 2 = 0.
	a := simd.Vec{4, 1, 2, 3}
	b := simd.Vec{-2, 2, 3, -1}

	p1, p2 := PlanePlane(a, b)

	assert.Equal(t, simd.Vec{5, -11, 7, -1}, p1)
	assert.Equal(t, simd.Vec{0, 10, 16, 2}, p2)
}

func TestPlanePoint(t *testing.T) {
	a := simd.Vec{4, 1, 2, 3}
	b := simd.Vec{-2, 1, 4, 1}

	p1, p2 := PlanePoint(a, b)

	assert.Equal(t, simd.Vec{0, 1, 2, 3}, p1)
	assert.Equal(t, simd.Vec{16, -5, 10, -5}, p2)
}

func TestPointPlane(t *testing.T) {
	a := simd.Vec{-2, 1, 4, 1}
	b := simd.Vec{4, 1, 2, 3}

	p1, p2 := PointPlane(a, b)

	// Reversing the operands flips exactly the pseudoscalar lane.
	assert.Equal(t, simd.Vec{0, 1, 2, 3}, p1)
	assert.Equal(t, simd.Vec{-16, -5, 10, -5}, p2)
}

func TestPointPoint(t *testing.T) {
	a := simd.Vec{1, 2, 3, 1}
	b := simd.Vec{-2, 1, 4, 1}

	p1, p2 := PointPoint(a, b)

	assert.Equal(t, simd.Vec{-1, 0, 0, 0}, p1)
	assert.Equal(t, simd.Vec{0, 3, 1, -1}, p2)
}

func TestLineLine(t *testing.T) {
	// e01 + 3e23 + 2e31 + e12
	aE := simd.Vec{0, 3, 2, 1}
	aI := simd.Vec{0, 1, 0, 0}
	// e02 + 4e23 + e31 - 2e12
	bE := simd.Vec{0, 4, 1, -2}
	bI := simd.Vec{0, 0, 1, 0}

	p1, p2 := LineLine(aE, aI, bE, bI)

	assert.Equal(t, simd.Vec{-12, 5, -10, 5}, p1)
	assert.Equal(t, simd.Vec{6, 1, -2, -4}, p2)
}

func TestMotorMotor(t *testing.T) {
	a1 := simd.Vec{2, 3, 4, 5}
	a2 := simd.Vec{9, 6, 7, 8}
	b1 := simd.Vec{6, 7, 8, 9}
	b2 := simd.Vec{13, 10, 11, 12}

	c1, c2 := MotorMotor(a1, a2, b1, b2)

	assert.Equal(t, simd.Vec{-86, 36, 32, 52}, c1)
	assert.Equal(t, simd.Vec{384, -38, -76, -66}, c2)
}

func TestRotorTranslatorAsymmetry(t *testing.T) {
	r := simd.Vec{2, 3, 5, 7}
	tr := simd.Vec{0, 11, 13, 17}

	rt := RotorTranslator(r, tr)
	tr2 := TranslatorRotor(tr, r)

	// The ideal scalars agree; the cross terms do not. The algebra is
	// not commutative, so the two orders produce distinct motors.
	assert.Equal(t, rt[0], tr2[0])
	assert.NotEqual(t, rt, tr2)
}

func TestRotorTranslatorMatchesMotorMotor(t *testing.T) {
	r := simd.Vec{2, 3, 5, 7}
	tr := simd.Vec{0, 11, 13, 17}

	// A rotor is a motor with zero ideal register, a translator a
	// motor with identity p1. The specialized products must agree
	// with the general one.
	c1, c2 := MotorMotor(r, simd.Vec{}, simd.Vec{1, 0, 0, 0}, tr)
	assert.Equal(t, r, c1)
	assert.Equal(t, RotorTranslator(r, tr), c2)

	c1, c2 = MotorMotor(simd.Vec{1, 0, 0, 0}, tr, r, simd.Vec{})
	assert.Equal(t, r, c1)
	assert.Equal(t, TranslatorRotor(tr, r), c2)
}

func TestPlanePlaneMatchesMotorSquare(t *testing.T) {
	// The square of a plane under the geometric product is its metric
	// norm: p1 = (n.n, 0, 0, 0), p2 ideal lanes proportional to the
	// normal scaled against the offset difference (zero for a = b).
	a := simd.Vec{4, 1, 2, 3}

	p1, p2 := PlanePlane(a, a)

	assert.Equal(t, simd.Vec{14, 0, 0, 0}, p1)
	assert.Equal(t, simd.Vec{}, p2)
}
