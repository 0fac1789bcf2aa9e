package kernel

import "github.com/hupe1980/go-pga/internal/simd"

// PlanePlane is the geometric product of two planes. The result is a
// motor: p1 carries the scalar and bivector part, p2 the ideal part.
// For normalized planes this is the rotor-translator pair whose
// sandwich composes the two reflections.
func PlanePlane(a, b simd.Vec) (p1, p2 simd.Vec) {
	p1 = simd.Vec{
		a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		a[2]*b[3] - a[3]*b[2],
		a[3]*b[1] - a[1]*b[3],
		a[1]*b[2] - a[2]*b[1],
	}
	p2 = simd.Vec{
		0,
		a[0]*b[1] - a[1]*b[0],
		a[0]*b[2] - a[2]*b[0],
		a[0]*b[3] - a[3]*b[0],
	}

	return
}

// PlanePoint is the geometric product plane * point.
func PlanePoint(a, b simd.Vec) (p1, p2 simd.Vec) {
	p1 = simd.Vec{
		0,
		a[1] * b[3],
		a[2] * b[3],
		a[3] * b[3],
	}
	p2 = simd.Vec{
		a[0]*b[3] + a[1]*b[0] + a[2]*b[1] + a[3]*b[2],
		a[3]*b[1] - a[2]*b[2],
		a[1]*b[2] - a[3]*b[0],
		a[2]*b[0] - a[1]*b[1],
	}

	return
}

// PointPlane is the geometric product point * plane. It differs from
// PlanePoint only in the sign of the pseudoscalar lane.
func PointPlane(a, b simd.Vec) (p1, p2 simd.Vec) {
	p1, p2 = PlanePoint(b, a)
	p2[0] = -p2[0]

	return
}

// PointPoint is the geometric product of two points: a scalar plus an
// ideal line (a translator). Sandwiching with its square root
// translates one point onto the other.
func PointPoint(a, b simd.Vec) (p1, p2 simd.Vec) {
	p1 = simd.Vec{-a[3] * b[3], 0, 0, 0}
	p2 = simd.Vec{
		0,
		a[0]*b[3] - a[3]*b[0],
		a[1]*b[3] - a[3]*b[1],
		a[2]*b[3] - a[3]*b[2],
	}

	return
}

// LineLine is the geometric product of two lines given as their
// Euclidean and ideal registers. Lane 0 of each input is padding.
func LineLine(aE, aI, bE, bI simd.Vec) (p1, p2 simd.Vec) {
	p1 = simd.Vec{
		-(aE[1]*bE[1] + aE[2]*bE[2] + aE[3]*bE[3]),
		aE[3]*bE[2] - aE[2]*bE[3],
		aE[1]*bE[3] - aE[3]*bE[1],
		aE[2]*bE[1] - aE[1]*bE[2],
	}
	p2 = simd.Vec{
		aE[1]*bI[1] + aE[2]*bI[2] + aE[3]*bI[3] +
			aI[1]*bE[1] + aI[2]*bE[2] + aI[3]*bE[3],
		aE[3]*bI[2] - aE[2]*bI[3] + aI[3]*bE[2] - aI[2]*bE[3],
		aE[1]*bI[3] - aE[3]*bI[1] + aI[1]*bE[3] - aI[3]*bE[1],
		aE[2]*bI[1] - aE[1]*bI[2] + aI[2]*bE[1] - aI[1]*bE[2],
	}

	return
}

// RotorTranslator is the geometric product rotor * translator. The p1
// part of the result is the rotor unchanged; only the ideal register is
// produced. The translator's implicit scalar lane is 1.
func RotorTranslator(a, t simd.Vec) simd.Vec {
	return simd.Vec{
		a[1]*t[1] + a[2]*t[2] + a[3]*t[3],
		a[0]*t[1] + a[3]*t[2] - a[2]*t[3],
		a[0]*t[2] + a[1]*t[3] - a[3]*t[1],
		a[0]*t[3] + a[2]*t[1] - a[1]*t[2],
	}
}

// TranslatorRotor is the geometric product translator * rotor. The
// cross terms flip sign relative to RotorTranslator; the two products
// agree only when the rotor axis and translation direction align.
func TranslatorRotor(t, b simd.Vec) simd.Vec {
	return simd.Vec{
		t[1]*b[1] + t[2]*b[2] + t[3]*b[3],
		t[1]*b[0] + t[3]*b[2] - t[2]*b[3],
		t[2]*b[0] + t[1]*b[3] - t[3]*b[1],
		t[3]*b[0] + t[2]*b[1] - t[1]*b[2],
	}
}

// MotorMotor is the full even-grade geometric product. It composes two
// motors into one; rotor * rotor is the p1 half with zero p2 inputs.
func MotorMotor(a1, a2, b1, b2 simd.Vec) (c1, c2 simd.Vec) {
	a0, a1e, a2e, a3 := a1[0], a1[1], a1[2], a1[3]
	a4, a5, a6, a7 := a2[0], a2[1], a2[2], a2[3]
	b0, b1e, b2e, b3 := b1[0], b1[1], b1[2], b1[3]
	b4, b5, b6, b7 := b2[0], b2[1], b2[2], b2[3]

	c1 = simd.Vec{
		a0*b0 - a1e*b1e - a2e*b2e - a3*b3,
		a0*b1e + a1e*b0 - a2e*b3 + a3*b2e,
		a0*b2e + a2e*b0 + a1e*b3 - a3*b1e,
		a0*b3 + a3*b0 + a2e*b1e - a1e*b2e,
	}
	c2 = simd.Vec{
		a0*b4 + a4*b0 + a1e*b5 + a2e*b6 + a3*b7 +
			a5*b1e + a6*b2e + a7*b3,
		a0*b5 + a5*b0 - a4*b1e - a1e*b4 + a3*b6 - a2e*b7 + a7*b2e - a6*b3,
		a0*b6 + a6*b0 - a4*b2e - a2e*b4 + a1e*b7 - a3*b5 + a5*b3 - a7*b1e,
		a0*b7 + a7*b0 - a4*b3 - a3*b4 + a2e*b5 - a1e*b6 + a6*b1e - a5*b2e,
	}

	return
}
