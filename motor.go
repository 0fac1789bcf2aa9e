package pga

import (
	"github.com/hupe1980/go-pga/internal/kernel"
	"github.com/hupe1980/go-pga/internal/simd"
)

// Motor is a general rigid motion, a screw combining rotation about a
// line with translation along it. It is stored as the even-grade
// register pair (scalar, e23, e31, e12) and (e0123, e01, e02, e03).
type Motor struct {
	p1 simd.Vec
	p2 simd.Vec
}

// NewMotor returns the motor
// a + b*e23 + c*e31 + d*e12 + e*e01 + f*e02 + g*e03 + h*e0123.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	return Motor{
		p1: simd.Vec{a, b, c, d},
		p2: simd.Vec{h, e, f, g},
	}
}

// NewMotorFromRT composes rotor and translator into the motor r * t,
// which applies the translator first.
func NewMotorFromRT(r Rotor, t Translator) Motor {
	return r.MulTranslator(t)
}

// MotorFromSlice loads a motor from the first eight elements of s in
// the coefficient order of NewMotor.
func MotorFromSlice(s []float32) Motor {
	return NewMotor(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7])
}

// Scalar returns the scalar lane.
func (m Motor) Scalar() float32 { return m.p1[0] }

// E23 returns the e23 coefficient.
func (m Motor) E23() float32 { return m.p1[1] }

// E31 returns the e31 coefficient.
func (m Motor) E31() float32 { return m.p1[2] }

// E12 returns the e12 coefficient.
func (m Motor) E12() float32 { return m.p1[3] }

// E01 returns the e01 coefficient.
func (m Motor) E01() float32 { return m.p2[1] }

// E02 returns the e02 coefficient.
func (m Motor) E02() float32 { return m.p2[2] }

// E03 returns the e03 coefficient.
func (m Motor) E03() float32 { return m.p2[3] }

// E0123 returns the pseudoscalar coefficient.
func (m Motor) E0123() float32 { return m.p2[0] }

// Add returns the lane-wise sum m + b.
func (m Motor) Add(b Motor) Motor {
	return Motor{p1: simd.Add(m.p1, b.p1), p2: simd.Add(m.p2, b.p2)}
}

// Sub returns the lane-wise difference m - b.
func (m Motor) Sub(b Motor) Motor {
	return Motor{p1: simd.Sub(m.p1, b.p1), p2: simd.Sub(m.p2, b.p2)}
}

// Scale multiplies every coefficient by s.
func (m Motor) Scale(s float32) Motor {
	return Motor{p1: simd.Scale(m.p1, s), p2: simd.Scale(m.p2, s)}
}

// InvScale multiplies every coefficient by the approximate reciprocal
// of s.
func (m Motor) InvScale(s float32) Motor {
	return Motor{p1: simd.InvScale(m.p1, s), p2: simd.InvScale(m.p2, s)}
}

// Neg negates every coefficient.
func (m Motor) Neg() Motor {
	return Motor{p1: simd.Neg(m.p1), p2: simd.Neg(m.p2)}
}

// Norm returns the rotor-part norm over all four lanes.
func (m Motor) Norm() float32 {
	return simd.Sqrt(simd.Dot4(m.p1, m.p1))
}

// Reverse returns the reversion of m, which undoes its motion when m
// is normalized.
func (m Motor) Reverse() Motor {
	return Motor{
		p1: simd.NegMask(m.p1, simd.MaskHi),
		p2: simd.NegMask(m.p2, simd.MaskHi),
	}
}

// Normalized returns the motor scaled so that m * ~m = 1. Both the
// scalar and the pseudoscalar component of the norm are corrected.
func (m Motor) Normalized() Motor {
	u := simd.Dot4(m.p1, m.p1)
	w := 2 * (m.p1[0]*m.p2[0] - simd.HiDP(m.p1, m.p2))

	s := simd.RSqrtNR1(u)
	t := -w / (2 * u) * s

	p2 := simd.Scale(m.p2, s)
	p2 = simd.Add(p2, simd.Scale(simd.Vec{m.p1[0], -m.p1[1], -m.p1[2], -m.p1[3]}, t))

	return Motor{p1: simd.Scale(m.p1, s), p2: p2}
}

// Mul composes two motors. The product m * b applies b first.
func (m Motor) Mul(b Motor) Motor {
	c1, c2 := kernel.MotorMotor(m.p1, m.p2, b.p1, b.p2)
	return Motor{p1: c1, p2: c2}
}

// TransformPlane applies the motor to a plane.
func (m Motor) TransformPlane(p Plane) Plane {
	return Plane{p0: kernel.MotorPlane(m.p1, m.p2, p.p0)}
}

// TransformLine applies the motor to a line.
func (m Motor) TransformLine(l Line) Line {
	e, i := kernel.MotorLine(m.p1, m.p2, l.e, l.i)
	return Line{e: e, i: i}
}

// TransformPoint applies the motor to a point.
func (m Motor) TransformPoint(q Point) Point {
	return Point{p3: kernel.MotorPoint(m.p1, m.p2, q.p3)}
}

// TransformPoints applies the motor to every point in qs and returns
// the results in a new slice. The rotation matrix is factored out of
// the loop, so transforming a batch is cheaper than repeated calls to
// TransformPoint for large inputs.
func (m Motor) TransformPoints(qs []Point) []Point {
	if len(qs) == 0 {
		return nil
	}

	pt := kernel.NewPointTransformer(m.p1, m.p2)

	out := make([]Point, len(qs))
	for i, q := range qs {
		out[i] = Point{p3: pt.Apply(q.p3)}
	}

	return out
}
