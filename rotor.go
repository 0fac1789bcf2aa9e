package pga

import (
	"math"

	"github.com/hupe1980/go-pga/internal/kernel"
	"github.com/hupe1980/go-pga/internal/simd"
)

// Rotor is a rotation about a line through the origin, stored as the
// even-grade register (scalar, e23, e31, e12).
type Rotor struct {
	p1 simd.Vec
}

// NewRotor returns the rotor rotating by angle radians
// counter-clockwise about the axis (x, y, z). The axis need not be
// normalized; it must not be the zero vector.
func NewRotor(angle, x, y, z float32) Rotor {
	inv := simd.RSqrtNR1(x*x + y*y + z*z)
	half := float64(angle) * 0.5
	s := -float32(math.Sin(half)) * inv

	return Rotor{p1: simd.Vec{float32(math.Cos(half)), s * x, s * y, s * z}}
}

// RotorFromSlice loads a rotor from the first four elements of s in
// internal lane order (scalar, e23, e31, e12).
func RotorFromSlice(s []float32) Rotor {
	return Rotor{p1: simd.Vec{s[0], s[1], s[2], s[3]}}
}

// Scalar returns the scalar lane.
func (r Rotor) Scalar() float32 { return r.p1[0] }

// E23 returns the e23 coefficient.
func (r Rotor) E23() float32 { return r.p1[1] }

// E31 returns the e31 coefficient.
func (r Rotor) E31() float32 { return r.p1[2] }

// E12 returns the e12 coefficient.
func (r Rotor) E12() float32 { return r.p1[3] }

// Add returns the lane-wise sum r + b.
func (r Rotor) Add(b Rotor) Rotor {
	return Rotor{p1: simd.Add(r.p1, b.p1)}
}

// Sub returns the lane-wise difference r - b.
func (r Rotor) Sub(b Rotor) Rotor {
	return Rotor{p1: simd.Sub(r.p1, b.p1)}
}

// Scale multiplies every coefficient by s.
func (r Rotor) Scale(s float32) Rotor {
	return Rotor{p1: simd.Scale(r.p1, s)}
}

// InvScale multiplies every coefficient by the approximate reciprocal
// of s.
func (r Rotor) InvScale(s float32) Rotor {
	return Rotor{p1: simd.InvScale(r.p1, s)}
}

// Neg negates every coefficient. The negated rotor encodes the same
// rotation.
func (r Rotor) Neg() Rotor {
	return Rotor{p1: simd.Neg(r.p1)}
}

// Reverse returns the reversion of r, which undoes its rotation.
func (r Rotor) Reverse() Rotor {
	return Rotor{p1: simd.NegMask(r.p1, simd.MaskHi)}
}

// Normalized returns the rotor scaled to unit norm.
func (r Rotor) Normalized() Rotor {
	inv := simd.RSqrtNR1(simd.Dot4(r.p1, r.p1))
	return Rotor{p1: simd.Scale(r.p1, inv)}
}

// Norm returns the rotor norm over all four lanes.
func (r Rotor) Norm() float32 {
	return simd.Sqrt(simd.Dot4(r.p1, r.p1))
}

// Mul composes two rotors. The product r * b applies b first.
func (r Rotor) Mul(b Rotor) Rotor {
	c1, _ := kernel.MotorMotor(r.p1, simd.Vec{}, b.p1, simd.Vec{})
	return Rotor{p1: c1}
}

// MulTranslator composes a rotor and a translator into a motor that
// applies the translator first.
func (r Rotor) MulTranslator(t Translator) Motor {
	return Motor{p1: r.p1, p2: kernel.RotorTranslator(r.p1, t.p2)}
}

// TransformPlane rotates a plane.
func (r Rotor) TransformPlane(p Plane) Plane {
	return Plane{p0: kernel.MotorPlane(r.p1, simd.Vec{}, p.p0)}
}

// TransformLine rotates a line.
func (r Rotor) TransformLine(l Line) Line {
	e, i := kernel.MotorLine(r.p1, simd.Vec{}, l.e, l.i)
	return Line{e: e, i: i}
}

// TransformPoint rotates a point.
func (r Rotor) TransformPoint(q Point) Point {
	return Point{p3: kernel.MotorPoint(r.p1, simd.Vec{}, q.p3)}
}
