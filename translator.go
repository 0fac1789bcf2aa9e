package pga

import (
	"github.com/hupe1980/go-pga/internal/kernel"
	"github.com/hupe1980/go-pga/internal/simd"
)

// Translator is a translation, stored as the ideal register
// (_, e01, e02, e03) with an implicit scalar of 1. Lane 0 is padding
// and always zero.
type Translator struct {
	p2 simd.Vec
}

// NewTranslator returns the translator moving points by delta along
// the direction (x, y, z). The direction need not be normalized; it
// must not be the zero vector.
func NewTranslator(delta, x, y, z float32) Translator {
	half := -0.5 * delta * simd.RSqrtNR1(x*x+y*y+z*z)
	return Translator{p2: simd.Vec{0, half * x, half * y, half * z}}
}

// TranslatorFromSlice loads a translator from the first three elements
// of s in lane order (e01, e02, e03).
func TranslatorFromSlice(s []float32) Translator {
	return Translator{p2: simd.Vec{0, s[0], s[1], s[2]}}
}

// E01 returns the e01 coefficient.
func (t Translator) E01() float32 { return t.p2[1] }

// E02 returns the e02 coefficient.
func (t Translator) E02() float32 { return t.p2[2] }

// E03 returns the e03 coefficient.
func (t Translator) E03() float32 { return t.p2[3] }

// Add returns the lane-wise sum t + b.
func (t Translator) Add(b Translator) Translator {
	return Translator{p2: simd.Add(t.p2, b.p2)}
}

// Sub returns the lane-wise difference t - b.
func (t Translator) Sub(b Translator) Translator {
	return Translator{p2: simd.Sub(t.p2, b.p2)}
}

// Scale multiplies every coefficient by s, scaling the translation
// distance by the same factor.
func (t Translator) Scale(s float32) Translator {
	return Translator{p2: simd.Scale(t.p2, s)}
}

// InvScale multiplies every coefficient by the approximate reciprocal
// of s.
func (t Translator) InvScale(s float32) Translator {
	return Translator{p2: simd.InvScale(t.p2, s)}
}

// Neg negates every coefficient, reversing the translation direction.
func (t Translator) Neg() Translator {
	tr := Translator{p2: simd.Neg(t.p2)}
	tr.p2[0] = 0
	return tr
}

// Norm returns the ideal norm, half the translation distance.
func (t Translator) Norm() float32 {
	return simd.Sqrt(simd.HiDP(t.p2, t.p2))
}

// Reverse returns the reversion of t, which undoes its translation.
func (t Translator) Reverse() Translator {
	return Translator{p2: simd.NegMask(t.p2, simd.MaskHi)}
}

// MulRotor composes a translator and a rotor into a motor that applies
// the rotor first. The result differs from Rotor.MulTranslator with
// the same operands because the algebra is not commutative.
func (t Translator) MulRotor(r Rotor) Motor {
	return Motor{p1: r.p1, p2: kernel.TranslatorRotor(t.p2, r.p1)}
}

// TransformPlane translates a plane. Only the offset changes.
func (t Translator) TransformPlane(p Plane) Plane {
	return Plane{p0: kernel.TranslatorPlane(t.p2, p.p0)}
}

// TransformLine translates a line. The direction is unchanged and the
// moment shifts.
func (t Translator) TransformLine(l Line) Line {
	e, i := kernel.TranslatorLine(t.p2, l.e, l.i)
	return Line{e: e, i: i}
}

// TransformPoint translates a point.
func (t Translator) TransformPoint(q Point) Point {
	return Point{p3: kernel.TranslatorPoint(t.p2, q.p3)}
}
