package pga

import (
	"github.com/hupe1980/go-pga/internal/kernel"
	"github.com/hupe1980/go-pga/internal/simd"
)

// Line is a grade-2 entity in Pluecker coordinates: a Euclidean
// register (_, e23, e31, e12) carrying the direction and an ideal
// register (_, e01, e02, e03) carrying the moment. Lane 0 of both
// registers is padding and always zero, which lets the registers share
// the shape of the motor registers.
type Line struct {
	e simd.Vec
	i simd.Vec
}

// NewLine returns the line
// a*e01 + b*e02 + c*e03 + d*e23 + e*e31 + f*e12.
func NewLine(a, b, c, d, e, f float32) Line {
	return Line{
		e: simd.Vec{0, d, e, f},
		i: simd.Vec{0, a, b, c},
	}
}

// LineFromSlice loads a line from the first six elements of s in the
// coefficient order of NewLine.
func LineFromSlice(s []float32) Line {
	return NewLine(s[0], s[1], s[2], s[3], s[4], s[5])
}

// E01 returns the e01 moment coefficient.
func (l Line) E01() float32 { return l.i[1] }

// E02 returns the e02 moment coefficient.
func (l Line) E02() float32 { return l.i[2] }

// E03 returns the e03 moment coefficient.
func (l Line) E03() float32 { return l.i[3] }

// E23 returns the e23 direction coefficient.
func (l Line) E23() float32 { return l.e[1] }

// E31 returns the e31 direction coefficient.
func (l Line) E31() float32 { return l.e[2] }

// E12 returns the e12 direction coefficient.
func (l Line) E12() float32 { return l.e[3] }

// Add returns the lane-wise sum l + b.
func (l Line) Add(b Line) Line {
	return Line{e: simd.Add(l.e, b.e), i: simd.Add(l.i, b.i)}
}

// Sub returns the lane-wise difference l - b.
func (l Line) Sub(b Line) Line {
	return Line{e: simd.Sub(l.e, b.e), i: simd.Sub(l.i, b.i)}
}

// Scale multiplies every coefficient by s.
func (l Line) Scale(s float32) Line {
	return Line{e: simd.Scale(l.e, s), i: simd.Scale(l.i, s)}
}

// InvScale multiplies every coefficient by the approximate reciprocal
// of s.
func (l Line) InvScale(s float32) Line {
	return Line{e: simd.InvScale(l.e, s), i: simd.InvScale(l.i, s)}
}

// Neg negates every coefficient, flipping the line's orientation.
func (l Line) Neg() Line {
	ln := Line{e: simd.Neg(l.e), i: simd.Neg(l.i)}
	ln.e[0] = 0
	ln.i[0] = 0
	return ln
}

// Normalized returns the line scaled so that its direction has unit
// length. An ideal line (zero direction) saturates; callers must not
// normalize ideal lines.
func (l Line) Normalized() Line {
	inv := simd.RSqrtNR1(simd.HiDP(l.e, l.e))
	return Line{e: simd.Scale(l.e, inv), i: simd.Scale(l.i, inv)}
}

// Norm returns the length of the line direction.
func (l Line) Norm() float32 {
	return simd.Sqrt(simd.HiDP(l.e, l.e))
}

// Mul is the geometric product of two lines. For normalized operands
// the result is the motor carrying l onto b through twice their
// separating angle and distance.
func (l Line) Mul(b Line) Motor {
	p1, p2 := kernel.LineLine(l.e, l.i, b.e, b.i)
	return Motor{p1: p1, p2: p2}
}
