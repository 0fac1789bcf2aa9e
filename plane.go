package pga

import (
	"github.com/hupe1980/go-pga/internal/kernel"
	"github.com/hupe1980/go-pga/internal/simd"
)

// Plane is the set of points satisfying ax + by + cz + d = 0, stored
// as the grade-1 register (e0, e1, e2, e3). Planes are the reflecting
// elements of the algebra: every rigid motion is a composition of
// plane reflections.
type Plane struct {
	p0 simd.Vec
}

// NewPlane returns the plane ax + by + cz + d = 0.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{p0: simd.Vec{d, a, b, c}}
}

// PlaneFromSlice loads a plane from the first four elements of s in
// internal lane order (e0, e1, e2, e3). The slice needs no particular
// alignment but must hold at least four elements.
func PlaneFromSlice(s []float32) Plane {
	return Plane{p0: simd.Vec{s[0], s[1], s[2], s[3]}}
}

// X returns the x component of the plane normal.
func (p Plane) X() float32 { return p.p0[1] }

// Y returns the y component of the plane normal.
func (p Plane) Y() float32 { return p.p0[2] }

// Z returns the z component of the plane normal.
func (p Plane) Z() float32 { return p.p0[3] }

// D returns the plane offset.
func (p Plane) D() float32 { return p.p0[0] }

// Add returns the lane-wise sum p + b.
func (p Plane) Add(b Plane) Plane {
	return Plane{p0: simd.Add(p.p0, b.p0)}
}

// Sub returns the lane-wise difference p - b.
func (p Plane) Sub(b Plane) Plane {
	return Plane{p0: simd.Sub(p.p0, b.p0)}
}

// Scale multiplies every coefficient by s.
func (p Plane) Scale(s float32) Plane {
	return Plane{p0: simd.Scale(p.p0, s)}
}

// InvScale multiplies every coefficient by the approximate reciprocal
// of s.
func (p Plane) InvScale(s float32) Plane {
	return Plane{p0: simd.InvScale(p.p0, s)}
}

// Neg negates every coefficient, flipping the plane's orientation.
func (p Plane) Neg() Plane {
	return Plane{p0: simd.Neg(p.p0)}
}

// Normalized returns the plane scaled so that its normal has unit
// length. The offset lane is left untouched; the scale factor applied
// to the degenerate e0 lane is exactly 1.
func (p Plane) Normalized() Plane {
	inv := simd.RSqrtNR1(simd.HiDP(p.p0, p.p0))
	return Plane{p0: simd.Mul(p.p0, simd.Vec{1, inv, inv, inv})}
}

// Norm returns the length of the plane normal.
func (p Plane) Norm() float32 {
	return simd.Sqrt(simd.HiDP(p.p0, p.p0))
}

// Mul is the geometric product of two planes. For normalized operands
// the result is the motor rotating p into b through twice their
// separating angle about their intersection line.
func (p Plane) Mul(b Plane) Motor {
	p1, p2 := kernel.PlanePlane(p.p0, b.p0)
	return Motor{p1: p1, p2: p2}
}

// MulPoint is the geometric product plane * point.
func (p Plane) MulPoint(b Point) Motor {
	p1, p2 := kernel.PlanePoint(p.p0, b.p3)
	return Motor{p1: p1, p2: p2}
}

// ReflectPlane reflects a through p.
func (p Plane) ReflectPlane(a Plane) Plane {
	return Plane{p0: kernel.ReflectPlane(p.p0, a.p0)}
}

// ReflectLine reflects l through p.
func (p Plane) ReflectLine(l Line) Line {
	e, i := kernel.ReflectLine(p.p0, l.e, l.i)
	return Line{e: e, i: i}
}

// ReflectPoint reflects q through p.
func (p Plane) ReflectPoint(q Point) Point {
	return Point{p3: kernel.ReflectPoint(p.p0, q.p3)}
}
