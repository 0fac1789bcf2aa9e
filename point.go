package pga

import (
	"github.com/hupe1980/go-pga/internal/kernel"
	"github.com/hupe1980/go-pga/internal/simd"
)

// Point is a location in space, stored as the trivector register
// (e032, e013, e021, e123). The e123 lane is the homogeneous weight; a
// point with unit weight has Cartesian coordinates in its first three
// lanes.
type Point struct {
	p3 simd.Vec
}

// NewPoint returns the point (x, y, z) with unit weight.
func NewPoint(x, y, z float32) Point {
	return Point{p3: simd.Vec{x, y, z, 1}}
}

// PointFromSlice loads a point from the first four elements of s in
// internal lane order (e032, e013, e021, e123).
func PointFromSlice(s []float32) Point {
	return Point{p3: simd.Vec{s[0], s[1], s[2], s[3]}}
}

// X returns the e032 coefficient.
func (p Point) X() float32 { return p.p3[0] }

// Y returns the e013 coefficient.
func (p Point) Y() float32 { return p.p3[1] }

// Z returns the e021 coefficient.
func (p Point) Z() float32 { return p.p3[2] }

// W returns the homogeneous weight.
func (p Point) W() float32 { return p.p3[3] }

// Add returns the lane-wise sum p + b.
func (p Point) Add(b Point) Point {
	return Point{p3: simd.Add(p.p3, b.p3)}
}

// Sub returns the lane-wise difference p - b.
func (p Point) Sub(b Point) Point {
	return Point{p3: simd.Sub(p.p3, b.p3)}
}

// Scale multiplies every coefficient by s.
func (p Point) Scale(s float32) Point {
	return Point{p3: simd.Scale(p.p3, s)}
}

// InvScale multiplies every coefficient by the approximate reciprocal
// of s.
func (p Point) InvScale(s float32) Point {
	return Point{p3: simd.InvScale(p.p3, s)}
}

// Neg negates every coefficient.
func (p Point) Neg() Point {
	return Point{p3: simd.Neg(p.p3)}
}

// Normalized returns the point scaled by the reciprocal of the
// weight's magnitude, so the weight becomes +1 or -1 with its original
// sign. All four lanes are scaled and the represented location is
// unchanged.
func (p Point) Normalized() Point {
	inv := simd.RSqrtNR1(p.p3[3] * p.p3[3])
	return Point{p3: simd.Scale(p.p3, inv)}
}

// Norm returns the magnitude of the homogeneous weight.
func (p Point) Norm() float32 {
	return simd.Sqrt(p.p3[3] * p.p3[3])
}

// Mul is the geometric product of two points: a scalar plus the
// translator carrying p onto b (up to weight).
func (p Point) Mul(b Point) Motor {
	p1, p2 := kernel.PointPoint(p.p3, b.p3)
	return Motor{p1: p1, p2: p2}
}

// MulPlane is the geometric product point * plane. It differs from
// Plane.MulPoint with the same operands only in the sign of the
// pseudoscalar lane.
func (p Point) MulPlane(b Plane) Motor {
	p1, p2 := kernel.PointPlane(p.p3, b.p0)
	return Motor{p1: p1, p2: p2}
}
