package pga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlane(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)

	assert.Equal(t, float32(1), p.X())
	assert.Equal(t, float32(2), p.Y())
	assert.Equal(t, float32(3), p.Z())
	assert.Equal(t, float32(4), p.D())
}

func TestPlaneFromSlice(t *testing.T) {
	buf := []float32{4, 1, 2, 3}
	p := PlaneFromSlice(buf)

	assert.Equal(t, NewPlane(1, 2, 3, 4), p)
}

func TestPlaneNormalized(t *testing.T) {
	p := NewPlane(1, 2, 2, 3).Normalized()

	assert.InDelta(t, 1, p.Norm(), 1e-3)
	assert.InDelta(t, 1.0/3, p.X(), 1e-3)
	assert.InDelta(t, 2.0/3, p.Y(), 1e-3)
	assert.InDelta(t, 2.0/3, p.Z(), 1e-3)

	// The degenerate lane is never scaled.
	assert.Equal(t, float32(3), p.D())
}

func TestPlaneNormalizedIdempotent(t *testing.T) {
	p := NewPlane(1, 2, 2, 3).Normalized()
	q := p.Normalized()

	// Re-normalizing a unit plane moves each lane by at most the
	// reciprocal square root's relative error.
	assert.InDelta(t, p.X(), q.X(), 1e-3)
	assert.InDelta(t, p.Y(), q.Y(), 1e-3)
	assert.InDelta(t, p.Z(), q.Z(), 1e-3)

	// The degenerate lane is never scaled at all.
	assert.Equal(t, p.D(), q.D())
}

func TestPlaneMulPlane(t *testing.T) {
	m := NewPlane(1, 2, 3, 4).Mul(NewPlane(2, 3, -1, -2))

	assert.Equal(t, float32(5), m.Scalar())
	assert.Equal(t, float32(-1), m.E12())
	assert.Equal(t, float32(7), m.E31())
	assert.Equal(t, float32(-11), m.E23())
	assert.Equal(t, float32(10), m.E01())
	assert.Equal(t, float32(16), m.E02())
	assert.Equal(t, float32(2), m.E03())
	assert.Equal(t, float32(0), m.E0123())
}

func TestPlanePointOrderSensitivity(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)
	q := NewPoint(-2, 1, 4)

	pq := p.MulPoint(q)
	qp := q.MulPlane(p)

	// Swapping the operands flips exactly the pseudoscalar lane.
	assert.Equal(t, float32(16), pq.E0123())
	assert.Equal(t, float32(-16), qp.E0123())

	assert.Equal(t, pq.Scalar(), qp.Scalar())
	assert.Equal(t, pq.E23(), qp.E23())
	assert.Equal(t, pq.E31(), qp.E31())
	assert.Equal(t, pq.E12(), qp.E12())
	assert.Equal(t, pq.E01(), qp.E01())
	assert.Equal(t, pq.E02(), qp.E02())
	assert.Equal(t, pq.E03(), qp.E03())
}

func TestPlaneReflectPoint(t *testing.T) {
	mirror := NewPlane(0, 0, 1, 0) // z = 0
	q := mirror.ReflectPoint(NewPoint(1, 2, 3))

	assert.Equal(t, NewPoint(1, 2, -3), q)
}

func TestPlaneReflectPlaneInvolution(t *testing.T) {
	mirror := NewPlane(0, 0, 1, 2) // unit normal by construction
	a := NewPlane(4, 1, 2, 3)

	assert.Equal(t, a, mirror.ReflectPlane(mirror.ReflectPlane(a)))
}
