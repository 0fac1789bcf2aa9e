package pga

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotorQuarterTurn(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	q := r.TransformPoint(NewPoint(1, 0, 0))

	assert.InDelta(t, 0, q.X(), 1e-3)
	assert.InDelta(t, 1, q.Y(), 1e-3)
	assert.InDelta(t, 0, q.Z(), 1e-3)
	assert.InDelta(t, 1, q.W(), 1e-3)
}

func TestRotorCompose(t *testing.T) {
	quarter := NewRotor(math.Pi/2, 0, 0, 1)
	half := quarter.Mul(quarter)

	q := half.TransformPoint(NewPoint(1, 0, 0))

	assert.InDelta(t, -1, q.X(), 1e-3)
	assert.InDelta(t, 0, q.Y(), 1e-3)
}

func TestRotorReverse(t *testing.T) {
	r := NewRotor(0.7, 1, 2, 3)
	p := NewPoint(-1, 1, 2)

	q := r.Reverse().TransformPoint(r.TransformPoint(p))

	assert.InDelta(t, p.X(), q.X(), 1e-2)
	assert.InDelta(t, p.Y(), q.Y(), 1e-2)
	assert.InDelta(t, p.Z(), q.Z(), 1e-2)
	assert.InDelta(t, 1, q.W(), 1e-2)
}

func TestRotorNormalized(t *testing.T) {
	r := RotorFromSlice([]float32{2, 3, 5, 7}).Normalized()

	assert.InDelta(t, 1, r.Norm(), 1e-3)
}

func TestRotorTransformLine(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	l := r.TransformLine(NewLine(0, 0, 0, 1, 0, 0))

	// The x direction rotates onto y; the moment of a line through
	// the origin stays zero.
	assert.InDelta(t, 0, l.E23(), 1e-3)
	assert.InDelta(t, 1, l.E31(), 1e-3)
	assert.InDelta(t, 0, l.E12(), 1e-3)
	assert.InDelta(t, 0, l.E01(), 1e-3)
	assert.InDelta(t, 0, l.E02(), 1e-3)
	assert.InDelta(t, 0, l.E03(), 1e-3)
}

func TestRotorTransformPlane(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	p := r.TransformPlane(NewPlane(1, 0, 0, 5)) // x + 5 = 0

	assert.InDelta(t, 0, p.X(), 1e-3)
	assert.InDelta(t, 1, p.Y(), 1e-3)
	assert.InDelta(t, 0, p.Z(), 1e-3)
	assert.InDelta(t, 5, p.D(), 1e-2)
}
