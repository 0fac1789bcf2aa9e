package kernel

import "github.com/hupe1980/go-pga/internal/simd"

// rotMat is the 3x3 rotation matrix induced by the p1 register of a
// rotor or motor. Rows are indexed first. The matrix carries the
// squared norm of p1's lanes, so applying it to a register scales by
// that norm unless p1 is normalized.
type rotMat [3][3]float32

func newRotMat(a simd.Vec) rotMat {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]

	return rotMat{
		{a0*a0 + a1*a1 - a2*a2 - a3*a3, 2 * (a1*a2 + a0*a3), 2 * (a1*a3 - a0*a2)},
		{2 * (a1*a2 - a0*a3), a0*a0 + a2*a2 - a3*a3 - a1*a1, 2 * (a2*a3 + a0*a1)},
		{2 * (a1*a3 + a0*a2), 2 * (a2*a3 - a0*a1), a0*a0 + a3*a3 - a1*a1 - a2*a2},
	}
}

// apply rotates the three lanes of v starting at lane lo.
func (m rotMat) apply(v simd.Vec, lo int) (x, y, z float32) {
	x = m[0][0]*v[lo] + m[0][1]*v[lo+1] + m[0][2]*v[lo+2]
	y = m[1][0]*v[lo] + m[1][1]*v[lo+1] + m[1][2]*v[lo+2]
	z = m[2][0]*v[lo] + m[2][1]*v[lo+1] + m[2][2]*v[lo+2]

	return
}

// ReflectPlane conjugates plane a by plane p: p a p. For a normalized
// p this is the mirror image of a in p.
func ReflectPlane(p, a simd.Vec) simd.Vec {
	s := 2 * simd.HiDP(p, a)
	pp := simd.HiDP(p, p)

	return simd.Sub(simd.Scale(p, s), simd.Scale(a, pp))
}

// ReflectLine conjugates a line by plane p.
func ReflectLine(p, lE, lI simd.Vec) (e, i simd.Vec) {
	pp := simd.HiDP(p, p)

	pl := 2 * simd.HiDP(p, lE)
	e = simd.Sub(simd.Scale(p, pl), simd.Scale(lE, pp))
	e[0] = 0

	// The e0 weight of the mirror couples the Euclidean direction
	// into the moment.
	pm := 2 * simd.HiDP(p, lI)
	i = simd.Sub(simd.Scale(lI, pp), simd.Scale(p, pm))
	i[0] = 0
	i[1] += 2 * p[0] * (p[2]*lE[3] - p[3]*lE[2])
	i[2] += 2 * p[0] * (p[3]*lE[1] - p[1]*lE[3])
	i[3] += 2 * p[0] * (p[1]*lE[2] - p[2]*lE[1])

	return
}

// ReflectPoint conjugates point q by plane p.
func ReflectPoint(p, q simd.Vec) simd.Vec {
	pp := simd.HiDP(p, p)
	s := 2 * (p[1]*q[0] + p[2]*q[1] + p[3]*q[2] + p[0]*q[3])

	return simd.Vec{
		pp*q[0] - p[1]*s,
		pp*q[1] - p[2]*s,
		pp*q[2] - p[3]*s,
		pp * q[3],
	}
}

// MotorPlane applies the motor (m1, m2) to plane p by sandwich
// conjugation. Passing a zero m2 applies a bare rotor.
func MotorPlane(m1, m2, p simd.Vec) simd.Vec {
	r := newRotMat(m1)
	x, y, z := r.apply(p, 1)

	a0 := m1[0]
	a4 := m2[0]
	ax, ay, az := m1[1], m1[2], m1[3]
	bx, by, bz := m2[1], m2[2], m2[3]

	uu := simd.Dot4(m1, m1)
	bp := bx*p[1] + by*p[2] + bz*p[3]
	ap := ax*p[1] + ay*p[2] + az*p[3]
	// p . (a x b)
	tp := p[1]*(ay*bz-az*by) + p[2]*(az*bx-ax*bz) + p[3]*(ax*by-ay*bx)

	return simd.Vec{uu*p[0] + 2*(a0*bp+a4*ap+tp), x, y, z}
}

// MotorLine applies the motor (m1, m2) to a line.
func MotorLine(m1, m2, lE, lI simd.Vec) (e, i simd.Vec) {
	r := newRotMat(m1)

	ex, ey, ez := r.apply(lE, 1)
	e = simd.Vec{0, ex, ey, ez}

	ix, iy, iz := r.apply(lI, 1)

	a0 := m1[0]
	a4 := m2[0]
	ax, ay, az := m1[1], m1[2], m1[3]
	bx, by, bz := m2[1], m2[2], m2[3]
	lx, ly, lz := lE[1], lE[2], lE[3]

	al := ax*lx + ay*ly + az*lz
	ab := ax*bx + ay*by + az*bz
	bl := bx*lx + by*ly + bz*lz

	// a x l
	cx, cy, cz := ay*lz-az*ly, az*lx-ax*lz, ax*ly-ay*lx
	// l x b
	dx, dy, dz := ly*bz-lz*by, lz*bx-lx*bz, lx*by-ly*bx

	i = simd.Vec{
		0,
		ix + 2*(-a0*a4*lx+a4*cx+a0*dx+al*bx-ab*lx+bl*ax),
		iy + 2*(-a0*a4*ly+a4*cy+a0*dy+al*by-ab*ly+bl*ay),
		iz + 2*(-a0*a4*lz+a4*cz+a0*dz+al*bz-ab*lz+bl*az),
	}

	return
}

// PointTransformer captures the rotation matrix and translation of a
// motor so that it can be applied to many points without re-deriving
// them per point.
type PointTransformer struct {
	r          rotMat
	tx, ty, tz float32
	uu         float32
}

// NewPointTransformer derives the point action of the motor (m1, m2).
func NewPointTransformer(m1, m2 simd.Vec) PointTransformer {
	a0 := m1[0]
	a4 := m2[0]
	ax, ay, az := m1[1], m1[2], m1[3]
	bx, by, bz := m2[1], m2[2], m2[3]

	// Translation picked up per unit weight: a x b - a0 b - a4 a.
	return PointTransformer{
		r:  newRotMat(m1),
		tx: ay*bz - az*by - a0*bx - a4*ax,
		ty: az*bx - ax*bz - a0*by - a4*ay,
		tz: ax*by - ay*bx - a0*bz - a4*az,
		uu: simd.Dot4(m1, m1),
	}
}

// Apply transforms a single point register.
func (pt PointTransformer) Apply(q simd.Vec) simd.Vec {
	x, y, z := pt.r.apply(q, 0)
	w := q[3]

	return simd.Vec{
		x + 2*w*pt.tx,
		y + 2*w*pt.ty,
		z + 2*w*pt.tz,
		pt.uu * w,
	}
}

// MotorPoint applies the motor (m1, m2) to point q.
func MotorPoint(m1, m2, q simd.Vec) simd.Vec {
	return NewPointTransformer(m1, m2).Apply(q)
}

// TranslatorPlane applies a translator to a plane. Only the e0 lane
// moves; the normal is translation-invariant.
func TranslatorPlane(t, p simd.Vec) simd.Vec {
	p[0] += 2 * simd.HiDP(t, p)
	return p
}

// TranslatorLine applies a translator to a line. The direction is
// unchanged; the moment shifts by twice the cross product of direction
// and translation.
func TranslatorLine(t, lE, lI simd.Vec) (e, i simd.Vec) {
	e = lE
	i = simd.Vec{
		0,
		lI[1] + 2*(lE[2]*t[3]-lE[3]*t[2]),
		lI[2] + 2*(lE[3]*t[1]-lE[1]*t[3]),
		lI[3] + 2*(lE[1]*t[2]-lE[2]*t[1]),
	}

	return
}

// TranslatorPoint applies a translator to a point. The stored register
// moves opposite to t scaled by the point's weight.
func TranslatorPoint(t, q simd.Vec) simd.Vec {
	w := 2 * q[3]

	return simd.Vec{
		q[0] - w*t[1],
		q[1] - w*t[2],
		q[2] - w*t[3],
		q[3],
	}
}
