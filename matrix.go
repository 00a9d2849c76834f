package multirender

import "math"

// Affine represents a 2D affine transformation as a 2x3 matrix in
// row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// It maps a point (x, y) to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate returns a translation transform.
func Translate(x, y float64) Affine {
	return Affine{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) Affine {
	return Affine{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate returns a rotation transform (angle in radians).
func Rotate(angle float64) Affine {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Affine{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear returns a shear transform.
func Shear(x, y float64) Affine {
	return Affine{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply returns m * n, the transform applying n first, then m.
func (m Affine) Multiply(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint applies the transform to a point.
func (m Affine) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Apply transforms a Point.
func (m Affine) Apply(p Point) Point {
	x, y := m.TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// IsIdentity reports whether m is the identity transform.
func (m Affine) IsIdentity() bool {
	return m == IdentityAffine()
}

// Determinant returns the determinant of the linear part of m.
func (m Affine) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform.
// The second return value is false if m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return IdentityAffine(), false
	}
	inv := 1 / det
	return Affine{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}

// TransformRect returns the axis-aligned bounding box of r under m.
func (m Affine) TransformRect(r Rect) Rect {
	x0, y0 := m.TransformPoint(r.MinX, r.MinY)
	x1, y1 := m.TransformPoint(r.MaxX, r.MinY)
	x2, y2 := m.TransformPoint(r.MinX, r.MaxY)
	x3, y3 := m.TransformPoint(r.MaxX, r.MaxY)
	return Rect{
		MinX: math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		MinY: math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		MaxX: math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		MaxY: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}

// MaxScale returns an upper bound on the scale factor applied by m,
// used to adapt flattening tolerance under transforms.
func (m Affine) MaxScale() float64 {
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	return math.Max(sx, sy)
}
