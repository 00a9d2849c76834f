package cpu

import (
	"math"

	"github.com/dest-hq/multirender"
)

// flatten converts a path into per-subpath polylines, transforming
// every point by m. Curves are subdivided recursively until they
// deviate from a chord by less than the tolerance; the tolerance is
// tightened by the transform's scale so zoomed-in curves stay smooth.
func flatten(p *multirender.Path, m multirender.Affine, tolerance float64) [][]multirender.Point {
	if p == nil || p.IsEmpty() {
		return nil
	}

	scale := m.MaxScale()
	if scale > 1 {
		tolerance /= scale
	}

	var subpaths [][]multirender.Point
	var current []multirender.Point
	var cur multirender.Point

	start := func(pt multirender.Point) {
		if len(current) > 1 {
			subpaths = append(subpaths, current)
		}
		current = []multirender.Point{pt}
		cur = pt
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case multirender.MoveTo:
			start(m.Apply(e.Point))

		case multirender.LineTo:
			pt := m.Apply(e.Point)
			current = append(current, pt)
			cur = pt

		case multirender.QuadTo:
			c := m.Apply(e.Control)
			pt := m.Apply(e.Point)
			current = flattenQuad(current, cur, c, pt, tolerance)
			cur = pt

		case multirender.CubicTo:
			c1 := m.Apply(e.Control1)
			c2 := m.Apply(e.Control2)
			pt := m.Apply(e.Point)
			current = flattenCubic(current, cur, c1, c2, pt, tolerance)
			cur = pt

		case multirender.Close:
			if len(current) > 0 {
				first := current[0]
				if cur != first {
					current = append(current, first)
				}
				cur = first
			}
		}
	}
	if len(current) > 1 {
		subpaths = append(subpaths, current)
	}
	return subpaths
}

// flattenQuad recursively subdivides a quadratic Bezier, appending
// points (excluding p0) to dst.
func flattenQuad(dst []multirender.Point, p0, p1, p2 multirender.Point, tolerance float64) []multirender.Point {
	if distanceToLine(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	dst = flattenQuad(dst, p0, q0, mid, tolerance)
	return flattenQuad(dst, mid, q1, p2, tolerance)
}

// flattenCubic recursively subdivides a cubic Bezier with de
// Casteljau's algorithm, appending points (excluding p0) to dst.
func flattenCubic(dst []multirender.Point, p0, p1, p2, p3 multirender.Point, tolerance float64) []multirender.Point {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		return append(dst, p3)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)

	dst = flattenCubic(dst, p0, q0, r0, mid, tolerance)
	return flattenCubic(dst, mid, r1, q2, p3, tolerance)
}

// distanceToLine returns the perpendicular distance from p to the
// segment (a, b).
func distanceToLine(p, a, b multirender.Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
