package cpu

import (
	"math"

	"github.com/dest-hq/multirender"
)

// strokeOutline expands a path into polygons covering its stroked
// outline. The expansion happens in user space so the stroke width is
// unaffected by the transform; the resulting polygons are transformed
// afterwards. All polygons are emitted with the same orientation so a
// non-zero fill of their union yields the stroke.
func strokeOutline(p *multirender.Path, style *multirender.StrokeStyle, m multirender.Affine, tolerance float64) [][]multirender.Point {
	if style == nil || style.Width <= 0 {
		return nil
	}

	flatTol := tolerance
	if scale := m.MaxScale(); scale > 1 {
		flatTol /= scale
	}
	subpaths := flatten(p, multirender.IdentityAffine(), flatTol)

	hw := style.Width / 2
	var out [][]multirender.Point

	emit := func(poly []multirender.Point) {
		if len(poly) < 3 {
			return
		}
		if signedArea(poly) > 0 {
			reverse(poly)
		}
		for i := range poly {
			poly[i] = m.Apply(poly[i])
		}
		out = append(out, poly)
	}

	for _, pts := range subpaths {
		pts = dedupPoints(pts)
		if len(pts) < 2 {
			continue
		}

		closed := pts[0] == pts[len(pts)-1]
		if closed {
			pts = pts[:len(pts)-1]
			if len(pts) < 2 {
				continue
			}
		}

		if style.IsDashed() {
			for _, dash := range dashPolyline(pts, closed, style.DashPattern, style.DashOffset) {
				strokeOpenPolyline(dash, hw, style, flatTol, emit)
			}
			continue
		}

		if closed {
			strokeClosedPolyline(pts, hw, style, flatTol, emit)
		} else {
			strokeOpenPolyline(pts, hw, style, flatTol, emit)
		}
	}
	return out
}

// strokeOpenPolyline emits segment quads, joins between consecutive
// segments, and caps at both ends.
func strokeOpenPolyline(pts []multirender.Point, hw float64, style *multirender.StrokeStyle, tolerance float64, emit func([]multirender.Point)) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		emit(segmentQuad(pts[i-1], pts[i], hw))
	}
	for i := 1; i < len(pts)-1; i++ {
		emitJoin(pts[i-1], pts[i], pts[i+1], hw, style, tolerance, emit)
	}

	first, last := pts[0], pts[len(pts)-1]
	emitCap(first, pts[1], hw, style.Cap, tolerance, emit)
	emitCap(last, pts[len(pts)-2], hw, style.Cap, tolerance, emit)
}

// strokeClosedPolyline emits segment quads and joins all the way
// around, including between the closing segment and the first one.
func strokeClosedPolyline(pts []multirender.Point, hw float64, style *multirender.StrokeStyle, tolerance float64, emit func([]multirender.Point)) {
	n := len(pts)
	for i := 0; i < n; i++ {
		emit(segmentQuad(pts[i], pts[(i+1)%n], hw))
	}
	for i := 0; i < n; i++ {
		emitJoin(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], hw, style, tolerance, emit)
	}
}

// segmentQuad returns the rectangle covering a single stroked segment.
func segmentQuad(p0, p1 multirender.Point, hw float64) []multirender.Point {
	n := segmentNormal(p0, p1).Mul(hw)
	return []multirender.Point{
		p0.Add(n),
		p1.Add(n),
		p1.Sub(n),
		p0.Sub(n),
	}
}

// emitJoin emits the wedge filling the gap on the outer side of the
// corner at p.
func emitJoin(prev, p, next multirender.Point, hw float64, style *multirender.StrokeStyle, tolerance float64, emit func([]multirender.Point)) {
	d0 := p.Sub(prev).Normalize()
	d1 := next.Sub(p).Normalize()

	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-12 {
		return // collinear, no gap
	}

	// Outer normals: the side the corner opens toward.
	n0 := multirender.Point{X: -d0.Y, Y: d0.X}
	n1 := multirender.Point{X: -d1.Y, Y: d1.X}
	if cross > 0 {
		n0 = n0.Mul(-1)
		n1 = n1.Mul(-1)
	}
	a := p.Add(n0.Mul(hw))
	b := p.Add(n1.Mul(hw))

	join := style.Join
	if join == multirender.JoinMiter {
		// Miter length ratio: 1 / sin(theta/2) where theta is the
		// angle between the segments.
		cosTheta := d0.Mul(-1).Dot(d1)
		sinHalf := math.Sqrt(math.Max(0, (1-cosTheta)/2))
		if sinHalf < 1e-6 || 1/sinHalf > style.MiterLimit {
			join = multirender.JoinBevel
		} else {
			mid := n0.Add(n1).Normalize()
			miter := p.Add(mid.Mul(hw / sinHalf))
			emit([]multirender.Point{p, a, miter, b})
			return
		}
	}

	switch join {
	case multirender.JoinRound:
		emit(arcWedge(p, a, b, hw, tolerance))
	default: // bevel
		emit([]multirender.Point{p, a, b})
	}
}

// emitCap emits the cap geometry at end, where inner is the adjacent
// polyline point.
func emitCap(end, inner multirender.Point, hw float64, cap multirender.LineCap, tolerance float64, emit func([]multirender.Point)) {
	d := end.Sub(inner).Normalize()
	n := multirender.Point{X: -d.Y, Y: d.X}.Mul(hw)

	switch cap {
	case multirender.CapSquare:
		ext := d.Mul(hw)
		emit([]multirender.Point{
			end.Add(n),
			end.Add(n).Add(ext),
			end.Sub(n).Add(ext),
			end.Sub(n),
		})
	case multirender.CapRound:
		emit(arcWedge(end, end.Add(n), end.Sub(n), hw, tolerance))
	}
	// Butt caps add nothing.
}

// arcWedge returns a pie-slice polygon centered at c spanning the
// shorter arc from a to b at radius r.
func arcWedge(c, a, b multirender.Point, r, tolerance float64) []multirender.Point {
	a0 := math.Atan2(a.Y-c.Y, a.X-c.X)
	a1 := math.Atan2(b.Y-c.Y, b.X-c.X)

	sweep := a1 - a0
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}

	// Chord error of a sampled arc is r*(1-cos(step/2)).
	step := 2 * math.Acos(math.Max(-1, 1-tolerance/math.Max(r, tolerance)))
	if step < 1e-3 {
		step = 1e-3
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 1 {
		n = 1
	}

	poly := make([]multirender.Point, 0, n+2)
	poly = append(poly, c)
	for i := 0; i <= n; i++ {
		ang := a0 + sweep*float64(i)/float64(n)
		poly = append(poly, multirender.Point{
			X: c.X + r*math.Cos(ang),
			Y: c.Y + r*math.Sin(ang),
		})
	}
	return poly
}

// dashPolyline splits a polyline into the "on" runs of a dash pattern.
// Closed polylines are treated as one wrapped-around open run.
func dashPolyline(pts []multirender.Point, closed bool, pattern []float64, offset float64) [][]multirender.Point {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return [][]multirender.Point{pts}
	}

	walk := pts
	if closed {
		walk = append(append([]multirender.Point{}, pts...), pts[0])
	}

	// Position within the repeating pattern.
	pos := math.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0
	remain := pattern[idx] - pos

	var runs [][]multirender.Point
	var run []multirender.Point
	if on {
		run = append(run, walk[0])
	}

	for i := 1; i < len(walk); i++ {
		p0, p1 := walk[i-1], walk[i]
		segLen := p0.Distance(p1)
		covered := 0.0

		for segLen-covered > remain {
			covered += remain
			t := covered / segLen
			cut := p0.Lerp(p1, t)
			if on {
				run = append(run, cut)
				if len(run) >= 2 {
					runs = append(runs, run)
				}
				run = nil
			} else {
				run = []multirender.Point{cut}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
		}
		remain -= segLen - covered
		if on {
			run = append(run, p1)
		}
	}
	if len(run) >= 2 {
		runs = append(runs, run)
	}
	return runs
}

// segmentNormal returns the unit normal of the segment (p0, p1).
func segmentNormal(p0, p1 multirender.Point) multirender.Point {
	d := p1.Sub(p0).Normalize()
	return multirender.Point{X: -d.Y, Y: d.X}
}

// signedArea returns twice the signed area of a polygon.
func signedArea(poly []multirender.Point) float64 {
	sum := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return sum
}

func reverse(poly []multirender.Point) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}

// dedupPoints removes consecutive duplicate points.
func dedupPoints(pts []multirender.Point) []multirender.Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, pt := range pts[1:] {
		if pt != out[len(out)-1] {
			out = append(out, pt)
		}
	}
	return out
}
