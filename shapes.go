package multirender

import "math"

// kappa is the control point distance for approximating a quarter
// circle with a cubic Bezier: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Circle is a circle shape centered at (CX, CY).
type Circle struct {
	CX, CY float64
	Radius float64
}

// ToPath implements Shape using four cubic Bezier segments.
func (c Circle) ToPath() *Path {
	return Ellipse{CX: c.CX, CY: c.CY, RX: c.Radius, RY: c.Radius}.ToPath()
}

// Bounds implements Shape.
func (c Circle) Bounds() Rect {
	return Rect{
		MinX: c.CX - c.Radius,
		MinY: c.CY - c.Radius,
		MaxX: c.CX + c.Radius,
		MaxY: c.CY + c.Radius,
	}
}

// Ellipse is an axis-aligned ellipse centered at (CX, CY).
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// ToPath implements Shape using four cubic Bezier segments.
func (e Ellipse) ToPath() *Path {
	ox := e.RX * kappa
	oy := e.RY * kappa

	p := NewPath()
	p.MoveTo(e.CX+e.RX, e.CY)
	p.CubicTo(e.CX+e.RX, e.CY+oy, e.CX+ox, e.CY+e.RY, e.CX, e.CY+e.RY)
	p.CubicTo(e.CX-ox, e.CY+e.RY, e.CX-e.RX, e.CY+oy, e.CX-e.RX, e.CY)
	p.CubicTo(e.CX-e.RX, e.CY-oy, e.CX-ox, e.CY-e.RY, e.CX, e.CY-e.RY)
	p.CubicTo(e.CX+ox, e.CY-e.RY, e.CX+e.RX, e.CY-oy, e.CX+e.RX, e.CY)
	p.Close()
	return p
}

// Bounds implements Shape.
func (e Ellipse) Bounds() Rect {
	return Rect{
		MinX: e.CX - e.RX,
		MinY: e.CY - e.RY,
		MaxX: e.CX + e.RX,
		MaxY: e.CY + e.RY,
	}
}

// RoundedRect is a rectangle with circular corner radii.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// ToPath implements Shape. The radius is clamped to half the smaller
// dimension.
func (r RoundedRect) ToPath() *Path {
	rc := r.Rect
	rad := r.Radius
	maxR := math.Min(rc.Width(), rc.Height()) / 2
	if rad > maxR {
		rad = maxR
	}
	if rad <= 0 {
		return rc.ToPath()
	}
	o := rad * kappa

	p := NewPath()
	p.MoveTo(rc.MinX+rad, rc.MinY)
	p.LineTo(rc.MaxX-rad, rc.MinY)
	p.CubicTo(rc.MaxX-rad+o, rc.MinY, rc.MaxX, rc.MinY+rad-o, rc.MaxX, rc.MinY+rad)
	p.LineTo(rc.MaxX, rc.MaxY-rad)
	p.CubicTo(rc.MaxX, rc.MaxY-rad+o, rc.MaxX-rad+o, rc.MaxY, rc.MaxX-rad, rc.MaxY)
	p.LineTo(rc.MinX+rad, rc.MaxY)
	p.CubicTo(rc.MinX+rad-o, rc.MaxY, rc.MinX, rc.MaxY-rad+o, rc.MinX, rc.MaxY-rad)
	p.LineTo(rc.MinX, rc.MinY+rad)
	p.CubicTo(rc.MinX, rc.MinY+rad-o, rc.MinX+rad-o, rc.MinY, rc.MinX+rad, rc.MinY)
	p.Close()
	return p
}

// Bounds implements Shape.
func (r RoundedRect) Bounds() Rect {
	return r.Rect
}

// Line is a straight line segment shape.
// Lines enclose no area; they are meaningful for Stroke only.
type Line struct {
	P0, P1 Point
}

// ToPath implements Shape.
func (l Line) ToPath() *Path {
	p := NewPath()
	p.MoveTo(l.P0.X, l.P0.Y)
	p.LineTo(l.P1.X, l.P1.Y)
	return p
}

// Bounds implements Shape.
func (l Line) Bounds() Rect {
	return RectFromPoints(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
}
