package multirender

// DefaultTolerance is the maximum deviation allowed when flattening
// curves to line segments.
const DefaultTolerance = 0.1

// PathElement is one element of a path.
// The concrete types are MoveTo, LineTo, QuadTo, CubicTo, and Close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line to Point.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve to Point via Control.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve to Point via Control1 and Control2.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of path elements describing an outline.
// Path implements Shape, so it can be passed directly to Scene
// operations.
//
// A Path is built with MoveTo/LineTo/QuadTo/CubicTo/Close and is not
// safe for concurrent use.
type Path struct {
	elements []PathElement
	start    Point // start of the current subpath
	current  Point
	hasPoint bool
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// Elements returns the path's elements. The returned slice must not be
// modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Point{X: x, Y: y}
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasPoint = true
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Point{X: x, Y: y}
	if !p.hasPoint {
		p.MoveTo(x, y)
		return
	}
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo adds a quadratic Bezier curve to (x, y) with control (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(cx, cy)
	}
	pt := Point{X: x, Y: y}
	p.elements = append(p.elements, QuadTo{
		Control: Point{X: cx, Y: cy},
		Point:   pt,
	})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve to (x, y) with controls
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(c1x, c1y)
	}
	pt := Point{X: x, Y: y}
	p.elements = append(p.elements, CubicTo{
		Control1: Point{X: c1x, Y: c1y},
		Control2: Point{X: c2x, Y: c2y},
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.hasPoint {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements, keeping allocated capacity.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.hasPoint = false
}

// HasCurrentPoint reports whether the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasPoint
}

// CurrentPoint returns the current point of the path.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
		hasPoint: p.hasPoint,
	}
	copy(clone.elements, p.elements)
	return clone
}

// Transform returns a copy of the path with every point transformed by m.
func (p *Path) Transform(m Affine) *Path {
	out := &Path{
		elements: make([]PathElement, 0, len(p.elements)),
		start:    m.Apply(p.start),
		current:  m.Apply(p.current),
		hasPoint: p.hasPoint,
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: m.Apply(e.Point)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: m.Apply(e.Point)})
		case QuadTo:
			out.elements = append(out.elements, QuadTo{
				Control: m.Apply(e.Control),
				Point:   m.Apply(e.Point),
			})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: m.Apply(e.Control1),
				Control2: m.Apply(e.Control2),
				Point:    m.Apply(e.Point),
			})
		case Close:
			out.elements = append(out.elements, Close{})
		}
	}
	return out
}

// ToPath implements Shape. It returns the path itself.
func (p *Path) ToPath() *Path {
	return p
}

// Bounds implements Shape. Control points are included, so the result
// is a conservative bounding box for curves.
func (p *Path) Bounds() Rect {
	b := EmptyRect()
	found := false
	grow := func(pt Point) {
		b = b.Union(Rect{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y})
		found = true
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	if !found {
		return Rect{}
	}
	return b
}

// Shape is anything that can be converted to a path for rendering.
// Rect, RoundedRect, Circle, Ellipse, Line, and Path itself all
// implement Shape.
type Shape interface {
	// ToPath converts the shape to a path outline.
	ToPath() *Path

	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Rect
}
