package multirender

import (
	"math"
	"testing"
)

func TestPathBuilder(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)
	p.LineTo(30, 40)
	p.QuadTo(50, 60, 70, 80)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}

	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("element 0 is %T, want MoveTo", elems[0])
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("element 4 is %T, want Close", elems[4])
	}
	if !p.HasCurrentPoint() {
		t.Error("HasCurrentPoint() = false after building")
	}
	// Close returns the current point to the subpath start.
	if got := p.CurrentPoint(); got != (Point{X: 10, Y: 20}) {
		t.Errorf("CurrentPoint() after Close = %+v, want start", got)
	}
}

func TestPathLineToWithoutMoveTo(t *testing.T) {
	p := NewPath()
	p.LineTo(5, 5)

	if len(p.Elements()) != 1 {
		t.Fatalf("got %d elements, want 1", len(p.Elements()))
	}
	if _, ok := p.Elements()[0].(MoveTo); !ok {
		t.Error("LineTo on empty path should degrade to MoveTo")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	moved := p.Transform(Translate(10, 10))
	m := moved.Elements()[0].(MoveTo)
	if m.Point != (Point{X: 11, Y: 12}) {
		t.Errorf("transformed MoveTo = %+v, want (11, 12)", m.Point)
	}

	// Original is unchanged.
	if p.Elements()[0].(MoveTo).Point != (Point{X: 1, Y: 2}) {
		t.Error("Transform mutated the original path")
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(50, 30)
	p.LineTo(20, 60)

	b := p.Bounds()
	want := Rect{MinX: 10, MinY: 10, MaxX: 50, MaxY: 60}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}

	if got := NewPath().Bounds(); got != (Rect{}) {
		t.Errorf("empty path Bounds() = %+v, want zero rect", got)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)

	clone := p.Clone()
	clone.LineTo(3, 3)

	if len(p.Elements()) != 2 {
		t.Errorf("mutating clone changed original: %d elements", len(p.Elements()))
	}
	if len(clone.Elements()) != 3 {
		t.Errorf("clone has %d elements, want 3", len(clone.Elements()))
	}
}

func TestShapeToPath(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"rect", NewRect(10, 10, 30, 20)},
		{"rounded rect", RoundedRect{Rect: NewRect(0, 0, 40, 40), Radius: 8}},
		{"circle", Circle{CX: 50, CY: 50, Radius: 25}},
		{"ellipse", Ellipse{CX: 0, CY: 0, RX: 10, RY: 5}},
		{"line", Line{P0: Point{X: 0, Y: 0}, P1: Point{X: 10, Y: 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.shape.ToPath()
			if p.IsEmpty() {
				t.Fatal("ToPath() returned an empty path")
			}
			if _, ok := p.Elements()[0].(MoveTo); !ok {
				t.Errorf("first element is %T, want MoveTo", p.Elements()[0])
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	c := Circle{CX: 50, CY: 50, Radius: 25}
	b := c.Bounds()
	want := Rect{MinX: 25, MinY: 25, MaxX: 75, MaxY: 75}
	if math.Abs(b.MinX-want.MinX) > 1e-9 || math.Abs(b.MaxY-want.MaxY) > 1e-9 {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestRectOps(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	inter := a.Intersect(b)
	if inter != (Rect{MinX: 5, MinY: 5, MaxX: 10, MaxY: 10}) {
		t.Errorf("Intersect = %+v", inter)
	}

	union := a.Union(b)
	if union != (Rect{MinX: 0, MinY: 0, MaxX: 15, MaxY: 15}) {
		t.Errorf("Union = %+v", union)
	}

	if !NewRect(20, 20, 5, 5).Intersect(a).IsEmpty() {
		t.Error("disjoint Intersect should be empty")
	}
	if !EmptyRect().IsEmpty() {
		t.Error("EmptyRect().IsEmpty() = false")
	}
}

func TestUnionKeepsDegenerateRects(t *testing.T) {
	// Zero-width and zero-height rects still carry extent on one axis
	// and must grow the union, not reset it.
	vertical := Rect{MinX: 10, MinY: 10, MaxX: 10, MaxY: 30}
	horizontal := Rect{MinX: 10, MinY: 30, MaxX: 30, MaxY: 30}

	union := vertical.Union(horizontal)
	want := Rect{MinX: 10, MinY: 10, MaxX: 30, MaxY: 30}
	if union != want {
		t.Errorf("Union = %+v, want %+v", union, want)
	}

	point := Rect{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5}
	if got := union.Union(point); got != (Rect{MinX: 5, MinY: 5, MaxX: 30, MaxY: 30}) {
		t.Errorf("Union with point rect = %+v", got)
	}

	// EmptyRect stays the identity.
	if got := EmptyRect().Union(vertical); got != vertical {
		t.Errorf("EmptyRect().Union = %+v, want %+v", got, vertical)
	}
	if got := vertical.Union(EmptyRect()); got != vertical {
		t.Errorf("Union(EmptyRect()) = %+v, want %+v", got, vertical)
	}
}

func TestPathBoundsDegenerate(t *testing.T) {
	// A perfectly vertical segment has a zero-width bounding box but
	// must not collapse to the zero rect.
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(10, 30)

	b := p.Bounds()
	want := Rect{MinX: 10, MinY: 10, MaxX: 10, MaxY: 30}
	if b != want {
		t.Errorf("vertical segment Bounds() = %+v, want %+v", b, want)
	}

	single := NewPath()
	single.MoveTo(7, 9)
	if got := single.Bounds(); got != (Rect{MinX: 7, MinY: 9, MaxX: 7, MaxY: 9}) {
		t.Errorf("single point Bounds() = %+v", got)
	}
}
