package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/dest-hq/multirender"
)

func regularFont() *multirender.Font {
	return multirender.NewFont(goregular.TTF, 0)
}

func TestShapeBasic(t *testing.T) {
	s := NewShaper()
	layout, err := s.Shape(regularFont(), 16, "AV")
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}

	if len(layout.Glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(layout.Glyphs))
	}
	if layout.Advance <= 0 {
		t.Errorf("Advance = %v, want positive", layout.Advance)
	}
	if layout.Glyphs[0].ID == 0 || layout.Glyphs[1].ID == 0 {
		t.Errorf("glyph IDs = %d, %d; want non-notdef", layout.Glyphs[0].ID, layout.Glyphs[1].ID)
	}
	// The second glyph starts after the first one's advance.
	if layout.Glyphs[1].X <= layout.Glyphs[0].X {
		t.Errorf("glyph positions %v, %v not increasing", layout.Glyphs[0].X, layout.Glyphs[1].X)
	}
}

func TestShapeKerningNeverWidens(t *testing.T) {
	s := NewShaper()

	av, err := s.Shape(regularFont(), 32, "AV")
	if err != nil {
		t.Fatalf("Shape AV: %v", err)
	}
	a, err := s.Shape(regularFont(), 32, "A")
	if err != nil {
		t.Fatalf("Shape A: %v", err)
	}
	v, err := s.Shape(regularFont(), 32, "V")
	if err != nil {
		t.Fatalf("Shape V: %v", err)
	}

	// Kerning pulls AV together; it never pushes the pair apart.
	if av.Advance > a.Advance+v.Advance+0.01 {
		t.Errorf("AV advance %v wider than A+V %v", av.Advance, a.Advance+v.Advance)
	}
}

func TestShapeScalesWithSize(t *testing.T) {
	s := NewShaper()

	small, err := s.Shape(regularFont(), 12, "Hello")
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	large, err := s.Shape(regularFont(), 24, "Hello")
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}

	ratio := large.Advance / small.Advance
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("24px/12px advance ratio = %v, want ~2", ratio)
	}
}

func TestShapeEmptyString(t *testing.T) {
	layout, err := NewShaper().Shape(regularFont(), 16, "")
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(layout.Glyphs) != 0 || layout.Advance != 0 {
		t.Errorf("empty string layout = %+v, want empty", layout)
	}
}

func TestShapeNilFont(t *testing.T) {
	if _, err := NewShaper().Shape(nil, 16, "x"); err == nil {
		t.Error("expected error for nil font")
	}
}

func TestShaperCachesFaces(t *testing.T) {
	s := NewShaper()
	f := regularFont()
	if _, err := s.Shape(f, 16, "a"); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if _, err := s.Shape(f, 32, "b"); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(s.faces) != 1 {
		t.Errorf("face cache holds %d entries, want 1", len(s.faces))
	}
}

func TestRunPositionsAtBaseline(t *testing.T) {
	run, err := NewShaper().Run(regularFont(), 16, 25, 40, "hi")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if run.Font == nil || run.FontSize != 16 {
		t.Errorf("run font/size = %v/%v", run.Font, run.FontSize)
	}
	if run.Transform != multirender.Translate(25, 40) {
		t.Errorf("run transform = %+v, want translate(25, 40)", run.Transform)
	}
	if len(run.Glyphs) != 2 {
		t.Errorf("run has %d glyphs, want 2", len(run.Glyphs))
	}
}

func TestBidiRunsSplitsDirections(t *testing.T) {
	// Latin, Hebrew, Latin: three directional runs.
	runs := bidiRuns("abc אבג def")
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3: %+v", len(runs), runs)
	}
	if runs[0].rtl || runs[2].rtl {
		t.Error("Latin runs marked RTL")
	}
	if !runs[1].rtl {
		t.Error("Hebrew run not marked RTL")
	}
}

func TestBidiRunsPlainText(t *testing.T) {
	runs := bidiRuns("plain ascii")
	if len(runs) != 1 || runs[0].rtl {
		t.Errorf("plain text runs = %+v, want one LTR run", runs)
	}
}
