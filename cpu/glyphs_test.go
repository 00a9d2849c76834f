package cpu

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/dest-hq/multirender"
	"github.com/dest-hq/multirender/text"
)

func shapeRun(t *testing.T, str string, size float32, x, y float64) multirender.GlyphRun {
	t.Helper()
	f := multirender.NewFont(goregular.TTF, 0)
	run, err := text.NewShaper().Run(f, size, x, y, str)
	if err != nil {
		t.Fatalf("shape %q: %v", str, err)
	}
	if len(run.Glyphs) == 0 {
		t.Fatalf("shape %q produced no glyphs", str)
	}
	return run
}

func coveredPixels(buf []byte) int {
	n := 0
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0 {
			n++
		}
	}
	return n
}

func TestDrawGlyphsFillsOutlines(t *testing.T) {
	run := shapeRun(t, "Hg", 48, 10, 60)

	buf := renderFrame(t, 128, 80, func(s multirender.Scene) {
		s.DrawGlyphs(run, multirender.NewSolidPaint(multirender.Black))
	})

	n := coveredPixels(buf)
	if n < 100 {
		t.Errorf("glyph fill covered %d pixels, want a visible amount", n)
	}

	// Glyphs sit above the baseline, so rows well below it stay empty.
	for x := 0; x < 128; x++ {
		if p := pixelAt(buf, 128, x, 78); p[3] != 0 {
			t.Errorf("pixel below descender at x=%d is painted: %v", x, p)
			break
		}
	}
}

func TestDrawGlyphsScalesWithFontSize(t *testing.T) {
	small := shapeRun(t, "O", 16, 10, 60)
	large := shapeRun(t, "O", 48, 10, 60)

	smallBuf := renderFrame(t, 96, 80, func(s multirender.Scene) {
		s.DrawGlyphs(small, multirender.NewSolidPaint(multirender.Black))
	})
	largeBuf := renderFrame(t, 96, 80, func(s multirender.Scene) {
		s.DrawGlyphs(large, multirender.NewSolidPaint(multirender.Black))
	})

	if coveredPixels(largeBuf) <= coveredPixels(smallBuf) {
		t.Errorf("48px glyph covered %d pixels, 16px covered %d; want larger",
			coveredPixels(largeBuf), coveredPixels(smallBuf))
	}
}

func TestDrawGlyphsStroked(t *testing.T) {
	run := shapeRun(t, "O", 48, 10, 60)
	style := multirender.DefaultStrokeStyle()
	run.Style.Stroke = &style

	buf := renderFrame(t, 96, 80, func(s multirender.Scene) {
		s.DrawGlyphs(run, multirender.NewSolidPaint(multirender.Black))
	})

	filled := renderFrame(t, 96, 80, func(s multirender.Scene) {
		s.DrawGlyphs(shapeRun(t, "O", 48, 10, 60), multirender.NewSolidPaint(multirender.Black))
	})

	// The stroked O is a thin double ring, lighter than the filled one.
	if n, m := coveredPixels(buf), coveredPixels(filled); n == 0 || n >= m {
		t.Errorf("stroked glyph covered %d pixels, filled covered %d", n, m)
	}
}

func TestDrawGlyphsRespectsTransform(t *testing.T) {
	run := shapeRun(t, "A", 32, 0, 0)
	run.Transform = multirender.Translate(40, 50)

	buf := renderFrame(t, 96, 64, func(s multirender.Scene) {
		s.DrawGlyphs(run, multirender.NewSolidPaint(multirender.Black))
	})

	// Nothing should land in the untranslated top-left corner.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if p := pixelAt(buf, 96, x, y); p[3] != 0 {
				t.Fatalf("pixel (%d,%d) painted outside translated run: %v", x, y, p)
			}
		}
	}
	if coveredPixels(buf) == 0 {
		t.Error("translated glyph run painted nothing")
	}
}

func TestDrawGlyphsEmptyRun(t *testing.T) {
	renderFrame(t, 16, 16, func(s multirender.Scene) {
		s.DrawGlyphs(multirender.GlyphRun{}, multirender.NewSolidPaint(multirender.Black))
	})
}
