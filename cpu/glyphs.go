package cpu

import (
	"log/slog"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/dest-hq/multirender"
)

// DrawGlyphs draws a positioned glyph run by extracting each glyph's
// outline from the font and filling (or stroking) it like any other
// path. Hinting and variable font coordinates are not applied by this
// backend.
func (p *ScenePainter) DrawGlyphs(run multirender.GlyphRun, paint multirender.Paint) {
	if run.Font == nil || len(run.Glyphs) == 0 || run.FontSize <= 0 {
		return
	}

	face, err := run.Font.Face()
	if err != nil {
		multirender.Logger().Error("glyph run skipped, font parse failed",
			slog.Uint64("font", run.Font.ID()),
			slog.String("error", err.Error()))
		return
	}

	upem := float64(face.Upem())
	if upem <= 0 {
		upem = 1000
	}
	// Font units are Y-up; the canvas is Y-down.
	scale := float64(run.FontSize) / upem
	unitTransform := multirender.Affine{A: scale, D: -scale}

	for _, g := range run.Glyphs {
		outline, ok := face.GlyphData(font.GID(g.ID)).(font.GlyphOutline)
		if !ok || len(outline.Segments) == 0 {
			continue
		}

		glyphPath := outlineToPath(outline)

		m := multirender.Translate(float64(g.X), float64(g.Y))
		if run.GlyphTransform != nil {
			m = m.Multiply(*run.GlyphTransform)
		}
		m = run.Transform.Multiply(m).Multiply(unitTransform)

		if run.Style.Stroke != nil {
			p.Stroke(run.Style.Stroke, m, paint, nil, glyphPath)
		} else {
			p.Fill(run.Style.Fill, m, paint, nil, glyphPath)
		}
	}
}

// outlineToPath converts a typesetting glyph outline (in font units)
// into a path.
func outlineToPath(outline font.GlyphOutline) *multirender.Path {
	path := multirender.NewPath()
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			path.MoveTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
		case opentype.SegmentOpLineTo:
			path.LineTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
		case opentype.SegmentOpQuadTo:
			path.QuadTo(
				float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y))
		case opentype.SegmentOpCubeTo:
			path.CubicTo(
				float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y),
				float64(seg.Args[2].X), float64(seg.Args[2].Y))
		}
	}
	return path
}
