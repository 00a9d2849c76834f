// Package text turns strings into positioned glyph runs.
//
// Shaping uses HarfBuzz (via go-text/typesetting), so ligatures,
// kerning, and complex scripts come out right. Mixed-direction text is
// split into directional runs with the Unicode bidi algorithm before
// shaping. The output is ready to hand to Scene.DrawGlyphs.
package text

import (
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/dest-hq/multirender"
)

// Layout is the result of shaping a string: glyphs positioned
// relative to the text origin (baseline left), plus the total advance.
type Layout struct {
	Glyphs  []multirender.Glyph
	Advance float32
}

// Shaper shapes text with a per-font face cache.
//
// Shaper is not safe for concurrent use; create one per goroutine.
type Shaper struct {
	hb    shaping.HarfbuzzShaper
	faces map[uint64]*font.Face
}

// NewShaper creates an empty shaper.
func NewShaper() *Shaper {
	return &Shaper{faces: make(map[uint64]*font.Face)}
}

// Shape lays out a string in the given font at the given pixel size.
// Mixed-direction text is handled; right-to-left runs are shaped RTL
// and placed in visual order.
func (s *Shaper) Shape(f *multirender.Font, size float32, text string) (Layout, error) {
	if f == nil {
		return Layout{}, fmt.Errorf("text: nil font")
	}
	if text == "" {
		return Layout{}, nil
	}

	face, err := s.face(f)
	if err != nil {
		return Layout{}, err
	}

	var layout Layout
	var penX fixed.Int26_6

	for _, run := range bidiRuns(text) {
		out := s.shapeRun(face, size, run.text, run.rtl)
		for _, g := range out.Glyphs {
			layout.Glyphs = append(layout.Glyphs, multirender.Glyph{
				ID: uint32(g.GlyphID),
				X:  fixedToFloat(penX + g.XOffset),
				Y:  fixedToFloat(-g.YOffset),
			})
			penX += g.Advance
		}
	}

	layout.Advance = fixedToFloat(penX)
	return layout, nil
}

// Run builds a GlyphRun for a shaped string, positioned at (x, y) on
// the baseline. The run is ready for Scene.DrawGlyphs.
func (s *Shaper) Run(f *multirender.Font, size float32, x, y float64, text string) (multirender.GlyphRun, error) {
	layout, err := s.Shape(f, size, text)
	if err != nil {
		return multirender.GlyphRun{}, err
	}
	return multirender.GlyphRun{
		Font:      f,
		FontSize:  size,
		Transform: multirender.Translate(x, y),
		Glyphs:    layout.Glyphs,
	}, nil
}

// shapeRun shapes a single-direction run.
func (s *Shaper) shapeRun(face *font.Face, size float32, runes []rune, rtl bool) shaping.Output {
	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    runScript(runes),
		Language:  language.DefaultLanguage(),
	}
	return s.hb.Shape(input)
}

// face returns a mutable shaping face for the font, creating and
// caching one on first use. Faces wrap the font's shared parsed data,
// so the cache costs little beyond the glyph cache itself.
func (s *Shaper) face(f *multirender.Font) (*font.Face, error) {
	if face, ok := s.faces[f.ID()]; ok {
		return face, nil
	}
	parsed, err := f.Face()
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face := font.NewFace(parsed.Font)
	s.faces[f.ID()] = face
	return face, nil
}

// bidiRun is one directional slice of the input text, in visual order.
type bidiRun struct {
	text []rune
	rtl  bool
}

// bidiRuns splits text into directional runs using the Unicode bidi
// algorithm. Plain LTR text comes back as a single run.
func bidiRuns(text string) []bidiRun {
	var p bidi.Paragraph
	p.SetString(text)
	ordering, err := p.Order()
	if err != nil {
		return []bidiRun{{text: []rune(text)}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		runs = append(runs, bidiRun{
			text: []rune(run.String()),
			rtl:  run.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

// runScript picks the script of the run's first non-space rune.
// Mixed-script runs within one direction are rare enough that the
// first script wins; callers needing per-script runs should split
// beforehand.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts 26.6 fixed point to float32 pixels.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
