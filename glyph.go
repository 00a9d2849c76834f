package multirender

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
)

// Glyph is a positioned glyph in a run.
// X and Y are offsets from the run origin, in the same direction as
// the run transform.
type Glyph struct {
	// ID is the glyph identifier within the font.
	ID uint32

	// X and Y position the glyph relative to the run origin.
	X float32
	Y float32
}

// NormalizedCoord is a normalized variable-font axis coordinate in
// 2.14 fixed-point, as used by OpenType variation tables.
type NormalizedCoord = int16

// Font is an immutable font blob plus a face index for collections.
// The parsed face is cached on first use; Font values are safe for
// concurrent use and should be shared rather than re-created, so that
// backends can cache per-font resources by identity.
type Font struct {
	data  []byte
	index uint32
	id    uint64

	parseOnce sync.Once
	parsed    *font.Face
	parseErr  error
}

var fontIDCounter atomic.Uint64

// NewFont creates a Font for the given raw font data (TTF/OTF).
// The data is not copied and must not be modified.
func NewFont(data []byte, index uint32) *Font {
	return &Font{
		data:  data,
		index: index,
		id:    fontIDCounter.Add(1),
	}
}

// Data returns the raw font data.
func (f *Font) Data() []byte {
	return f.data
}

// Index returns the face index within a collection.
func (f *Font) Index() uint32 {
	return f.index
}

// ID returns the process-unique identifier of the font.
func (f *Font) ID() uint64 {
	return f.id
}

// Face returns the parsed typesetting face, parsing on first call.
// The returned *font.Face embeds a thread-safe *font.Font; callers
// needing mutable glyph caches should wrap it with font.NewFace.
func (f *Font) Face() (*font.Face, error) {
	f.parseOnce.Do(func() {
		faces, err := font.ParseTTC(bytes.NewReader(f.data))
		if err == nil && int(f.index) < len(faces) {
			f.parsed = faces[f.index]
			return
		}
		// Not a collection (or bad index): try as a single face.
		f.parsed, f.parseErr = font.ParseTTF(bytes.NewReader(f.data))
	})
	return f.parsed, f.parseErr
}

// GlyphRunStyle selects between filling and stroking glyph outlines.
type GlyphRunStyle struct {
	// Fill is the fill rule used when Stroke is nil.
	Fill FillRule

	// Stroke, if non-nil, strokes glyph outlines instead of filling.
	Stroke *StrokeStyle
}

// GlyphRun describes a run of positioned glyphs from a single font.
type GlyphRun struct {
	// Font supplies the glyph outlines.
	Font *Font

	// FontSize is the size in pixels per em.
	FontSize float32

	// Hint requests hinting when the backend supports it.
	Hint bool

	// NormalizedCoords are variable font axis coordinates.
	NormalizedCoords []NormalizedCoord

	// Style selects fill or stroke rendering.
	Style GlyphRunStyle

	// Transform positions the run on the canvas.
	Transform Affine

	// GlyphTransform, if non-nil, is applied to each glyph outline
	// in addition to Transform.
	GlyphTransform *Affine

	// Glyphs are the positioned glyphs.
	Glyphs []Glyph
}
