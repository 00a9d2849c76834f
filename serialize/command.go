// Package serialize provides the command-recording backend.
//
// Instead of rasterizing, the backend captures scene operations as
// typed command structures that can be inspected, replayed against any
// other Scene, or encoded as JSON for snapshot tests and debugging.
//
// Commands follow the typed-struct approach (one struct per operation)
// rather than a binary format, trading compactness for
// inspectability. Heavy resources (paths, paints, fonts) live in a
// ResourcePool and are referenced by typed handles so repeated shapes
// and paints are stored once.
//
//	rec := serialize.NewRecorder()
//	drawFrame(rec)
//	recording := rec.Finish()
//	recording.Playback(otherScene)
package serialize

import (
	"github.com/dest-hq/multirender"
)

// CommandType identifies a recorded scene operation.
type CommandType uint8

const (
	CmdReset CommandType = iota
	CmdPushLayer
	CmdPushClipLayer
	CmdPopLayer
	CmdFill
	CmdStroke
	CmdDrawGlyphs
	CmdDrawBoxShadow
)

// commandTypeNames maps CommandType values to their string
// representation.
var commandTypeNames = [...]string{
	CmdReset:         "Reset",
	CmdPushLayer:     "PushLayer",
	CmdPushClipLayer: "PushClipLayer",
	CmdPopLayer:      "PopLayer",
	CmdFill:          "Fill",
	CmdStroke:        "Stroke",
	CmdDrawGlyphs:    "DrawGlyphs",
	CmdDrawBoxShadow: "DrawBoxShadow",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all recorded command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
// The zero value refers to the first pooled path (if any).
type PathRef uint32

// PaintRef is a reference to a paint in the resource pool.
type PaintRef uint32

// FontRef is a reference to a font in the resource pool.
type FontRef uint32

// InvalidRef is the sentinel value for an absent reference.
const InvalidRef = ^uint32(0)

// IsValid reports whether the reference points to a pooled path.
func (r PathRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid reports whether the reference points to a pooled paint.
func (r PaintRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid reports whether the reference points to a pooled font.
func (r FontRef) IsValid() bool { return uint32(r) != InvalidRef }

// ResetCommand marks the start of a new frame.
type ResetCommand struct{}

// Type implements Command.
func (ResetCommand) Type() CommandType { return CmdReset }

// PushLayerCommand pushes a compositing layer.
type PushLayerCommand struct {
	// Blend is the mode used when the layer is composited down.
	Blend multirender.BlendMode
	// Alpha is the layer opacity.
	Alpha float32
	// Transform positions the clip shape.
	Transform multirender.Affine
	// Clip references the clip path, or InvalidRef for none.
	Clip PathRef
}

// Type implements Command.
func (PushLayerCommand) Type() CommandType { return CmdPushLayer }

// PushClipLayerCommand pushes a clip-only layer.
type PushClipLayerCommand struct {
	Transform multirender.Affine
	// Clip references the clip path, or InvalidRef for none.
	Clip PathRef
}

// Type implements Command.
func (PushClipLayerCommand) Type() CommandType { return CmdPushClipLayer }

// PopLayerCommand pops the top layer.
type PopLayerCommand struct{}

// Type implements Command.
func (PopLayerCommand) Type() CommandType { return CmdPopLayer }

// FillCommand fills a pooled path with a pooled paint.
type FillCommand struct {
	// Rule is the fill rule.
	Rule multirender.FillRule
	// Transform positions the path on the canvas.
	Transform multirender.Affine
	// Paint references the paint in the resource pool.
	Paint PaintRef
	// PaintTransform is the extra paint-space transform;
	// HasPaintTransform distinguishes identity from absent.
	PaintTransform    multirender.Affine
	HasPaintTransform bool
	// Path references the filled path in the resource pool.
	Path PathRef
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes a pooled path with a pooled paint.
type StrokeCommand struct {
	// Style is the stroke style (deep-copied at record time).
	Style             multirender.StrokeStyle
	Transform         multirender.Affine
	Paint             PaintRef
	PaintTransform    multirender.Affine
	HasPaintTransform bool
	Path              PathRef
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// DrawGlyphsCommand draws a positioned glyph run.
type DrawGlyphsCommand struct {
	// Font references the run's font in the resource pool.
	Font     FontRef
	FontSize float32
	Hint     bool
	// NormalizedCoords are variable font axis coordinates.
	NormalizedCoords  []multirender.NormalizedCoord
	Style             multirender.GlyphRunStyle
	Transform         multirender.Affine
	GlyphTransform    multirender.Affine
	HasGlyphTransform bool
	// Glyphs are copied at record time.
	Glyphs []multirender.Glyph
	// Paint references the paint in the resource pool.
	Paint PaintRef
}

// Type implements Command.
func (DrawGlyphsCommand) Type() CommandType { return CmdDrawGlyphs }

// DrawBoxShadowCommand draws a blurred rounded rectangle.
type DrawBoxShadowCommand struct {
	Transform multirender.Affine
	Rect      multirender.Rect
	Color     multirender.Color
	Radius    float64
	StdDev    float64
}

// Type implements Command.
func (DrawBoxShadowCommand) Type() CommandType { return CmdDrawBoxShadow }
