package serialize

import (
	"github.com/dest-hq/multirender"
)

// Recorder captures scene operations into a Recording. It implements
// multirender.Scene, so any code drawing into a Scene can draw into a
// Recorder unchanged.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	pool     *ResourcePool
}

var _ multirender.Scene = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 64),
		pool:     NewResourcePool(),
	}
}

// Reset drops all recorded commands and resources and records the
// frame boundary.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.pool.Clear()
	r.commands = append(r.commands, ResetCommand{})
}

// PushLayer records a compositing layer push.
func (r *Recorder) PushLayer(blend multirender.BlendMode, alpha float32, transform multirender.Affine, clip multirender.Shape) {
	r.commands = append(r.commands, PushLayerCommand{
		Blend:     blend,
		Alpha:     alpha,
		Transform: transform,
		Clip:      r.addShape(clip),
	})
}

// PushClipLayer records a clip layer push.
func (r *Recorder) PushClipLayer(transform multirender.Affine, clip multirender.Shape) {
	r.commands = append(r.commands, PushClipLayerCommand{
		Transform: transform,
		Clip:      r.addShape(clip),
	})
}

// PopLayer records a layer pop.
func (r *Recorder) PopLayer() {
	r.commands = append(r.commands, PopLayerCommand{})
}

// Fill records a fill.
func (r *Recorder) Fill(style multirender.FillRule, transform multirender.Affine, paint multirender.Paint, paintTransform *multirender.Affine, shape multirender.Shape) {
	cmd := FillCommand{
		Rule:      style,
		Transform: transform,
		Paint:     r.pool.AddPaint(paint),
		Path:      r.addShape(shape),
	}
	if paintTransform != nil {
		cmd.PaintTransform = *paintTransform
		cmd.HasPaintTransform = true
	}
	r.commands = append(r.commands, cmd)
}

// Stroke records a stroke. A nil style records the default style.
func (r *Recorder) Stroke(style *multirender.StrokeStyle, transform multirender.Affine, paint multirender.Paint, paintTransform *multirender.Affine, shape multirender.Shape) {
	s := multirender.DefaultStrokeStyle()
	if style != nil {
		s = *style
		if style.DashPattern != nil {
			s.DashPattern = append([]float64(nil), style.DashPattern...)
		}
	}
	cmd := StrokeCommand{
		Style:     s,
		Transform: transform,
		Paint:     r.pool.AddPaint(paint),
		Path:      r.addShape(shape),
	}
	if paintTransform != nil {
		cmd.PaintTransform = *paintTransform
		cmd.HasPaintTransform = true
	}
	r.commands = append(r.commands, cmd)
}

// DrawGlyphs records a glyph run. Glyph slices are copied so the
// caller may reuse its buffers.
func (r *Recorder) DrawGlyphs(run multirender.GlyphRun, paint multirender.Paint) {
	cmd := DrawGlyphsCommand{
		Font:      r.pool.AddFont(run.Font),
		FontSize:  run.FontSize,
		Hint:      run.Hint,
		Style:     run.Style,
		Transform: run.Transform,
		Glyphs:    append([]multirender.Glyph(nil), run.Glyphs...),
		Paint:     r.pool.AddPaint(paint),
	}
	if len(run.NormalizedCoords) > 0 {
		cmd.NormalizedCoords = append([]multirender.NormalizedCoord(nil), run.NormalizedCoords...)
	}
	if run.GlyphTransform != nil {
		cmd.GlyphTransform = *run.GlyphTransform
		cmd.HasGlyphTransform = true
	}
	r.commands = append(r.commands, cmd)
}

// DrawBoxShadow records a box shadow.
func (r *Recorder) DrawBoxShadow(transform multirender.Affine, rect multirender.Rect, color multirender.Color, radius, stdDev float64) {
	r.commands = append(r.commands, DrawBoxShadowCommand{
		Transform: transform,
		Rect:      rect,
		Color:     color,
		Radius:    radius,
		StdDev:    stdDev,
	})
}

// addShape pools a shape's path outline.
func (r *Recorder) addShape(shape multirender.Shape) PathRef {
	if shape == nil {
		return PathRef(InvalidRef)
	}
	return r.pool.AddPath(shape.ToPath())
}

// Commands returns the recorded commands. The slice is owned by the
// recorder and invalidated by Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Pool returns the recorder's resource pool.
func (r *Recorder) Pool() *ResourcePool {
	return r.pool
}

// Finish snapshots the recorder into an immutable Recording.
// The recorder remains usable; further commands do not affect the
// returned recording.
func (r *Recorder) Finish() *Recording {
	commands := make([]Command, len(r.commands))
	copy(commands, r.commands)
	return &Recording{
		commands: commands,
		pool:     r.pool,
	}
}

// Recording is an immutable captured command stream.
type Recording struct {
	commands []Command
	pool     *ResourcePool
}

// Commands returns the recorded commands.
func (rec *Recording) Commands() []Command {
	return rec.commands
}

// Pool returns the recording's resource pool.
func (rec *Recording) Pool() *ResourcePool {
	return rec.pool
}

// Playback replays the recording against another scene.
func (rec *Recording) Playback(target multirender.Scene) {
	for _, cmd := range rec.commands {
		switch c := cmd.(type) {
		case ResetCommand:
			target.Reset()

		case PushLayerCommand:
			target.PushLayer(c.Blend, c.Alpha, c.Transform, rec.shape(c.Clip))

		case PushClipLayerCommand:
			target.PushClipLayer(c.Transform, rec.shape(c.Clip))

		case PopLayerCommand:
			target.PopLayer()

		case FillCommand:
			target.Fill(c.Rule, c.Transform, rec.pool.GetPaint(c.Paint),
				optionalAffine(c.PaintTransform, c.HasPaintTransform), rec.shape(c.Path))

		case StrokeCommand:
			style := c.Style
			target.Stroke(&style, c.Transform, rec.pool.GetPaint(c.Paint),
				optionalAffine(c.PaintTransform, c.HasPaintTransform), rec.shape(c.Path))

		case DrawGlyphsCommand:
			run := multirender.GlyphRun{
				Font:             rec.pool.GetFont(c.Font),
				FontSize:         c.FontSize,
				Hint:             c.Hint,
				NormalizedCoords: c.NormalizedCoords,
				Style:            c.Style,
				Transform:        c.Transform,
				GlyphTransform:   optionalAffine(c.GlyphTransform, c.HasGlyphTransform),
				Glyphs:           c.Glyphs,
			}
			target.DrawGlyphs(run, rec.pool.GetPaint(c.Paint))

		case DrawBoxShadowCommand:
			target.DrawBoxShadow(c.Transform, c.Rect, c.Color, c.Radius, c.StdDev)
		}
	}
}

// shape resolves a pooled path reference to a Shape, mapping the
// invalid reference to nil.
func (rec *Recording) shape(ref PathRef) multirender.Shape {
	path := rec.pool.GetPath(ref)
	if path == nil {
		return nil
	}
	return path
}

func optionalAffine(m multirender.Affine, ok bool) *multirender.Affine {
	if !ok {
		return nil
	}
	return &m
}
