package multirender

// Scene is the drawing command sink that every rendering backend
// implements. Applications describe a frame by calling Scene methods
// inside a renderer's draw callback; the backend decides how the
// commands become pixels (or bytes, for recording backends).
//
// Layer semantics: PushLayer and PushClipLayer nest; PopLayer pops
// whichever kind is on top, so mixed pushes unwind correctly.
// PopLayer on an empty stack is a no-op.
//
// A nil paintTransform means identity.
//
// Scene implementations are not safe for concurrent use.
type Scene interface {
	// Reset clears all recorded content, preparing the scene for a
	// new frame.
	Reset()

	// PushLayer pushes a compositing layer. Content drawn until the
	// matching PopLayer is composited onto the content below using
	// the blend mode and alpha, clipped to the given shape.
	PushLayer(blend BlendMode, alpha float32, transform Affine, clip Shape)

	// PushClipLayer pushes a clip-only layer. Content drawn until the
	// matching PopLayer is clipped to the shape; no offscreen
	// compositing takes place.
	PushClipLayer(transform Affine, clip Shape)

	// PopLayer pops the top layer (compositing or clip).
	PopLayer()

	// Fill fills a shape with the given paint.
	Fill(style FillRule, transform Affine, paint Paint, paintTransform *Affine, shape Shape)

	// Stroke strokes a shape's outline with the given paint.
	// A nil style uses DefaultStrokeStyle.
	Stroke(style *StrokeStyle, transform Affine, paint Paint, paintTransform *Affine, shape Shape)

	// DrawGlyphs draws a positioned glyph run with the given paint.
	DrawGlyphs(run GlyphRun, paint Paint)

	// DrawBoxShadow draws a blurred rounded rectangle, the primitive
	// behind CSS-style box shadows. stdDev is the Gaussian blur
	// standard deviation; radius is the corner radius.
	DrawBoxShadow(transform Affine, rect Rect, color Color, radius, stdDev float64)
}

// SceneFunc adapts a frame-drawing function for APIs that want a
// value to hand a Scene to.
type SceneFunc func(Scene)
