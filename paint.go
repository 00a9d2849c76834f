package multirender

import "sync/atomic"

// Paint describes how filled or stroked geometry is colored.
// This is a sealed interface; the implementations are SolidPaint,
// LinearGradientPaint, RadialGradientPaint, SweepGradientPaint,
// ImagePaint, and CustomPaint.
//
// Backends that do not understand a CustomPaint render it as
// transparent.
type Paint interface {
	paintMarker()
}

// SolidPaint is a single-color paint.
type SolidPaint struct {
	Color Color
}

func (SolidPaint) paintMarker() {}

// NewSolidPaint creates a solid color paint.
func NewSolidPaint(c Color) SolidPaint {
	return SolidPaint{Color: c}
}

// ExtendMode specifies how a gradient or image extends beyond its
// defined bounds.
type ExtendMode uint8

// Extend modes.
const (
	ExtendPad ExtendMode = iota
	ExtendRepeat
	ExtendReflect
)

// String returns a human-readable name for the extend mode.
func (m ExtendMode) String() string {
	switch m {
	case ExtendPad:
		return "Pad"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

// GradientStop is a color at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// LinearGradientPaint colors geometry with a gradient between two
// points.
type LinearGradientPaint struct {
	Start  Point
	End    Point
	Stops  []GradientStop
	Extend ExtendMode
}

func (*LinearGradientPaint) paintMarker() {}

// NewLinearGradientPaint creates a linear gradient from (x0, y0) to
// (x1, y1) with pad extension and no stops.
func NewLinearGradientPaint(x0, y0, x1, y1 float64) *LinearGradientPaint {
	return &LinearGradientPaint{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *LinearGradientPaint) AddStop(offset float64, c Color) *LinearGradientPaint {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// RadialGradientPaint colors geometry with a gradient radiating from a
// center between two radii.
type RadialGradientPaint struct {
	Center      Point
	StartRadius float64
	EndRadius   float64
	Stops       []GradientStop
	Extend      ExtendMode
}

func (*RadialGradientPaint) paintMarker() {}

// NewRadialGradientPaint creates a radial gradient centered at
// (cx, cy) from startRadius to endRadius.
func NewRadialGradientPaint(cx, cy, startRadius, endRadius float64) *RadialGradientPaint {
	return &RadialGradientPaint{
		Center:      Point{X: cx, Y: cy},
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
	}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *RadialGradientPaint) AddStop(offset float64, c Color) *RadialGradientPaint {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// SweepGradientPaint colors geometry with a gradient sweeping angularly
// around a center.
type SweepGradientPaint struct {
	Center     Point
	StartAngle float64 // radians
	EndAngle   float64 // radians
	Stops      []GradientStop
	Extend     ExtendMode
}

func (*SweepGradientPaint) paintMarker() {}

// NewSweepGradientPaint creates a sweep gradient around (cx, cy)
// covering the full circle.
func NewSweepGradientPaint(cx, cy float64) *SweepGradientPaint {
	return &SweepGradientPaint{
		Center:   Point{X: cx, Y: cy},
		EndAngle: 6.283185307179586,
		Extend:   ExtendPad,
	}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *SweepGradientPaint) AddStop(offset float64, c Color) *SweepGradientPaint {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// ImageQuality selects the sampling filter for image paints.
type ImageQuality uint8

// Image sampling qualities.
const (
	QualityNearest ImageQuality = iota
	QualityBilinear
)

// ImageData is an immutable RGBA8 pixel buffer shared between paints.
// Every ImageData has a process-unique ID so backends can cache GPU
// uploads per image.
type ImageData struct {
	// Pix holds non-premultiplied RGBA pixels, 4 bytes per pixel,
	// row-major. Must not be modified after creation.
	Pix []uint8

	Width  int
	Height int

	id uint64
}

var imageIDCounter atomic.Uint64

// NewImageData creates an ImageData for the given pixel buffer.
// The buffer length must be width*height*4; it is not copied.
func NewImageData(pix []uint8, width, height int) *ImageData {
	return &ImageData{
		Pix:    pix,
		Width:  width,
		Height: height,
		id:     imageIDCounter.Add(1),
	}
}

// ID returns the process-unique identifier of the image.
func (d *ImageData) ID() uint64 {
	return d.id
}

// ImagePaint colors geometry by sampling an image.
// The image is positioned in the coordinate space of the paint
// transform passed to Fill/Stroke.
type ImagePaint struct {
	Image   *ImageData
	Quality ImageQuality
	XExtend ExtendMode
	YExtend ExtendMode
	Alpha   float64 // global alpha multiplier; 0 means 1
}

func (*ImagePaint) paintMarker() {}

// NewImagePaint creates an image paint with bilinear sampling and pad
// extension.
func NewImagePaint(img *ImageData) *ImagePaint {
	return &ImagePaint{
		Image:   img,
		Quality: QualityBilinear,
		Alpha:   1,
	}
}

// CustomPaint carries a backend-specific payload.
// Backends that recognize the payload may render it however they like;
// all others render transparent.
type CustomPaint struct {
	Payload any
}

func (CustomPaint) paintMarker() {}
