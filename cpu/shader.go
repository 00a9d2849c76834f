package cpu

import (
	"math"

	"github.com/dest-hq/multirender"
)

// shader evaluates a paint at a device-space position.
type shader interface {
	shade(x, y float64) multirender.Color
}

// newShader builds the shader for a paint. The transform is the draw
// transform, paintTransform the optional extra paint-space transform
// (nil means identity). Unknown and custom paints shade transparent.
func newShader(paint multirender.Paint, transform multirender.Affine, paintTransform *multirender.Affine) shader {
	switch p := paint.(type) {
	case multirender.SolidPaint:
		return solidShader{color: p.Color}

	case *multirender.LinearGradientPaint:
		inv, ok := paintSpaceInverse(transform, paintTransform)
		if !ok {
			return solidShader{color: multirender.Transparent}
		}
		d := p.End.Sub(p.Start)
		lenSq := d.Dot(d)
		if lenSq <= 0 || len(p.Stops) == 0 {
			return solidShader{color: lastStopColor(p.Stops)}
		}
		return &linearShader{
			inv: inv, start: p.Start,
			dir: d.Mul(1 / lenSq),
			gradientShader: gradientShader{
				stops: p.Stops, extend: p.Extend,
			},
		}

	case *multirender.RadialGradientPaint:
		inv, ok := paintSpaceInverse(transform, paintTransform)
		if !ok {
			return solidShader{color: multirender.Transparent}
		}
		if p.EndRadius == p.StartRadius || len(p.Stops) == 0 {
			return solidShader{color: lastStopColor(p.Stops)}
		}
		return &radialShader{
			inv: inv, center: p.Center,
			r0: p.StartRadius, invDR: 1 / (p.EndRadius - p.StartRadius),
			gradientShader: gradientShader{
				stops: p.Stops, extend: p.Extend,
			},
		}

	case *multirender.SweepGradientPaint:
		inv, ok := paintSpaceInverse(transform, paintTransform)
		if !ok {
			return solidShader{color: multirender.Transparent}
		}
		if p.EndAngle == p.StartAngle || len(p.Stops) == 0 {
			return solidShader{color: lastStopColor(p.Stops)}
		}
		return &sweepShader{
			inv: inv, center: p.Center,
			start: p.StartAngle, invSweep: 1 / (p.EndAngle - p.StartAngle),
			gradientShader: gradientShader{
				stops: p.Stops, extend: p.Extend,
			},
		}

	case *multirender.ImagePaint:
		inv, ok := paintSpaceInverse(transform, paintTransform)
		if !ok || p.Image == nil || p.Image.Width <= 0 || p.Image.Height <= 0 {
			return solidShader{color: multirender.Transparent}
		}
		return &imageShader{inv: inv, paint: p}

	default:
		// CustomPaint carries backend-specific data this backend does
		// not understand; render it as transparent.
		return solidShader{color: multirender.Transparent}
	}
}

// paintSpaceInverse returns the matrix mapping device space back to
// paint space.
func paintSpaceInverse(transform multirender.Affine, paintTransform *multirender.Affine) (multirender.Affine, bool) {
	m := transform
	if paintTransform != nil {
		m = m.Multiply(*paintTransform)
	}
	return m.Invert()
}

type solidShader struct {
	color multirender.Color
}

func (s solidShader) shade(x, y float64) multirender.Color {
	return s.color
}

// gradientShader holds the stop ramp shared by the gradient kinds.
type gradientShader struct {
	stops  []multirender.GradientStop
	extend multirender.ExtendMode
}

// colorAt maps a raw gradient parameter through the extend mode and
// the stop ramp.
func (g *gradientShader) colorAt(t float64) multirender.Color {
	t = applyExtend(t, g.extend)

	stops := g.stops
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			prev := stops[i-1]
			span := stops[i].Offset - prev.Offset
			if span <= 0 {
				return stops[i].Color
			}
			return prev.Color.Lerp(stops[i].Color, (t-prev.Offset)/span)
		}
	}
	return last.Color
}

// applyExtend maps t into [0, 1] according to the extend mode.
func applyExtend(t float64, mode multirender.ExtendMode) float64 {
	switch mode {
	case multirender.ExtendRepeat:
		t = t - math.Floor(t)
	case multirender.ExtendReflect:
		t = math.Abs(t)
		t = math.Mod(t, 2)
		if t > 1 {
			t = 2 - t
		}
	default: // pad
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

func lastStopColor(stops []multirender.GradientStop) multirender.Color {
	if len(stops) == 0 {
		return multirender.Transparent
	}
	return stops[len(stops)-1].Color
}

type linearShader struct {
	gradientShader
	inv   multirender.Affine
	start multirender.Point
	dir   multirender.Point // (end-start) / |end-start|^2
}

func (s *linearShader) shade(x, y float64) multirender.Color {
	p := s.inv.Apply(multirender.Point{X: x, Y: y})
	t := p.Sub(s.start).Dot(s.dir)
	return s.colorAt(t)
}

type radialShader struct {
	gradientShader
	inv    multirender.Affine
	center multirender.Point
	r0     float64
	invDR  float64
}

func (s *radialShader) shade(x, y float64) multirender.Color {
	p := s.inv.Apply(multirender.Point{X: x, Y: y})
	t := (p.Distance(s.center) - s.r0) * s.invDR
	return s.colorAt(t)
}

type sweepShader struct {
	gradientShader
	inv      multirender.Affine
	center   multirender.Point
	start    float64
	invSweep float64
}

func (s *sweepShader) shade(x, y float64) multirender.Color {
	p := s.inv.Apply(multirender.Point{X: x, Y: y})
	ang := math.Atan2(p.Y-s.center.Y, p.X-s.center.X)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	return s.colorAt((ang - s.start) * s.invSweep)
}

type imageShader struct {
	inv   multirender.Affine
	paint *multirender.ImagePaint
}

func (s *imageShader) shade(x, y float64) multirender.Color {
	p := s.inv.Apply(multirender.Point{X: x, Y: y})

	var c multirender.Color
	if s.paint.Quality == multirender.QualityNearest {
		c = s.sample(int(math.Floor(p.X)), int(math.Floor(p.Y)))
	} else {
		// Bilinear: sample the four surrounding texels.
		fx := p.X - 0.5
		fy := p.Y - 0.5
		x0 := math.Floor(fx)
		y0 := math.Floor(fy)
		tx := fx - x0
		ty := fy - y0

		c00 := s.sample(int(x0), int(y0))
		c10 := s.sample(int(x0)+1, int(y0))
		c01 := s.sample(int(x0), int(y0)+1)
		c11 := s.sample(int(x0)+1, int(y0)+1)

		top := c00.Lerp(c10, tx)
		bot := c01.Lerp(c11, tx)
		c = top.Lerp(bot, ty)
	}

	// Alpha zero means "unset", i.e. fully opaque.
	if s.paint.Alpha != 0 && s.paint.Alpha != 1 {
		c.A *= s.paint.Alpha
	}
	return c
}

// sample reads the texel at (ix, iy) after applying per-axis extend.
func (s *imageShader) sample(ix, iy int) multirender.Color {
	img := s.paint.Image
	ix, ok := extendCoord(ix, img.Width, s.paint.XExtend)
	if !ok {
		return multirender.Transparent
	}
	iy, ok = extendCoord(iy, img.Height, s.paint.YExtend)
	if !ok {
		return multirender.Transparent
	}

	i := (iy*img.Width + ix) * 4
	return multirender.Color{
		R: float64(img.Pix[i+0]) / 255,
		G: float64(img.Pix[i+1]) / 255,
		B: float64(img.Pix[i+2]) / 255,
		A: float64(img.Pix[i+3]) / 255,
	}
}

// extendCoord maps an integer texel coordinate into [0, n) per the
// extend mode. Pad clamps; the boolean is always true for the modes
// currently defined.
func extendCoord(i, n int, mode multirender.ExtendMode) (int, bool) {
	switch mode {
	case multirender.ExtendRepeat:
		i %= n
		if i < 0 {
			i += n
		}
	case multirender.ExtendReflect:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
	default: // pad
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
	}
	return i, true
}
