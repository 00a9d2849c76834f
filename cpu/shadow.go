package cpu

import (
	"math"

	"github.com/dest-hq/multirender"
)

// DrawBoxShadow draws a Gaussian-blurred rounded rectangle. With a
// zero stdDev it degenerates to a plain rounded rectangle fill.
func (p *ScenePainter) DrawBoxShadow(transform multirender.Affine, rect multirender.Rect, color multirender.Color, radius, stdDev float64) {
	if rect.IsEmpty() || color.A <= 0 {
		return
	}

	if stdDev <= 0 {
		shape := multirender.RoundedRect{Rect: rect, Radius: radius}
		p.Fill(multirender.FillNonZero, transform, multirender.NewSolidPaint(color), nil, shape)
		return
	}

	inv, ok := transform.Invert()
	if !ok {
		return
	}

	dst := p.drawTarget()
	clip := p.top().clip

	// The blur reaches about 3 standard deviations past the rect edge.
	pad := 3 * stdDev
	local := rect.Expand(pad)
	device := transform.TransformRect(local).
		Intersect(multirender.NewRect(0, 0, float64(dst.width), float64(dst.height)))
	if device.IsEmpty() {
		return
	}

	x0 := int(math.Floor(device.MinX))
	y0 := int(math.Floor(device.MinY))
	x1 := int(math.Ceil(device.MaxX))
	y1 := int(math.Ceil(device.MaxY))

	maxRadius := math.Min(rect.Width(), rect.Height()) / 2
	r := math.Min(math.Max(radius, 0), maxRadius)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pt := inv.Apply(multirender.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			cov := blurredRoundedRectCoverage(pt, rect, r, stdDev)
			if cov <= 0 {
				continue
			}
			if clip != nil {
				cov *= float64(clip[y*dst.width+x])
				if cov <= 0 {
					continue
				}
			}
			dst.BlendPixel(x, y, color, cov)
		}
	}
}

// blurredRoundedRectCoverage approximates the convolution of a rounded
// rectangle with a Gaussian by passing the signed distance to the
// rectangle through the Gaussian CDF. Exact on straight edges far from
// corners, a close approximation near them.
func blurredRoundedRectCoverage(pt multirender.Point, rect multirender.Rect, radius, stdDev float64) float64 {
	sd := roundedRectDistance(pt, rect, radius)
	// CDF of a centered Gaussian: 0.5 * (1 + erf(x / (sigma*sqrt(2)))).
	return 0.5 * (1 + math.Erf(-sd/(stdDev*math.Sqrt2)))
}

// roundedRectDistance is the signed distance from pt to a rounded
// rectangle, negative inside.
func roundedRectDistance(pt multirender.Point, rect multirender.Rect, radius float64) float64 {
	cx := (rect.MinX + rect.MaxX) / 2
	cy := (rect.MinY + rect.MaxY) / 2
	hw := rect.Width()/2 - radius
	hh := rect.Height()/2 - radius

	qx := math.Abs(pt.X-cx) - hw
	qy := math.Abs(pt.Y-cy) - hh

	outer := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inner := math.Min(math.Max(qx, qy), 0)
	return outer + inner - radius
}
