package cpu

import (
	"github.com/dest-hq/multirender"
)

// compositeLayer blends a finished layer pixmap onto dst. The layer's
// alpha is multiplied in, and clip (canvas-sized coverage, nil for
// none) masks the composite per pixel.
func compositeLayer(dst, src *Pixmap, mode multirender.BlendMode, alpha float32, clip []float32) {
	w := src.width
	if dst.width < w {
		w = dst.width
	}
	h := src.height
	if dst.height < h {
		h = dst.height
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*src.width + x) * 4
			srcA := float64(src.data[i+3]) / 255 * float64(alpha)

			cov := 1.0
			if clip != nil {
				cov = float64(clip[y*src.width+x])
			}

			switch mode {
			case multirender.BlendClear:
				if cov <= 0 {
					continue
				}
				clearPixel(dst, x, y, cov)
				continue
			case multirender.BlendCopy:
				if cov <= 0 {
					continue
				}
				copyPixel(dst, src, x, y, srcA, cov)
				continue
			}

			if srcA <= 0 || cov <= 0 {
				continue
			}

			sc := multirender.Color{
				R: float64(src.data[i+0]) / 255,
				G: float64(src.data[i+1]) / 255,
				B: float64(src.data[i+2]) / 255,
				A: srcA,
			}

			if mode != multirender.BlendSourceOver {
				dc := dst.GetPixel(x, y)
				sc.R = mixBlend(mode, dc, sc, dc.R, sc.R)
				sc.G = mixBlend(mode, dc, sc, dc.G, sc.G)
				sc.B = mixBlend(mode, dc, sc, dc.B, sc.B)
			}
			dst.BlendPixel(x, y, sc, cov)
		}
	}
}

// mixBlend applies a separable blend function to one channel and
// interpolates toward the plain source color by the destination alpha,
// so blending against transparent destinations degrades to source-over.
func mixBlend(mode multirender.BlendMode, dc, sc multirender.Color, d, s float64) float64 {
	var b float64
	switch mode {
	case multirender.BlendMultiply:
		b = d * s
	case multirender.BlendScreen:
		b = d + s - d*s
	case multirender.BlendOverlay:
		if d <= 0.5 {
			b = 2 * d * s
		} else {
			b = 1 - 2*(1-d)*(1-s)
		}
	case multirender.BlendDarken:
		if d < s {
			b = d
		} else {
			b = s
		}
	case multirender.BlendLighten:
		if d > s {
			b = d
		} else {
			b = s
		}
	default:
		return s
	}
	return s*(1-dc.A) + b*dc.A
}

// clearPixel erases dst at (x, y) proportionally to coverage.
func clearPixel(dst *Pixmap, x, y int, cov float64) {
	if cov >= 1 {
		i := (y*dst.width + x) * 4
		dst.data[i+0] = 0
		dst.data[i+1] = 0
		dst.data[i+2] = 0
		dst.data[i+3] = 0
		return
	}
	c := dst.GetPixel(x, y)
	c.A *= 1 - cov
	dst.SetPixel(x, y, c)
}

// copyPixel replaces dst with the layer color, scaled by coverage.
func copyPixel(dst, src *Pixmap, x, y int, srcA, cov float64) {
	i := (y*src.width + x) * 4
	c := multirender.Color{
		R: float64(src.data[i+0]) / 255,
		G: float64(src.data[i+1]) / 255,
		B: float64(src.data[i+2]) / 255,
		A: srcA,
	}
	if cov >= 1 {
		dst.SetPixel(x, y, c)
		return
	}
	d := dst.GetPixel(x, y)
	dst.SetPixel(x, y, d.Lerp(c, cov))
}
