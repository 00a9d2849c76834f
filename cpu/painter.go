package cpu

import (
	"log/slog"

	"github.com/dest-hq/multirender"
)

// layerKind distinguishes compositing layers from pure clip layers.
type layerKind uint8

const (
	layerComposite layerKind = iota
	layerClip
)

// frame is one entry of the painter's layer stack. Composite frames
// own a pixmap that draws render into until PopLayer blends it down;
// clip frames only narrow the clip mask and redirect nothing.
type frame struct {
	kind  layerKind
	pix   *Pixmap // nil for clip frames
	blend multirender.BlendMode
	alpha float32
	clip  []float32 // canvas-sized coverage, nil means unclipped
}

// ScenePainter rasterizes multirender scene operations into a target
// pixmap. It implements multirender.Scene.
type ScenePainter struct {
	target    *Pixmap
	stack     []frame
	tolerance float64
}

var _ multirender.Scene = (*ScenePainter)(nil)

// NewScenePainter creates a painter drawing into target.
func NewScenePainter(target *Pixmap) *ScenePainter {
	p := &ScenePainter{
		target:    target,
		tolerance: multirender.DefaultTolerance,
	}
	p.Reset()
	return p
}

// Reset clears the target and drops any unbalanced layers.
func (p *ScenePainter) Reset() {
	if n := len(p.stack); n > 1 {
		multirender.Logger().Warn("scene reset with unbalanced layers",
			slog.Int("depth", n-1))
	}
	p.target.Clear()
	p.stack = p.stack[:0]
	p.stack = append(p.stack, frame{kind: layerComposite, pix: p.target, alpha: 1})
}

// top returns the current frame.
func (p *ScenePainter) top() *frame {
	return &p.stack[len(p.stack)-1]
}

// drawTarget returns the pixmap draws currently render into: the
// nearest composite frame's pixmap.
func (p *ScenePainter) drawTarget() *Pixmap {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].pix != nil {
			return p.stack[i].pix
		}
	}
	return p.target
}

// PushLayer pushes a compositing layer. Draws render into a fresh
// buffer until the matching PopLayer blends it onto the content below
// with the given blend mode and alpha. A non-nil clip additionally
// masks the composite.
func (p *ScenePainter) PushLayer(blend multirender.BlendMode, alpha float32, transform multirender.Affine, clip multirender.Shape) {
	f := frame{
		kind:  layerComposite,
		pix:   NewPixmap(p.target.width, p.target.height),
		blend: blend,
		alpha: alpha,
		clip:  p.intersectClip(transform, clip),
	}
	p.stack = append(p.stack, f)
}

// PushClipLayer pushes a clip-only layer: subsequent draws are masked
// by the shape without allocating a compositing buffer.
func (p *ScenePainter) PushClipLayer(transform multirender.Affine, clip multirender.Shape) {
	p.stack = append(p.stack, frame{
		kind:  layerClip,
		alpha: 1,
		clip:  p.intersectClip(transform, clip),
	})
}

// PopLayer pops the top layer. Composite layers are blended onto the
// layer below; clip layers just restore the previous clip.
func (p *ScenePainter) PopLayer() {
	if len(p.stack) <= 1 {
		multirender.Logger().Warn("PopLayer on empty layer stack")
		return
	}
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if f.kind == layerComposite && f.pix != nil {
		compositeLayer(p.drawTarget(), f.pix, f.blend, f.alpha, f.clip)
	}
}

// intersectClip rasterizes a clip shape and intersects it with the
// current clip mask. A nil shape inherits the current clip unchanged.
func (p *ScenePainter) intersectClip(transform multirender.Affine, clip multirender.Shape) []float32 {
	parent := p.top().clip
	if clip == nil {
		return parent
	}

	w, h := p.target.width, p.target.height
	canvas := multirender.NewRect(0, 0, float64(w), float64(h))
	edges := edgesFromSubpaths(flatten(clip.ToPath(), transform, p.tolerance))
	mask := rasterize(edges, multirender.FillNonZero, canvas)

	out := make([]float32, w*h)
	if mask == nil {
		return out // empty clip, everything masked out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := mask.at(x, y)
			if cov > 1 {
				cov = 1
			}
			if parent != nil {
				cov *= parent[y*w+x]
			}
			out[y*w+x] = cov
		}
	}
	return out
}

// Fill fills a shape with a paint.
func (p *ScenePainter) Fill(style multirender.FillRule, transform multirender.Affine, paint multirender.Paint, paintTransform *multirender.Affine, shape multirender.Shape) {
	if shape == nil {
		return
	}
	edges := edgesFromSubpaths(flatten(shape.ToPath(), transform, p.tolerance))
	p.paintMask(edges, style, paint, transform, paintTransform)
}

// Stroke strokes a shape's outline with a paint.
func (p *ScenePainter) Stroke(style *multirender.StrokeStyle, transform multirender.Affine, paint multirender.Paint, paintTransform *multirender.Affine, shape multirender.Shape) {
	if shape == nil {
		return
	}
	if style == nil {
		def := multirender.DefaultStrokeStyle()
		style = &def
	}
	if style.Width <= 0 {
		return
	}
	outline := strokeOutline(shape.ToPath(), style, transform, p.tolerance)
	edges := edgesFromSubpaths(outline)
	p.paintMask(edges, multirender.FillNonZero, paint, transform, paintTransform)
}

// paintMask rasterizes the edges and shades every covered pixel into
// the current draw target through the current clip.
func (p *ScenePainter) paintMask(edges []edge, rule multirender.FillRule, paint multirender.Paint, transform multirender.Affine, paintTransform *multirender.Affine) {
	dst := p.drawTarget()
	canvas := multirender.NewRect(0, 0, float64(dst.width), float64(dst.height))
	mask := rasterize(edges, rule, canvas)
	if mask == nil {
		return
	}

	clip := p.top().clip
	sh := newShader(paint, transform, paintTransform)

	x1 := mask.x0 + mask.w
	y1 := mask.y0 + mask.h
	for y := mask.y0; y < y1; y++ {
		for x := mask.x0; x < x1; x++ {
			cov := float64(mask.at(x, y))
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			if clip != nil {
				if x < 0 || x >= dst.width || y < 0 || y >= dst.height {
					continue
				}
				cov *= float64(clip[y*dst.width+x])
				if cov <= 0 {
					continue
				}
			}
			c := sh.shade(float64(x)+0.5, float64(y)+0.5)
			dst.BlendPixel(x, y, c, cov)
		}
	}
}
