package cpu

import (
	"github.com/dest-hq/multirender"
	"github.com/dest-hq/multirender/backend"
)

func init() {
	backend.RegisterImage(backend.NameCPU, func(width, height uint32) (multirender.ImageRenderer, error) {
		return NewImageRenderer(width, height)
	})
	backend.RegisterWindow(backend.NameCPU, func() (multirender.WindowRenderer, error) {
		return NewWindowRenderer(), nil
	})
}

// ImageRenderer renders scenes into caller-owned RGBA8 buffers using
// the software rasterizer.
type ImageRenderer struct {
	pix     *Pixmap
	painter *ScenePainter
}

var _ multirender.ImageRenderer = (*ImageRenderer)(nil)

// NewImageRenderer creates a software image renderer at the given size.
func NewImageRenderer(width, height uint32) (*ImageRenderer, error) {
	if width == 0 || height == 0 {
		return nil, multirender.ErrInvalidDimensions
	}
	pix := NewPixmap(int(width), int(height))
	return &ImageRenderer{
		pix:     pix,
		painter: NewScenePainter(pix),
	}, nil
}

// Size returns the render target size.
func (r *ImageRenderer) Size() (width, height uint32) {
	return uint32(r.pix.width), uint32(r.pix.height)
}

// Resize changes the render target size. Non-positive dimensions are
// ignored.
func (r *ImageRenderer) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	if int(width) == r.pix.width && int(height) == r.pix.height {
		return
	}
	r.pix = NewPixmap(int(width), int(height))
	r.painter = NewScenePainter(r.pix)
}

// Render rasterizes one frame into buf, growing it as needed.
func (r *ImageRenderer) Render(draw func(multirender.Scene), buf *[]byte) error {
	r.painter.Reset()
	draw(r.painter)

	need := len(r.pix.data)
	if cap(*buf) < need {
		*buf = make([]byte, need)
	}
	*buf = (*buf)[:need]
	copy(*buf, r.pix.data)
	return nil
}
