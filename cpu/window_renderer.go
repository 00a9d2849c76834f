package cpu

import (
	"fmt"

	"github.com/dest-hq/multirender"
)

// WindowRenderer presents software-rasterized frames to a window.
// The window handle passed to Resume must implement
// multirender.FramePresenter; there is no other way for a pure CPU
// backend to reach the screen.
type WindowRenderer struct {
	handle    multirender.WindowHandle
	presenter multirender.FramePresenter
	pix       *Pixmap
	painter   *ScenePainter
}

var _ multirender.WindowRenderer = (*WindowRenderer)(nil)

// NewWindowRenderer creates a suspended software window renderer.
func NewWindowRenderer() *WindowRenderer {
	return &WindowRenderer{}
}

// IsActive reports whether the renderer holds a window.
func (r *WindowRenderer) IsActive() bool {
	return r.presenter != nil
}

// Resume binds the renderer to a window.
func (r *WindowRenderer) Resume(handle multirender.WindowHandle, width, height uint32) error {
	presenter, ok := handle.(multirender.FramePresenter)
	if !ok {
		return fmt.Errorf("cpu: window handle %T does not implement multirender.FramePresenter", handle)
	}
	if width == 0 || height == 0 {
		return multirender.ErrInvalidDimensions
	}

	r.handle = handle
	r.presenter = presenter
	r.pix = NewPixmap(int(width), int(height))
	r.painter = NewScenePainter(r.pix)
	return nil
}

// Suspend releases the window binding.
func (r *WindowRenderer) Suspend() {
	r.handle = nil
	r.presenter = nil
	r.pix = nil
	r.painter = nil
}

// SetSize resizes the render target. No-op while suspended.
func (r *WindowRenderer) SetSize(width, height uint32) {
	if r.presenter == nil || width == 0 || height == 0 {
		return
	}
	if int(width) == r.pix.width && int(height) == r.pix.height {
		return
	}
	r.pix = NewPixmap(int(width), int(height))
	r.painter = NewScenePainter(r.pix)
}

// Render rasterizes one frame and presents it to the window.
func (r *WindowRenderer) Render(draw func(multirender.Scene)) error {
	if r.presenter == nil {
		return multirender.ErrSuspended
	}
	r.painter.Reset()
	draw(r.painter)
	return r.presenter.PresentFrame(r.pix.data, uint32(r.pix.width), uint32(r.pix.height))
}
