// Package window adapts image renderers to window presentation.
//
// A Renderer wraps any multirender.ImageRenderer and a Presenter:
// every frame is rendered into a pixel buffer and handed to the
// presenter, which owns getting it on screen. GPUPresenter presents
// through a gpucontext texture drawer; applications with their own
// swapchain plumbing implement Presenter directly.
package window

import (
	"fmt"

	"github.com/dest-hq/multirender"
)

// Presenter puts rendered frames on screen.
type Presenter interface {
	// Present displays one frame of non-premultiplied RGBA8 pixels,
	// row-major. The buffer is only valid for the duration of the call.
	Present(buf []byte, width, height uint32) error
}

// Renderer is a WindowRenderer built from an ImageRenderer and a
// Presenter. It is how backends without their own presentation path
// (such as the cpu backend used headlessly) reach a window.
type Renderer struct {
	image     multirender.ImageRenderer
	presenter Presenter
	handle    multirender.WindowHandle
	buf       []byte
	active    bool
}

var _ multirender.WindowRenderer = (*Renderer)(nil)

// NewRenderer wraps an image renderer and a presenter into a window
// renderer. The renderer starts suspended.
func NewRenderer(image multirender.ImageRenderer, presenter Presenter) (*Renderer, error) {
	if image == nil {
		return nil, fmt.Errorf("window: nil image renderer")
	}
	if presenter == nil {
		return nil, fmt.Errorf("window: nil presenter")
	}
	return &Renderer{image: image, presenter: presenter}, nil
}

// IsActive reports whether the renderer is resumed.
func (r *Renderer) IsActive() bool {
	return r.active
}

// Resume binds the renderer to a window and sizes the target.
func (r *Renderer) Resume(handle multirender.WindowHandle, width, height uint32) error {
	if width == 0 || height == 0 {
		return multirender.ErrInvalidDimensions
	}
	r.handle = handle
	r.image.Resize(width, height)
	r.active = true
	return nil
}

// Suspend detaches from the window.
func (r *Renderer) Suspend() {
	r.handle = nil
	r.active = false
}

// SetSize resizes the render target. No-op while suspended.
func (r *Renderer) SetSize(width, height uint32) {
	if !r.active || width == 0 || height == 0 {
		return
	}
	r.image.Resize(width, height)
}

// Render draws one frame and presents it.
func (r *Renderer) Render(draw func(multirender.Scene)) error {
	if !r.active {
		return multirender.ErrSuspended
	}
	if err := r.image.Render(draw, &r.buf); err != nil {
		return err
	}
	w, h := r.image.Size()
	return r.presenter.Present(r.buf, w, h)
}
