package window

import (
	"github.com/dest-hq/multirender"
)

// Handle is a ready-made WindowHandle that also presents frames, for
// wiring CPU-rasterizing window backends to a Presenter. The size
// function is queried on every WindowSize call so the handle tracks
// live window resizes.
type Handle struct {
	size      func() (width, height uint32)
	presenter Presenter
}

var (
	_ multirender.WindowHandle   = (*Handle)(nil)
	_ multirender.FramePresenter = (*Handle)(nil)
)

// NewHandle creates a window handle backed by a size function and a
// presenter.
func NewHandle(size func() (width, height uint32), presenter Presenter) *Handle {
	return &Handle{size: size, presenter: presenter}
}

// WindowSize returns the current window size.
func (h *Handle) WindowSize() (width, height uint32) {
	return h.size()
}

// PresentFrame implements multirender.FramePresenter.
func (h *Handle) PresentFrame(buf []byte, width, height uint32) error {
	return h.presenter.Present(buf, width, height)
}
