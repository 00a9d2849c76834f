package multirender

// WindowHandle is an opaque handle to a native window, supplied by the
// windowing layer (and ultimately by the platform). Backends type-assert
// it to whatever their presentation path needs; window integrations
// document the concrete types they accept.
type WindowHandle interface {
	// WindowSize returns the current inner size of the window in
	// physical pixels.
	WindowSize() (width, height uint32)
}

// FramePresenter is an optional interface a WindowHandle can implement
// to receive frames from CPU-rasterizing backends. The buffer is
// non-premultiplied RGBA8, row-major, valid only for the duration of
// the call.
type FramePresenter interface {
	PresentFrame(buf []byte, width, height uint32) error
}

// WindowRenderer renders frames into a window surface.
//
// The lifecycle follows the suspended/resumed model of portable
// windowing layers: a renderer starts suspended, acquires surface
// resources in Resume, and releases them in Suspend. Render must only
// be called while active.
type WindowRenderer interface {
	// IsActive reports whether the renderer holds surface resources
	// and can render.
	IsActive() bool

	// Resume acquires surface resources for the given window at the
	// given size. Calling Resume on an active renderer reconfigures
	// the surface.
	Resume(handle WindowHandle, width, height uint32) error

	// Suspend releases surface resources. The renderer can be resumed
	// again later, possibly with a different window.
	Suspend()

	// SetSize resizes the surface. No-op while suspended.
	SetSize(width, height uint32)

	// Render draws one frame: it hands a reset Scene to draw, then
	// rasterizes and presents the result.
	Render(draw func(Scene)) error
}

// ImageRenderer renders frames into caller-owned pixel buffers.
type ImageRenderer interface {
	// Size returns the current render target size in pixels.
	Size() (width, height uint32)

	// Resize changes the render target size.
	Resize(width, height uint32)

	// Render draws one frame into buf as non-premultiplied RGBA8,
	// 4 bytes per pixel, row-major. The buffer is grown as needed.
	Render(draw func(Scene), buf *[]byte) error
}
