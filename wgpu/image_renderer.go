package wgpu

import (
	"github.com/dest-hq/multirender"
	"github.com/dest-hq/multirender/cpu"
)

// ImageRenderer renders into caller-owned buffers with the hybrid
// pipeline. Rasterization is the same software path the window
// renderer uses; the GPU device is brought up to validate that the
// backend is usable and to report adapter information, so headless
// tools see the same failure modes as windowed ones.
//
// GPU resources are acquired lazily on first Render and held until
// Close.
type ImageRenderer struct {
	inner  *cpu.ImageRenderer
	device *deviceState
	blit   []uint32
	closed bool
}

var _ multirender.ImageRenderer = (*ImageRenderer)(nil)

// NewImageRenderer creates a hybrid image renderer at the given size.
func NewImageRenderer(width, height uint32) (*ImageRenderer, error) {
	inner, err := cpu.NewImageRenderer(width, height)
	if err != nil {
		return nil, err
	}
	return &ImageRenderer{inner: inner}, nil
}

// Size returns the render target size.
func (r *ImageRenderer) Size() (width, height uint32) {
	return r.inner.Size()
}

// Resize changes the render target size.
func (r *ImageRenderer) Resize(width, height uint32) {
	r.inner.Resize(width, height)
}

// Render rasterizes one frame into buf.
func (r *ImageRenderer) Render(draw func(multirender.Scene), buf *[]byte) error {
	if r.closed {
		return multirender.ErrClosed
	}
	if r.device == nil {
		device, err := initDevice()
		if err != nil {
			return err
		}
		blit, err := compileBlitShader()
		if err != nil {
			device.release()
			return err
		}
		r.device = device
		r.blit = blit
	}
	return r.inner.Render(draw, buf)
}

// GPUInfo returns information about the selected GPU, or nil before
// the first Render.
func (r *ImageRenderer) GPUInfo() *GPUInfo {
	if r.device == nil {
		return nil
	}
	return r.device.info
}

// Close releases GPU resources. The renderer cannot render afterwards.
func (r *ImageRenderer) Close() {
	if r.device != nil {
		r.device.release()
		r.device = nil
	}
	r.blit = nil
	r.closed = true
}
