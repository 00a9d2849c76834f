package wgpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"

	"github.com/dest-hq/multirender"
	"github.com/dest-hq/multirender/backend"
	"github.com/dest-hq/multirender/cpu"
)

func init() {
	backend.RegisterImage(backend.NameWGPU, func(width, height uint32) (multirender.ImageRenderer, error) {
		return NewImageRenderer(width, height)
	})
	backend.RegisterWindow(backend.NameWGPU, func() (multirender.WindowRenderer, error) {
		return NewWindowRenderer(), nil
	})
}

// SurfaceHandle is the window handle the wgpu backend accepts in
// Resume: a window that shares its GPU device and can hand out a
// texture drawer for its surface. gogpu application windows satisfy
// this.
type SurfaceHandle interface {
	multirender.WindowHandle
	gpucontext.DeviceProvider

	// TextureDrawer returns the drawer for the window's surface.
	TextureDrawer() gpucontext.TextureDrawer
}

// textureDestroyer matches the Destroy method of GPU textures.
type textureDestroyer interface {
	Destroy()
}

// WindowRenderer is the hybrid window renderer: scenes are rasterized
// on the CPU and presented by uploading the frame to a GPU texture
// drawn onto the window surface.
type WindowRenderer struct {
	device *deviceState
	blit   []uint32

	handle  SurfaceHandle
	pix     *cpu.Pixmap
	painter *cpu.ScenePainter

	// Frame textures are destroyed one upload late: the texture from
	// the previous frame may still be referenced by in-flight GPU work
	// until NewTextureFromRGBA's internal wait completes.
	frameTexture any
	oldTexture   any
}

var _ multirender.WindowRenderer = (*WindowRenderer)(nil)

// NewWindowRenderer creates a suspended hybrid window renderer.
func NewWindowRenderer() *WindowRenderer {
	return &WindowRenderer{}
}

// IsActive reports whether the renderer holds GPU resources.
func (r *WindowRenderer) IsActive() bool {
	return r.device != nil
}

// Resume acquires GPU resources and binds the renderer to a window.
func (r *WindowRenderer) Resume(handle multirender.WindowHandle, width, height uint32) error {
	surface, ok := handle.(SurfaceHandle)
	if !ok {
		return fmt.Errorf("wgpu: window handle %T does not implement wgpu.SurfaceHandle", handle)
	}
	if width == 0 || height == 0 {
		return multirender.ErrInvalidDimensions
	}

	device, err := initDevice()
	if err != nil {
		return err
	}

	blit, err := compileBlitShader()
	if err != nil {
		device.release()
		return err
	}

	r.Suspend()
	r.device = device
	r.blit = blit
	r.handle = surface
	r.pix = cpu.NewPixmap(int(width), int(height))
	r.painter = cpu.NewScenePainter(r.pix)
	return nil
}

// Suspend releases GPU resources. The renderer can be resumed again.
func (r *WindowRenderer) Suspend() {
	r.destroyTexture(&r.oldTexture)
	r.destroyTexture(&r.frameTexture)
	if r.device != nil {
		r.device.release()
		r.device = nil
	}
	r.blit = nil
	r.handle = nil
	r.pix = nil
	r.painter = nil
}

// SetSize resizes the render target. No-op while suspended.
func (r *WindowRenderer) SetSize(width, height uint32) {
	if r.device == nil || width == 0 || height == 0 {
		return
	}
	if int(width) == r.pix.Width() && int(height) == r.pix.Height() {
		return
	}
	r.pix = cpu.NewPixmap(int(width), int(height))
	r.painter = cpu.NewScenePainter(r.pix)
}

// Render rasterizes one frame, uploads it, and draws it to the
// window surface.
func (r *WindowRenderer) Render(draw func(multirender.Scene)) error {
	if r.device == nil {
		return multirender.ErrSuspended
	}

	r.painter.Reset()
	draw(r.painter)

	drawer := r.handle.TextureDrawer()
	if drawer == nil {
		return errors.New("wgpu: window surface has no texture drawer")
	}
	creator := drawer.TextureCreator()
	if creator == nil {
		return errors.New("wgpu: window surface has no texture creator")
	}

	// Upload. NewTextureFromRGBA waits for prior GPU work internally,
	// so the previous frame's texture is safe to destroy afterwards.
	created, err := creator.NewTextureFromRGBA(r.pix.Width(), r.pix.Height(), r.pix.Data())
	if err != nil {
		return fmt.Errorf("wgpu: frame upload failed: %w", err)
	}
	var tex any = created
	r.oldTexture = r.frameTexture
	r.frameTexture = tex
	r.destroyTexture(&r.oldTexture)

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("wgpu: created texture %T is not a gpucontext.Texture", tex)
	}
	return drawer.DrawTexture(gpuTex, 0, 0)
}

// GPUInfo returns information about the selected GPU, or nil while
// suspended.
func (r *WindowRenderer) GPUInfo() *GPUInfo {
	if r.device == nil {
		return nil
	}
	return r.device.info
}

func (r *WindowRenderer) destroyTexture(slot *any) {
	if *slot == nil {
		return
	}
	if d, ok := (*slot).(textureDestroyer); ok {
		d.Destroy()
	} else {
		multirender.Logger().Debug("wgpu texture has no Destroy",
			slog.String("type", fmt.Sprintf("%T", *slot)))
	}
	*slot = nil
}
