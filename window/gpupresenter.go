package window

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// GPUPresenter presents CPU-rendered frames through a gpucontext
// texture drawer. Each Present uploads the frame as an RGBA texture
// and draws it at the window origin.
//
// GPUPresenter is not safe for concurrent use.
type GPUPresenter struct {
	drawer func() gpucontext.TextureDrawer

	// The previous frame's texture is destroyed one upload late;
	// NewTextureFromRGBA waits for prior GPU work internally, after
	// which the old texture is no longer referenced.
	texture    any
	oldTexture any
}

// NewGPUPresenter creates a presenter that fetches the surface drawer
// per frame via the given function. A function is taken rather than a
// drawer because windowing frameworks typically hand out a fresh draw
// context each frame.
func NewGPUPresenter(drawer func() gpucontext.TextureDrawer) *GPUPresenter {
	return &GPUPresenter{drawer: drawer}
}

// Present uploads and draws one frame.
func (p *GPUPresenter) Present(buf []byte, width, height uint32) error {
	dc := p.drawer()
	if dc == nil {
		return errors.New("window: no texture drawer available")
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return errors.New("window: surface has no texture creator")
	}

	created, err := creator.NewTextureFromRGBA(int(width), int(height), buf)
	if err != nil {
		return fmt.Errorf("window: frame upload failed: %w", err)
	}
	p.oldTexture = p.texture
	p.texture = created
	p.destroyOld()

	var tex any = created
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("window: created texture %T is not a gpucontext.Texture", tex)
	}
	return dc.DrawTexture(gpuTex, 0, 0)
}

// Close destroys retained textures.
func (p *GPUPresenter) Close() {
	p.oldTexture = p.texture
	p.texture = nil
	p.destroyOld()
}

func (p *GPUPresenter) destroyOld() {
	if p.oldTexture == nil {
		return
	}
	if d, ok := p.oldTexture.(interface{ Destroy() }); ok {
		d.Destroy()
	}
	p.oldTexture = nil
}
