package serialize

import (
	"github.com/dest-hq/multirender"
)

// ResourcePool stores the heavy resources referenced by recorded
// commands. Paths are cloned on add so later mutation of the caller's
// path cannot change the recording; paints and fonts are shared by
// reference since they are immutable by contract.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*multirender.Path
	paints []multirender.Paint
	fonts  []*multirender.Font
}

// NewResourcePool creates an empty resource pool with pre-allocated
// capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*multirender.Path, 0, 64),
		paints: make([]multirender.Paint, 0, 32),
		fonts:  make([]*multirender.Font, 0, 4),
	}
}

// AddPath clones the path into the pool and returns its reference.
func (p *ResourcePool) AddPath(path *multirender.Path) PathRef {
	if path == nil {
		return PathRef(InvalidRef)
	}
	p.paths = append(p.paths, path.Clone())
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *multirender.Path {
	if !ref.IsValid() || int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of pooled paths.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddPaint adds a paint to the pool and returns its reference.
func (p *ResourcePool) AddPaint(paint multirender.Paint) PaintRef {
	if paint == nil {
		return PaintRef(InvalidRef)
	}
	p.paints = append(p.paints, paint)
	return PaintRef(uint32(len(p.paints) - 1))
}

// GetPaint returns the paint for the given reference, or nil.
func (p *ResourcePool) GetPaint(ref PaintRef) multirender.Paint {
	if !ref.IsValid() || int(ref) >= len(p.paints) {
		return nil
	}
	return p.paints[ref]
}

// PaintCount returns the number of pooled paints.
func (p *ResourcePool) PaintCount() int {
	return len(p.paints)
}

// AddFont adds a font to the pool and returns its reference. The same
// font (by identity) is pooled once.
func (p *ResourcePool) AddFont(f *multirender.Font) FontRef {
	if f == nil {
		return FontRef(InvalidRef)
	}
	for i, existing := range p.fonts {
		if existing.ID() == f.ID() {
			return FontRef(uint32(i))
		}
	}
	p.fonts = append(p.fonts, f)
	return FontRef(uint32(len(p.fonts) - 1))
}

// GetFont returns the font for the given reference, or nil.
func (p *ResourcePool) GetFont(ref FontRef) *multirender.Font {
	if !ref.IsValid() || int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of pooled fonts.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}

// Clear removes all resources, keeping the allocated capacity.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.paints = p.paints[:0]
	p.fonts = p.fonts[:0]
}
