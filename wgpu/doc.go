// Package wgpu implements the hybrid GPU rendering backend.
//
// Scenes are rasterized on the CPU with the software painter and
// presented through the GPU: the frame is uploaded once per render as
// an RGBA texture and drawn to the window surface via gpucontext.
// This keeps the full paint model available everywhere wgpu runs while
// presentation, scaling, and compositing with other GPU content stay
// on the GPU.
//
// The package registers itself under the name "wgpu":
//
//	import _ "github.com/dest-hq/multirender/wgpu"
//
// Window handles passed to Resume must implement SurfaceHandle.
package wgpu
