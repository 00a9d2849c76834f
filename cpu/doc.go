// Package cpu implements the software rendering backend.
//
// The backend rasterizes multirender scenes on the CPU using a
// scanline rasterizer with 4x vertical supersampling. It supports the
// full paint model (solid colors, linear/radial/sweep gradients, image
// paints), compositing layers with blend modes, clip layers, glyph
// runs, and blurred box shadows.
//
// The package registers itself under the name "cpu":
//
//	import _ "github.com/dest-hq/multirender/cpu"
//
// Use NewImageRenderer directly, or go through the backend registry.
package cpu
