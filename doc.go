// Package multirender is a unified 2D drawing abstraction that lets an
// application plug in multiple rendering backends behind one API.
//
// Applications draw through the Scene interface: fills, strokes, glyph
// runs, box shadows, and nested compositing/clip layers. Where those
// commands end up is decided by the backend in use:
//
//   - cpu: a software scanline rasterizer producing RGBA8 pixels
//     (always available)
//   - wgpu: a hybrid renderer that paints on the CPU and presents
//     frames through the GPU via gogpu/wgpu
//   - serialize: a recording backend that captures commands for
//     replay or JSON export
//
// Backends register themselves in the backend package following the
// database/sql driver pattern:
//
//	import (
//	    "github.com/dest-hq/multirender/backend"
//	    _ "github.com/dest-hq/multirender/cpu" // register the cpu backend
//	)
//
//	r, err := backend.NewImageRenderer("cpu", 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf []byte
//	err = r.Render(func(s multirender.Scene) {
//	    s.Fill(multirender.FillNonZero, multirender.IdentityAffine(),
//	        multirender.NewSolidPaint(multirender.RGB(1, 0, 0)), nil,
//	        multirender.Circle{CX: 400, CY: 300, Radius: 120})
//	}, &buf)
//
// Windowed rendering goes through WindowRenderer implementations, which
// own the surface lifecycle (Resume/Suspend/SetSize) and hand a Scene
// to a draw callback each frame.
//
// multirender is a fork of the AnyRender drawing abstraction.
package multirender
