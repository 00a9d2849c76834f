package cpu

import (
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/dest-hq/multirender"
)

// Pixmap is a rectangular RGBA8 pixel buffer, 4 bytes per pixel,
// non-premultiplied, row-major.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clear fills the pixmap with transparent black, keeping the buffer.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// SetPixel sets a single pixel, ignoring out-of-bounds coordinates.
func (p *Pixmap) SetPixel(x, y int, c multirender.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	r, g, b, a := c.Bytes()
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns a single pixel, or transparent for out-of-bounds
// coordinates.
func (p *Pixmap) GetPixel(x, y int) multirender.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return multirender.Transparent
	}
	i := (y*p.width + x) * 4
	return multirender.Color{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// BlendPixel source-over blends c onto the pixel at (x, y), with the
// color's alpha additionally scaled by coverage in [0, 1].
func (p *Pixmap) BlendPixel(x, y int, c multirender.Color, coverage float64) {
	if coverage <= 0 {
		return
	}
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}

	srcA := c.A * coverage
	if srcA <= 0 {
		return
	}

	i := (y*p.width + x) * 4
	dstA := float64(p.data[i+3]) / 255
	if srcA >= 1 || dstA == 0 {
		r, g, b, _ := c.Bytes()
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = uint8(clamp01(srcA)*255 + 0.5)
		return
	}

	dstR := float64(p.data[i+0]) / 255
	dstG := float64(p.data[i+1]) / 255
	dstB := float64(p.data[i+2]) / 255

	inv := 1 - srcA
	outA := srcA + dstA*inv
	outR := (c.R*srcA + dstR*dstA*inv) / outA
	outG := (c.G*srcA + dstG*dstA*inv) / outA
	outB := (c.B*srcA + dstB*dstA*inv) / outA

	p.data[i+0] = uint8(clamp01(outR)*255 + 0.5)
	p.data[i+1] = uint8(clamp01(outG)*255 + 0.5)
	p.data[i+2] = uint8(clamp01(outB)*255 + 0.5)
	p.data[i+3] = uint8(clamp01(outA)*255 + 0.5)
}

// ToImage converts the pixmap to an image.NRGBA. The stored bytes are
// non-premultiplied, so NRGBA takes them verbatim.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// ImageDataFromImage converts any image.Image into multirender
// ImageData, scaling to the given size when it differs from the
// source bounds. Scaling uses bilinear filtering.
func ImageDataFromImage(img image.Image, width, height int) *multirender.ImageData {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if bounds.Dx() == width && bounds.Dy() == height {
		xdraw.Copy(dst, image.Point{}, img, bounds, xdraw.Src, nil)
	} else {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	}
	return multirender.NewImageData(dst.Pix, width, height)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
