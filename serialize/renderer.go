package serialize

import (
	"bytes"

	"github.com/dest-hq/multirender"
	"github.com/dest-hq/multirender/backend"
)

func init() {
	backend.RegisterImage(backend.NameSerialize, func(width, height uint32) (multirender.ImageRenderer, error) {
		return NewRenderer(width, height), nil
	})
}

// Renderer is the recording image renderer: Render fills the output
// buffer with the frame's JSON serialization instead of pixels.
// Useful for golden-file tests and for debugging what an application
// actually draws.
type Renderer struct {
	width, height uint32
	recorder      *Recorder
	maxDepth      int
}

var _ multirender.ImageRenderer = (*Renderer)(nil)

// NewRenderer creates a recording renderer. The dimensions are
// reported through Size but do not constrain recorded geometry.
func NewRenderer(width, height uint32) *Renderer {
	return &Renderer{
		width:    width,
		height:   height,
		recorder: NewRecorder(),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth sets the pretty-printing depth for the JSON output.
func (r *Renderer) SetMaxDepth(depth int) {
	r.maxDepth = depth
}

// Size returns the nominal render target size.
func (r *Renderer) Size() (width, height uint32) {
	return r.width, r.height
}

// Resize changes the nominal render target size.
func (r *Renderer) Resize(width, height uint32) {
	r.width = width
	r.height = height
}

// Render records one frame and writes its JSON serialization into buf.
func (r *Renderer) Render(draw func(multirender.Scene), buf *[]byte) error {
	r.recorder.Reset()
	draw(r.recorder)

	var out bytes.Buffer
	if err := r.recorder.Finish().EncodeJSON(&out, r.maxDepth); err != nil {
		return err
	}
	*buf = append((*buf)[:0], out.Bytes()...)
	return nil
}

// Recording returns a snapshot of the last rendered frame's commands.
func (r *Renderer) Recording() *Recording {
	return r.recorder.Finish()
}
