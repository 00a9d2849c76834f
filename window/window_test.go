package window

import (
	"errors"
	"testing"

	"github.com/dest-hq/multirender"
	"github.com/dest-hq/multirender/cpu"
)

// capturePresenter records presented frames.
type capturePresenter struct {
	frames int
	width  uint32
	height uint32
	buf    []byte
	err    error
}

func (p *capturePresenter) Present(buf []byte, width, height uint32) error {
	p.frames++
	p.width, p.height = width, height
	p.buf = append(p.buf[:0], buf...)
	return p.err
}

func newTestRenderer(t *testing.T) (*Renderer, *capturePresenter) {
	t.Helper()
	image, err := cpu.NewImageRenderer(32, 32)
	if err != nil {
		t.Fatalf("NewImageRenderer: %v", err)
	}
	presenter := &capturePresenter{}
	r, err := NewRenderer(image, presenter)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, presenter
}

func TestRendererLifecycle(t *testing.T) {
	r, _ := newTestRenderer(t)

	if r.IsActive() {
		t.Error("renderer active before Resume")
	}
	if err := r.Render(func(multirender.Scene) {}); !errors.Is(err, multirender.ErrSuspended) {
		t.Errorf("Render while suspended = %v, want ErrSuspended", err)
	}

	if err := r.Resume(nil, 64, 48); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !r.IsActive() {
		t.Error("renderer not active after Resume")
	}

	r.Suspend()
	if r.IsActive() {
		t.Error("renderer active after Suspend")
	}
}

func TestRendererPresentsFrames(t *testing.T) {
	r, presenter := newTestRenderer(t)
	if err := r.Resume(nil, 16, 8); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	err := r.Render(func(s multirender.Scene) {
		s.Fill(multirender.FillNonZero, multirender.IdentityAffine(),
			multirender.NewSolidPaint(multirender.RGB(1, 0, 0)), nil,
			multirender.NewRect(0, 0, 16, 8))
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if presenter.frames != 1 {
		t.Fatalf("presented %d frames, want 1", presenter.frames)
	}
	if presenter.width != 16 || presenter.height != 8 {
		t.Errorf("presented size = (%d, %d), want (16, 8)", presenter.width, presenter.height)
	}
	if len(presenter.buf) != 16*8*4 {
		t.Fatalf("presented buffer length = %d", len(presenter.buf))
	}
	if presenter.buf[0] != 255 || presenter.buf[3] != 255 {
		t.Errorf("presented pixel = %v, want opaque red", presenter.buf[:4])
	}
}

func TestRendererSetSize(t *testing.T) {
	r, presenter := newTestRenderer(t)
	if err := r.Resume(nil, 10, 10); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	r.SetSize(20, 20)
	if err := r.Render(func(multirender.Scene) {}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if presenter.width != 20 || presenter.height != 20 {
		t.Errorf("presented size = (%d, %d), want (20, 20)", presenter.width, presenter.height)
	}

	// Invalid sizes are ignored.
	r.SetSize(0, 5)
	if err := r.Render(func(multirender.Scene) {}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if presenter.width != 20 || presenter.height != 20 {
		t.Errorf("size changed after invalid SetSize: (%d, %d)", presenter.width, presenter.height)
	}
}

func TestRendererPropagatesPresentError(t *testing.T) {
	r, presenter := newTestRenderer(t)
	if err := r.Resume(nil, 4, 4); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	presenter.err = errors.New("surface lost")
	if err := r.Render(func(multirender.Scene) {}); err == nil {
		t.Error("Render swallowed the presenter error")
	}
}

func TestNewRendererNilArgs(t *testing.T) {
	image, err := cpu.NewImageRenderer(4, 4)
	if err != nil {
		t.Fatalf("NewImageRenderer: %v", err)
	}
	if _, err := NewRenderer(nil, &capturePresenter{}); err == nil {
		t.Error("nil image renderer accepted")
	}
	if _, err := NewRenderer(image, nil); err == nil {
		t.Error("nil presenter accepted")
	}
}

func TestResumeInvalidDimensions(t *testing.T) {
	r, _ := newTestRenderer(t)
	if err := r.Resume(nil, 0, 10); !errors.Is(err, multirender.ErrInvalidDimensions) {
		t.Errorf("Resume(0, 10) = %v, want ErrInvalidDimensions", err)
	}
}

func TestHandleBridgesPresenter(t *testing.T) {
	presenter := &capturePresenter{}
	h := NewHandle(func() (uint32, uint32) { return 800, 600 }, presenter)

	if w, gotH := h.WindowSize(); w != 800 || gotH != 600 {
		t.Errorf("WindowSize() = (%d, %d)", w, gotH)
	}
	if err := h.PresentFrame([]byte{1, 2, 3, 4}, 1, 1); err != nil {
		t.Fatalf("PresentFrame: %v", err)
	}
	if presenter.frames != 1 || presenter.width != 1 {
		t.Errorf("presenter not invoked: %+v", presenter)
	}
}

func TestHandleDrivesCPUWindowRenderer(t *testing.T) {
	presenter := &capturePresenter{}
	h := NewHandle(func() (uint32, uint32) { return 8, 8 }, presenter)

	r := cpu.NewWindowRenderer()
	if err := r.Resume(h, 8, 8); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if err := r.Render(func(multirender.Scene) {}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if presenter.frames != 1 || presenter.width != 8 || presenter.height != 8 {
		t.Errorf("cpu window renderer did not present through the handle: %+v", presenter)
	}
}
