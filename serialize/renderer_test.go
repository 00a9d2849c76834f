package serialize

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dest-hq/multirender"
	"github.com/dest-hq/multirender/backend"
)

func TestRendererWritesJSONFrame(t *testing.T) {
	r := NewRenderer(640, 480)

	var buf []byte
	err := r.Render(func(s multirender.Scene) {
		s.Fill(multirender.FillNonZero, multirender.IdentityAffine(),
			multirender.NewSolidPaint(multirender.Black), nil,
			multirender.NewRect(0, 0, 10, 10))
	}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("frame output is not JSON: %v", err)
	}
	if !strings.Contains(string(buf), `"type": "Fill"`) {
		t.Errorf("frame missing fill command:\n%s", buf)
	}
}

func TestRendererEachFrameStandsAlone(t *testing.T) {
	r := NewRenderer(100, 100)

	var first, second []byte
	if err := r.Render(func(s multirender.Scene) {
		s.DrawBoxShadow(multirender.IdentityAffine(), multirender.NewRect(0, 0, 5, 5),
			multirender.Black, 1, 1)
	}, &first); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if err := r.Render(func(multirender.Scene) {}, &second); err != nil {
		t.Fatalf("second Render: %v", err)
	}

	if strings.Contains(string(second), "DrawBoxShadow") {
		t.Error("second frame still contains the first frame's commands")
	}
}

func TestRendererSizeAndResize(t *testing.T) {
	r := NewRenderer(10, 20)
	if w, h := r.Size(); w != 10 || h != 20 {
		t.Errorf("Size() = (%d, %d)", w, h)
	}
	r.Resize(30, 40)
	if w, h := r.Size(); w != 30 || h != 40 {
		t.Errorf("Size() after Resize = (%d, %d)", w, h)
	}
}

func TestRendererRegistered(t *testing.T) {
	r, err := backend.NewImageRenderer(backend.NameSerialize, 8, 8)
	if err != nil {
		t.Fatalf("NewImageRenderer: %v", err)
	}
	if _, ok := r.(*Renderer); !ok {
		t.Errorf("registered renderer has type %T", r)
	}
}

func TestRendererRecordingAccessor(t *testing.T) {
	r := NewRenderer(8, 8)
	var buf []byte
	if err := r.Render(func(s multirender.Scene) {
		s.PopLayer()
	}, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	rec := r.Recording()
	// Reset marker plus the pop.
	if len(rec.Commands()) != 2 {
		t.Errorf("recording has %d commands, want 2", len(rec.Commands()))
	}
}
