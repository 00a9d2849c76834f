package multirender

import (
	"math"
	"testing"
)

func colorNearEqual(a, b Color) bool {
	const tol = 1e-9
	return math.Abs(a.R-b.R) < tol &&
		math.Abs(a.G-b.G) < tol &&
		math.Abs(a.B-b.B) < tol &&
		math.Abs(a.A-b.A) < tol
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"long form white", "#ffffff", White},
		{"long form black", "#000000", Black},
		{"short form", "#f00", RGB(1, 0, 0)},
		{"no hash", "00ff00", RGB(0, 1, 0)},
		{"with alpha", "#0000ff80", Color{R: 0, G: 0, B: 1, A: 128.0 / 255}},
		{"invalid length", "#zzzz", Color{A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); !colorNearEqual(got, tt.want) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorBytes(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0.5, B: 0, A: 1}.Bytes()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("Bytes() = (%d, %d, %d, %d), want (255, 128, 0, 255)", r, g, b, a)
	}

	// Out-of-range components clamp.
	r, _, _, a = Color{R: 2, G: 0, B: 0, A: -1}.Bytes()
	if r != 255 || a != 0 {
		t.Errorf("clamped Bytes() = (r=%d, a=%d), want (255, 0)", r, a)
	}
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorNearEqual(got, want) {
		t.Errorf("Black.Lerp(White, 0.5) = %+v, want %+v", got, want)
	}

	if !colorNearEqual(Black.Lerp(White, 0), Black) {
		t.Error("Lerp at t=0 should return the receiver")
	}
	if !colorNearEqual(Black.Lerp(White, 1), White) {
		t.Error("Lerp at t=1 should return the target")
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	// Half-transparent red premultiplies the color channels.
	r, g, b, a := Color{R: 1, G: 0, B: 0, A: 0.5}.RGBA()
	if a == 0 || r > a || g != 0 || b != 0 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want premultiplied red", r, g, b, a)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	got := FromColor(orig)
	const tol = 1.0 / 255
	if math.Abs(got.R-orig.R) > tol || math.Abs(got.G-orig.G) > tol ||
		math.Abs(got.B-orig.B) > tol || math.Abs(got.A-orig.A) > tol {
		t.Errorf("FromColor round trip = %+v, want %+v", got, orig)
	}

	if FromColor(Transparent) != Transparent {
		t.Error("FromColor(Transparent) should be Transparent")
	}
}

func TestWithAlpha(t *testing.T) {
	got := White.WithAlpha(0.5)
	if got.A != 0.5 || got.R != 1 {
		t.Errorf("WithAlpha(0.5) = %+v", got)
	}
}
