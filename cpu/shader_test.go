package cpu

import (
	"math"
	"testing"

	"github.com/dest-hq/multirender"
)

func colorNearEqual(a, b multirender.Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}

func TestSolidShader(t *testing.T) {
	s := newShader(multirender.NewSolidPaint(multirender.RGB(0.2, 0.4, 0.6)),
		multirender.IdentityAffine(), nil)
	got := s.shade(123, 456)
	if !colorNearEqual(got, multirender.RGB(0.2, 0.4, 0.6), 1e-9) {
		t.Errorf("solid shade = %+v", got)
	}
}

func TestLinearGradientEndpoints(t *testing.T) {
	g := multirender.NewLinearGradientPaint(0, 0, 100, 0).
		AddStop(0, multirender.RGB(1, 0, 0)).
		AddStop(1, multirender.RGB(0, 0, 1))
	s := newShader(g, multirender.IdentityAffine(), nil)

	tests := []struct {
		name string
		x    float64
		want multirender.Color
	}{
		{"start", 0, multirender.RGB(1, 0, 0)},
		{"end", 100, multirender.RGB(0, 0, 1)},
		{"middle", 50, multirender.RGB(0.5, 0, 0.5)},
		{"before start pads", -40, multirender.RGB(1, 0, 0)},
		{"past end pads", 140, multirender.RGB(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.shade(tt.x, 10)
			if !colorNearEqual(got, tt.want, 1e-6) {
				t.Errorf("shade(%v) = %+v, want %+v", tt.x, got, tt.want)
			}
		})
	}
}

func TestLinearGradientRepeatExtend(t *testing.T) {
	g := multirender.NewLinearGradientPaint(0, 0, 10, 0).
		AddStop(0, multirender.RGB(1, 0, 0)).
		AddStop(1, multirender.RGB(0, 0, 1))
	g.Extend = multirender.ExtendRepeat
	s := newShader(g, multirender.IdentityAffine(), nil)

	// t = 2.5 repeats to 0.5.
	got := s.shade(25, 0)
	if !colorNearEqual(got, multirender.RGB(0.5, 0, 0.5), 1e-6) {
		t.Errorf("repeated shade = %+v, want midpoint", got)
	}
}

func TestLinearGradientReflectExtend(t *testing.T) {
	g := multirender.NewLinearGradientPaint(0, 0, 10, 0).
		AddStop(0, multirender.RGB(1, 0, 0)).
		AddStop(1, multirender.RGB(0, 0, 1))
	g.Extend = multirender.ExtendReflect
	s := newShader(g, multirender.IdentityAffine(), nil)

	// t = 1.25 reflects to 0.75.
	got := s.shade(12.5, 0)
	if !colorNearEqual(got, multirender.RGB(0.25, 0, 0.75), 1e-6) {
		t.Errorf("reflected shade = %+v, want t=0.75 color", got)
	}
}

func TestLinearGradientRespectsPaintTransform(t *testing.T) {
	g := multirender.NewLinearGradientPaint(0, 0, 10, 0).
		AddStop(0, multirender.RGB(1, 0, 0)).
		AddStop(1, multirender.RGB(0, 0, 1))
	pt := multirender.Translate(100, 0)
	s := newShader(g, multirender.IdentityAffine(), &pt)

	// Device x=100 maps back to paint x=0.
	got := s.shade(100, 0)
	if !colorNearEqual(got, multirender.RGB(1, 0, 0), 1e-6) {
		t.Errorf("shade at translated start = %+v, want start color", got)
	}
}

func TestRadialGradient(t *testing.T) {
	g := multirender.NewRadialGradientPaint(50, 50, 0, 20).
		AddStop(0, multirender.RGB(1, 1, 1)).
		AddStop(1, multirender.RGB(0, 0, 0))
	s := newShader(g, multirender.IdentityAffine(), nil)

	if got := s.shade(50, 50); !colorNearEqual(got, multirender.RGB(1, 1, 1), 1e-6) {
		t.Errorf("center shade = %+v, want white", got)
	}
	if got := s.shade(70, 50); !colorNearEqual(got, multirender.RGB(0, 0, 0), 1e-6) {
		t.Errorf("edge shade = %+v, want black", got)
	}
	if got := s.shade(60, 50); !colorNearEqual(got, multirender.RGB(0.5, 0.5, 0.5), 1e-6) {
		t.Errorf("half-radius shade = %+v, want mid gray", got)
	}
}

func TestSweepGradient(t *testing.T) {
	g := multirender.NewSweepGradientPaint(0, 0).
		AddStop(0, multirender.RGB(1, 0, 0)).
		AddStop(1, multirender.RGB(0, 0, 1))
	s := newShader(g, multirender.IdentityAffine(), nil)

	// Along +X the angle is 0.
	if got := s.shade(10, 0); !colorNearEqual(got, multirender.RGB(1, 0, 0), 1e-6) {
		t.Errorf("angle-0 shade = %+v, want first stop", got)
	}
	// Along +Y the angle is pi/2, a quarter of the sweep.
	if got := s.shade(0, 10); !colorNearEqual(got, multirender.RGB(0.75, 0, 0.25), 1e-6) {
		t.Errorf("quarter-sweep shade = %+v", got)
	}
}

func TestGradientWithoutStopsIsTransparent(t *testing.T) {
	g := multirender.NewLinearGradientPaint(0, 0, 10, 0)
	s := newShader(g, multirender.IdentityAffine(), nil)
	if got := s.shade(5, 0); got.A != 0 {
		t.Errorf("stopless gradient shade = %+v, want transparent", got)
	}
}

func TestCustomPaintIsTransparent(t *testing.T) {
	s := newShader(multirender.CustomPaint{Payload: "gpu-only"},
		multirender.IdentityAffine(), nil)
	if got := s.shade(0, 0); got.A != 0 {
		t.Errorf("custom paint shade = %+v, want transparent", got)
	}
}

func checkerImage() *multirender.ImageData {
	// 2x2: red, green / blue, white.
	pix := []uint8{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	return multirender.NewImageData(pix, 2, 2)
}

func TestImageShaderNearest(t *testing.T) {
	p := multirender.NewImagePaint(checkerImage())
	p.Quality = multirender.QualityNearest
	s := newShader(p, multirender.IdentityAffine(), nil)

	tests := []struct {
		name string
		x, y float64
		want multirender.Color
	}{
		{"top left", 0.5, 0.5, multirender.RGB(1, 0, 0)},
		{"top right", 1.5, 0.5, multirender.RGB(0, 1, 0)},
		{"bottom left", 0.5, 1.5, multirender.RGB(0, 0, 1)},
		{"bottom right", 1.5, 1.5, multirender.RGB(1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.shade(tt.x, tt.y)
			if !colorNearEqual(got, tt.want, 0.01) {
				t.Errorf("shade(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestImageShaderBilinearBlends(t *testing.T) {
	p := multirender.NewImagePaint(checkerImage())
	s := newShader(p, multirender.IdentityAffine(), nil)

	// The exact texel center matches the texel; between centers the
	// channels blend.
	center := s.shade(0.5, 0.5)
	if !colorNearEqual(center, multirender.RGB(1, 0, 0), 0.01) {
		t.Errorf("texel-center shade = %+v, want red", center)
	}
	mid := s.shade(1.0, 0.5)
	if math.Abs(mid.R-0.5) > 0.01 || math.Abs(mid.G-0.5) > 0.01 {
		t.Errorf("between-texel shade = %+v, want red/green blend", mid)
	}
}

func TestImageShaderExtendModes(t *testing.T) {
	p := multirender.NewImagePaint(checkerImage())
	p.Quality = multirender.QualityNearest

	// Pad clamps to the edge texel.
	s := newShader(p, multirender.IdentityAffine(), nil)
	if got := s.shade(-5, 0.5); !colorNearEqual(got, multirender.RGB(1, 0, 0), 0.01) {
		t.Errorf("pad shade = %+v, want clamped red", got)
	}

	// Repeat wraps around.
	p2 := multirender.NewImagePaint(checkerImage())
	p2.Quality = multirender.QualityNearest
	p2.XExtend = multirender.ExtendRepeat
	s2 := newShader(p2, multirender.IdentityAffine(), nil)
	if got := s2.shade(2.5, 0.5); !colorNearEqual(got, multirender.RGB(1, 0, 0), 0.01) {
		t.Errorf("repeat shade = %+v, want wrapped red", got)
	}
}

func TestImageShaderAlpha(t *testing.T) {
	p := multirender.NewImagePaint(checkerImage())
	p.Quality = multirender.QualityNearest
	p.Alpha = 0.5
	s := newShader(p, multirender.IdentityAffine(), nil)

	if got := s.shade(0.5, 0.5); math.Abs(got.A-0.5) > 0.01 {
		t.Errorf("alpha-scaled shade = %+v, want A ~0.5", got)
	}

	// Zero alpha means unset.
	p.Alpha = 0
	s = newShader(p, multirender.IdentityAffine(), nil)
	if got := s.shade(0.5, 0.5); got.A != 1 {
		t.Errorf("unset alpha shade = %+v, want opaque", got)
	}
}

func TestImageShaderNilImage(t *testing.T) {
	s := newShader(&multirender.ImagePaint{}, multirender.IdentityAffine(), nil)
	if got := s.shade(0, 0); got.A != 0 {
		t.Errorf("nil image shade = %+v, want transparent", got)
	}
}

func TestSingularTransformIsTransparent(t *testing.T) {
	g := multirender.NewLinearGradientPaint(0, 0, 10, 0).
		AddStop(0, multirender.RGB(1, 0, 0)).
		AddStop(1, multirender.RGB(0, 0, 1))
	s := newShader(g, multirender.Scale(0, 0), nil)
	if got := s.shade(5, 5); got.A != 0 {
		t.Errorf("singular-transform shade = %+v, want transparent", got)
	}
}
