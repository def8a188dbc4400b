package viewport

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= 1e-9*scale
}

func TestBoundsMandelbrotDefault(t *testing.T) {
	v := New(Mandelbrot)
	b := v.Bounds(1200, 800)
	want := Bounds{Left: -2.75, Right: 1.75, Top: -1.5, Bottom: 1.5}
	if !near(b.Left, want.Left) || !near(b.Right, want.Right) || !near(b.Top, want.Top) || !near(b.Bottom, want.Bottom) {
		t.Fatalf("bounds = %+v, want %+v", b, want)
	}
	if c := b.At(0.5, 0.5); !near(c.X, -0.5) || !near(c.Y, 0) {
		t.Fatalf("centre maps to %+v", c)
	}
}

func TestBoundsAspectMatchesBuffer(t *testing.T) {
	v := Viewport{Center: Point{0.3, -0.1}, Zoom: 7}
	for _, size := range [][2]int{{1200, 800}, {640, 480}, {100, 300}} {
		b := v.Bounds(size[0], size[1])
		got := b.Width() / b.Height()
		want := float64(size[0]) / float64(size[1])
		if !near(got, want) {
			t.Errorf("%dx%d aspect = %v, want %v", size[0], size[1], got, want)
		}
		if !near(b.Height(), BaseExtent/7) {
			t.Errorf("%dx%d height = %v", size[0], size[1], b.Height())
		}
	}
}

func TestBoundsZeroHeight(t *testing.T) {
	v := New(Mandelbrot)
	b := v.Bounds(100, 0)
	if math.IsInf(b.Width(), 0) || math.IsNaN(b.Width()) {
		t.Fatalf("width not finite: %v", b.Width())
	}
}

func TestResetKochFromAnyState(t *testing.T) {
	v := Viewport{Center: Point{12, -4}, Zoom: 1e6, Variant: Julia, JuliaC: Point{0.1, 0.2}}
	v.Reset(Koch)
	if v.Center != (Point{0.0, -0.2}) || v.Zoom != 0.8 || v.Variant != Koch {
		t.Fatalf("reset koch = %+v", v)
	}
	if v.JuliaC != (Point{0.1, 0.2}) {
		t.Fatalf("reset touched julia constant: %+v", v.JuliaC)
	}
}

func TestResetCanonicalViews(t *testing.T) {
	cases := []struct {
		variant Variant
		center  Point
		zoom    float64
	}{
		{Mandelbrot, Point{-0.5, 0}, 1.0},
		{Julia, Point{0, 0}, 1.5},
		{Koch, Point{0, -0.2}, 0.8},
	}
	for _, c := range cases {
		v := Viewport{Center: Point{3, 3}, Zoom: 42}
		v.Reset(c.variant)
		if v.Center != c.center || v.Zoom != c.zoom {
			t.Errorf("%s: got center %+v zoom %v", c.variant, v.Center, v.Zoom)
		}
	}
}

func TestPanRoundTrip(t *testing.T) {
	v := Viewport{Center: Point{-0.743643887, 0.131825904}, Zoom: 3.5e4}
	orig := v.Center
	v.Pan(37, -12, 1200, 800)
	if v.Center == orig {
		t.Fatalf("pan did not move the center")
	}
	v.Pan(-37, 12, 1200, 800)
	if !near(v.Center.X, orig.X) || !near(v.Center.Y, orig.Y) {
		t.Fatalf("pan round trip = %+v, want %+v", v.Center, orig)
	}
}

func TestPanMovesOppositeToDrag(t *testing.T) {
	v := New(Mandelbrot)
	v.Pan(120, 80, 1200, 800)
	// 4.5 plane units across 1200 pixels, 3 across 800.
	if !near(v.Center.X, -0.5-0.45) || !near(v.Center.Y, -0.3) {
		t.Fatalf("center = %+v", v.Center)
	}
}

func TestZoomByRoundTrip(t *testing.T) {
	v := New(Julia)
	for _, f := range []float64{1.1, 0.9, 1.5, 0.67, 37.2} {
		before := v.Zoom
		v.ZoomBy(f)
		v.ZoomBy(1 / f)
		if !near(v.Zoom, before) {
			t.Fatalf("factor %v: zoom %v, want %v", f, v.Zoom, before)
		}
	}
}

func TestZoomByRejectsInvalidFactors(t *testing.T) {
	v := New(Mandelbrot)
	for _, f := range []float64{0, -2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		v.ZoomBy(f)
		if v.Zoom != 1 {
			t.Fatalf("factor %v changed zoom to %v", f, v.Zoom)
		}
	}
	v.Zoom = math.MaxFloat64 / 2
	v.ZoomBy(10)
	if math.IsInf(v.Zoom, 0) {
		t.Fatalf("zoom overflowed")
	}
	v.Zoom = math.SmallestNonzeroFloat64
	v.ZoomBy(0.5)
	if !(v.Zoom > 0) {
		t.Fatalf("zoom underflowed to %v", v.Zoom)
	}
}

func TestStep(t *testing.T) {
	v := Viewport{Zoom: 2}
	v.Step(Right)
	v.Step(Down)
	if !near(v.Center.X, 0.05) || !near(v.Center.Y, 0.05) {
		t.Fatalf("after right/down center = %+v", v.Center)
	}
	v.Step(Left)
	v.Step(Up)
	if !near(v.Center.X, 0) || !near(v.Center.Y, 0) {
		t.Fatalf("after left/up center = %+v", v.Center)
	}
}

func TestSetJuliaCClamps(t *testing.T) {
	v := New(Julia)
	v.SetJuliaC(-5, 3.5)
	if v.JuliaC != (Point{-2, 2}) {
		t.Fatalf("clamped constant = %+v", v.JuliaC)
	}
	v.SetJuliaC(math.NaN(), 0.25)
	if v.JuliaC != (Point{-2, 0.25}) {
		t.Fatalf("NaN handling = %+v", v.JuliaC)
	}
}

func TestPresets(t *testing.T) {
	if len(Presets) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(Presets))
	}
	p, err := PresetByName("douady-rabbit")
	if err != nil {
		t.Fatalf("PresetByName: %v", err)
	}
	if p.C != (Point{-0.123, 0.745}) {
		t.Fatalf("rabbit = %+v", p.C)
	}
	if p, err := PresetByName("RABBIT"); err != nil || p.Name != "Douady Rabbit" {
		t.Fatalf("rabbit alias = %+v, %v", p, err)
	}
	if _, err := PresetByName("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	v := New(Julia)
	v.ApplyPreset(Presets[2])
	if v.JuliaC != (Point{-0.4, 0.6}) {
		t.Fatalf("apply lightning = %+v", v.JuliaC)
	}
}

func TestParseVariant(t *testing.T) {
	for _, want := range Variants {
		got, err := ParseVariant(want.String())
		if err != nil || got != want {
			t.Fatalf("ParseVariant(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := ParseVariant("sierpinski"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestStatusText(t *testing.T) {
	s := New(Mandelbrot).Status()
	if got := s.ZoomText(); got != "Zoom: 1.00e+00" {
		t.Errorf("ZoomText = %q", got)
	}
	if got := s.CenterText(); got != "Center: (-0.500000, 0.000000)" {
		t.Errorf("CenterText = %q", got)
	}
}
