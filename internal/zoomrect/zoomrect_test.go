package zoomrect

import (
	"math"
	"testing"

	"github.com/example/fractalexplorer/internal/viewport"
)

var fullSurface = Surface{Width: 1200, Height: 800}

func TestConvertRejectsSmallSelections(t *testing.T) {
	v := viewport.New(viewport.Mandelbrot)
	cases := [][2]viewport.Point{
		{{X: 100, Y: 100}, {X: 109, Y: 400}},
		{{X: 100, Y: 100}, {X: 500, Y: 109.5}},
		{{X: 300, Y: 300}, {X: 300, Y: 300}},
		{{X: 500, Y: 500}, {X: 491, Y: 300}},
	}
	for _, c := range cases {
		got, ok := Convert(c[0], c[1], fullSurface, v, 1200, 800)
		if ok || got != v {
			t.Fatalf("selection %v -> %v applied: %+v", c[0], c[1], got)
		}
	}
}

func TestConvertRejectsZoomOut(t *testing.T) {
	v := viewport.New(viewport.Mandelbrot)
	// Covers the whole surface and more, so the clamped factor is exactly 1.
	got, ok := Convert(viewport.Point{X: -50, Y: -50}, viewport.Point{X: 1300, Y: 900}, fullSurface, v, 1200, 800)
	if ok || got != v {
		t.Fatalf("full-surface selection applied: %+v", got)
	}
}

func TestConvertZoomsOntoSelection(t *testing.T) {
	v := viewport.New(viewport.Mandelbrot)
	// The middle quarter of the surface.
	got, ok := Convert(viewport.Point{X: 450, Y: 300}, viewport.Point{X: 750, Y: 500}, fullSurface, v, 1200, 800)
	if !ok {
		t.Fatalf("expected selection to apply")
	}
	if math.Abs(got.Center.X+0.5) > 1e-12 || math.Abs(got.Center.Y) > 1e-12 {
		t.Fatalf("center = %+v", got.Center)
	}
	if math.Abs(got.Zoom-4) > 1e-9 {
		t.Fatalf("zoom = %v, want 4", got.Zoom)
	}
	if got.Variant != v.Variant || got.JuliaC != v.JuliaC {
		t.Fatalf("convert changed unrelated fields: %+v", got)
	}
}

func TestConvertTighterAxisGoverns(t *testing.T) {
	v := viewport.New(viewport.Julia)
	// Wide and short: the width ratio (4) is smaller than the height ratio (8).
	got, ok := Convert(viewport.Point{X: 750, Y: 450}, viewport.Point{X: 450, Y: 350}, fullSurface, v, 1200, 800)
	if !ok {
		t.Fatalf("expected selection to apply")
	}
	if math.Abs(got.Zoom-1.5*4) > 1e-9 {
		t.Fatalf("zoom = %v, want 6", got.Zoom)
	}
}

func TestConvertOffsetSurfaceAndClamp(t *testing.T) {
	v := viewport.New(viewport.Mandelbrot)
	surface := Surface{Min: viewport.Point{X: 250, Y: 0}, Width: 1200, Height: 800}
	// Starts left of the surface, so the corner clamps to its left edge.
	got, ok := Convert(viewport.Point{X: 100, Y: 0}, viewport.Point{X: 550, Y: 200}, surface, v, 1200, 800)
	if !ok {
		t.Fatalf("expected selection to apply")
	}
	b := v.Bounds(1200, 800)
	wantX := (b.Left + b.At(0.25, 0).X) / 2
	if math.Abs(got.Center.X-wantX) > 1e-12 {
		t.Fatalf("center x = %v, want %v", got.Center.X, wantX)
	}
}

func TestConvertDegenerateSurface(t *testing.T) {
	v := viewport.New(viewport.Mandelbrot)
	for _, s := range []Surface{{}, {Width: 100}, {Height: 100}, {Width: math.NaN(), Height: 10}} {
		got, ok := Convert(viewport.Point{X: 0, Y: 0}, viewport.Point{X: 50, Y: 50}, s, v, 1200, 800)
		if ok || got != v {
			t.Fatalf("surface %+v applied: %+v", s, got)
		}
	}
}

func TestConvertSelectionClampedToEdge(t *testing.T) {
	v := viewport.New(viewport.Mandelbrot)
	// Entirely right of the surface: both corners clamp to x = 1, width 0.
	got, ok := Convert(viewport.Point{X: 1300, Y: 100}, viewport.Point{X: 1400, Y: 300}, fullSurface, v, 1200, 800)
	if ok || got != v {
		t.Fatalf("zero-width selection applied: %+v", got)
	}
}

func TestSurfaceContains(t *testing.T) {
	s := Surface{Min: viewport.Point{X: 10, Y: 10}, Width: 5, Height: 5}
	if !s.Contains(viewport.Point{X: 10, Y: 14.9}) {
		t.Fatalf("expected point inside")
	}
	if s.Contains(viewport.Point{X: 15, Y: 12}) {
		t.Fatalf("right edge is exclusive")
	}
}
