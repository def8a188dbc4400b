package engine

import (
	"bytes"
	"image"
	"testing"
	"time"

	"github.com/example/fractalexplorer/internal/escape"
	"github.com/example/fractalexplorer/internal/koch"
	"github.com/example/fractalexplorer/internal/viewport"
)

func TestParallelMatchesSequential(t *testing.T) {
	views := []viewport.Viewport{
		viewport.New(viewport.Mandelbrot),
		viewport.New(viewport.Julia),
	}
	for _, v := range views {
		want := escape.Render(v, 97, 61)
		for _, opts := range []Options{{Workers: 2, TileSize: 16}, {Workers: 8, TileSize: 7}, {Workers: 3}} {
			got := Render(v, 97, 61, opts)
			if !bytes.Equal(got.Pix, want.Pix) {
				t.Fatalf("%s with %+v differs from sequential render", v.Variant, opts)
			}
		}
	}
}

func TestKochDispatch(t *testing.T) {
	v := viewport.New(viewport.Koch)
	got := Render(v, 80, 60, Options{Workers: 4})
	want := koch.Render(v, 80, 60)
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Fatalf("koch view not rendered by the curve rasteriser")
	}
}

func TestRenderEmpty(t *testing.T) {
	img := Render(viewport.New(viewport.Mandelbrot), 0, 10, DefaultOptions())
	if !img.Bounds().Empty() {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestSplitRectCoversExactly(t *testing.T) {
	r := image.Rect(5, 3, 105, 53)
	tiles := SplitRect(r, 32, 20)
	if len(tiles) != 4*3 {
		t.Fatalf("got %d tiles", len(tiles))
	}
	area := 0
	for i, a := range tiles {
		if !a.In(r) {
			t.Fatalf("tile %v outside %v", a, r)
		}
		area += a.Dx() * a.Dy()
		for _, b := range tiles[i+1:] {
			if a.Overlaps(b) {
				t.Fatalf("tiles %v and %v overlap", a, b)
			}
		}
	}
	if area != r.Dx()*r.Dy() {
		t.Fatalf("tiles cover %d pixels, want %d", area, r.Dx()*r.Dy())
	}
}

func TestRendererDeliversSubmittedView(t *testing.T) {
	frames := make(chan Frame, 4)
	r := NewRenderer(Options{Workers: 2, TileSize: 8}, func(f Frame) { frames <- f })
	t.Cleanup(r.Close)

	v := viewport.New(viewport.Julia)
	gen := r.Submit(v, 32, 24)
	select {
	case f := <-frames:
		if f.Generation != gen {
			t.Fatalf("generation = %d, want %d", f.Generation, gen)
		}
		if f.Viewport != v {
			t.Fatalf("viewport = %+v", f.Viewport)
		}
		if !bytes.Equal(f.Image.Pix, escape.Render(v, 32, 24).Pix) {
			t.Fatalf("frame pixels differ from a direct render")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no frame delivered")
	}
}

func TestRendererEndsOnNewestView(t *testing.T) {
	frames := make(chan Frame, 16)
	r := NewRenderer(Options{}, func(f Frame) { frames <- f })
	t.Cleanup(r.Close)

	var last uint64
	for i := 0; i < 5; i++ {
		v := viewport.New(viewport.Mandelbrot)
		v.Zoom = float64(i + 1)
		last = r.Submit(v, 16, 16)
	}
	if r.Latest() != last {
		t.Fatalf("Latest = %d, want %d", r.Latest(), last)
	}
	deadline := time.After(5 * time.Second)
	var prev uint64
	for {
		select {
		case f := <-frames:
			if f.Generation <= prev {
				t.Fatalf("generation went from %d to %d", prev, f.Generation)
			}
			prev = f.Generation
			if f.Generation == last {
				if f.Viewport.Zoom != 5 {
					t.Fatalf("final zoom = %v", f.Viewport.Zoom)
				}
				return
			}
		case <-deadline:
			t.Fatalf("newest generation %d never delivered (last seen %d)", last, prev)
		}
	}
}
