package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/example/fractalexplorer/internal/theme"
	"github.com/example/fractalexplorer/internal/viewport"
)

func TestDrawRectThickness(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{255, 0, 0, 255}
	DrawRect(img, image.Rect(2, 2, 12, 12), red, 2)
	for _, p := range []image.Point{{2, 2}, {3, 3}, {11, 11}, {10, 5}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Errorf("expected stroke at %v", p)
		}
	}
	if img.RGBAAt(6, 6).A != 0 {
		t.Error("interior should stay empty")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLine(img, 1, 1, 8, 5, color.White, 1)
	if img.RGBAAt(1, 1).A == 0 || img.RGBAAt(8, 5).A == 0 {
		t.Fatal("line endpoints not drawn")
	}
}

func TestSelectionColourFollowsValidity(t *testing.T) {
	th := theme.Default()
	small := Selection{Start: viewport.Point{X: 20, Y: 20}, End: viewport.Point{X: 25, Y: 60}}
	big := Selection{Start: viewport.Point{X: 60, Y: 50}, End: viewport.Point{X: 20, Y: 20}}
	if small.Valid() || !big.Valid() {
		t.Fatal("validity mismatch")
	}
	if got := big.Label(); got != "40x30 px" {
		t.Fatalf("label = %q", got)
	}

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	DrawSelection(img, big, th)
	if got := img.RGBAAt(20, 30); got != th.SelectionValid {
		t.Fatalf("stroke = %+v, want %+v", got, th.SelectionValid)
	}
	img = image.NewRGBA(image.Rect(0, 0, 100, 100))
	DrawSelection(img, small, th)
	if got := img.RGBAAt(20, 40); got != th.SelectionInvalid {
		t.Fatalf("stroke = %+v, want %+v", got, th.SelectionInvalid)
	}
}

func TestSelectionFillIsTranslucent(t *testing.T) {
	th := theme.Default()
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	DrawSelection(img, Selection{End: viewport.Point{X: 150, Y: 150}}, th)
	got := img.RGBAAt(120, 120)
	if got.G == 0 || got.G > 40 {
		t.Fatalf("fill at interior = %+v", got)
	}
}

func TestSliderValueAt(t *testing.T) {
	w := Widget{Kind: SliderWidget, Rect: image.Rect(10, 0, 211, 10), Min: -2, Max: 2, Step: 0.001}
	if v := w.ValueAt(0); v != -2 {
		t.Errorf("left clamp = %v", v)
	}
	if v := w.ValueAt(500); v != 2 {
		t.Errorf("right clamp = %v", v)
	}
	if v := w.ValueAt(110); v > 1e-9 || v < -1e-9 {
		t.Errorf("middle = %v", v)
	}
	w.Value = 0
	if x := w.KnobX(); x != 110 {
		t.Errorf("KnobX = %d", x)
	}
}

func TestPanelLayoutPerVariant(t *testing.T) {
	mandel := Panel{Status: viewport.New(viewport.Mandelbrot).Status(), Height: 800}.Layout()
	if _, ok := mandel.Widget(ActionJuliaRe); ok {
		t.Error("sliders should be hidden outside Julia")
	}
	btn, ok := mandel.Widget(VariantAction(viewport.Mandelbrot))
	if !ok || !btn.Active {
		t.Fatalf("mandelbrot button = %+v, %v", btn, ok)
	}
	if _, ok := mandel.Widget(ActionReset); !ok {
		t.Error("reset button missing")
	}

	julia := Panel{Status: viewport.New(viewport.Julia).Status(), Height: 800}.Layout()
	for _, action := range []string{ActionJuliaRe, ActionJuliaIm, PresetAction(1), PresetAction(4)} {
		w, ok := julia.Widget(action)
		if !ok {
			t.Fatalf("%s missing", action)
		}
		hit, ok := julia.HitTest(w.Rect.Min)
		if !ok || hit.Action != action {
			t.Errorf("HitTest(%v) = %q", w.Rect.Min, hit.Action)
		}
		if w.Rect.Max.X > PanelWidth {
			t.Errorf("%s overflows the panel: %v", action, w.Rect)
		}
	}
	dragon, _ := julia.Widget(PresetAction(1))
	if !dragon.Active {
		t.Error("dragon preset should be highlighted for the default constant")
	}
	if _, ok := julia.HitTest(image.Pt(PanelWidth+5, 5)); ok {
		t.Error("hit outside the panel")
	}
}

func TestDrawScene(t *testing.T) {
	th := theme.Default()
	frame := image.NewRGBA(image.Rect(0, 0, 40, 30))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.RGBA{0, 0, 255, 255}), image.Point{}, draw.Src)

	surface := image.Rect(PanelWidth, 0, PanelWidth+40, 30)
	p := &Panel{Status: viewport.New(viewport.Koch).Status(), Height: 300}
	out := Compose(PanelWidth+40, 300, Scene{Frame: frame, Surface: surface, Panel: p}, th)
	if got := out.RGBAAt(PanelWidth+20, 15); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("frame pixel = %+v", got)
	}
	if got := out.RGBAAt(PanelWidth+20, 200); got != th.Background {
		t.Fatalf("background pixel = %+v", got)
	}
	if got := out.RGBAAt(5, 290); got != th.PanelBackground {
		t.Fatalf("panel pixel = %+v", got)
	}

	hinted := Compose(300, 200, Scene{Frame: frame, Surface: image.Rect(0, 0, 300, 200), Hint: true}, th)
	r := HintRect(image.Point{})
	if hinted.RGBAAt(r.Max.X-2, r.Min.Y+2) == th.Background {
		t.Error("hint card not drawn")
	}
}

func TestMessageRectCentred(t *testing.T) {
	surface := image.Rect(100, 0, 500, 300)
	r := MessageRect(surface, "Saved")
	if r.Min.X-surface.Min.X != surface.Max.X-r.Max.X && r.Min.X-surface.Min.X+1 != surface.Max.X-r.Max.X {
		t.Fatalf("toast not centred: %v", r)
	}
	if r.Max.Y >= surface.Max.Y {
		t.Fatalf("toast outside surface: %v", r)
	}
}
