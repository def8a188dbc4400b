package display

import (
	"errors"
	"image"
	"testing"
)

var layout = []MonitorInfo{
	{Index: 0, Name: "HDMI-1", Rect: image.Rect(0, 0, 1920, 1080)},
	{Index: 1, Name: "eDP-1", Rect: image.Rect(1920, 0, 3200, 800), Primary: true},
}

func TestFind(t *testing.T) {
	cases := map[string]string{
		"":        "HDMI-1",
		"primary": "eDP-1",
		"#1":      "eDP-1",
		"0":       "HDMI-1",
		"edp":     "eDP-1",
	}
	for sel, want := range cases {
		got, err := Find(layout, sel)
		if err != nil {
			t.Fatalf("Find(%q): %v", sel, err)
		}
		if got.Name != want {
			t.Errorf("Find(%q) = %s, want %s", sel, got.Name, want)
		}
	}
	if _, err := Find(layout, "5"); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := Find(layout, "dp-9"); err == nil {
		t.Error("expected not found error")
	}
	if _, err := Find(nil, ""); !errors.Is(err, ErrNoMonitors) {
		t.Errorf("expected ErrNoMonitors, got %v", err)
	}
}

func TestFitSize(t *testing.T) {
	area := image.Rect(0, 0, 1000, 1000)
	if w, h := FitSize(area, 800, 600, 0); w != 800 || h != 600 {
		t.Errorf("fitting size changed: %dx%d", w, h)
	}
	w, h := FitSize(area, 1800, 900, 0)
	if w != 900 || h != 450 {
		t.Errorf("FitSize(1800x900) = %dx%d, want 900x450", w, h)
	}
	if w, h := FitSize(image.Rectangle{}, 10, 20, 0); w != 10 || h != 20 {
		t.Errorf("empty area changed size: %dx%d", w, h)
	}
	if w, h := FitSize(area, 1200, 600, 300); w != 600 || h != 300 {
		t.Errorf("FitSize with panel = %dx%d, want 600x300", w, h)
	}
}
