//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"image"
	"sync"
	"testing"
)

func TestWriteWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	initOnce = sync.Once{}
	initErr = nil
	t.Cleanup(func() { initOnce = sync.Once{}; initErr = nil })

	if err := WriteText("(-0.5, 0)"); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("WriteText: expected ErrNoDisplay, got %v", err)
	}
	if err := WriteImage(image.NewRGBA(image.Rect(0, 0, 2, 2))); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("WriteImage: expected ErrNoDisplay, got %v", err)
	}
}

func TestEncodePNGRejectsNil(t *testing.T) {
	if _, err := encodePNG(nil); err == nil {
		t.Fatal("expected error for nil image")
	}
	data, err := encodePNG(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err != nil || len(data) == 0 {
		t.Fatalf("encodePNG = %d bytes, %v", len(data), err)
	}
}
