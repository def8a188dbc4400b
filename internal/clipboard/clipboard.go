// Package clipboard publishes rendered frames and coordinate text to the
// system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// ErrNoDisplay is returned when no graphical session is available.
var ErrNoDisplay = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")

// ErrUnsupported is returned on platforms without a clipboard backend.
var ErrUnsupported = errors.New("clipboard is not supported on this platform")

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func encodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("clipboard: nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("clipboard: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
