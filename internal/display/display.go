// Package display reports the monitor layout so windows can be sized to fit.
package display

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ErrNoMonitors is returned when the display server reports no active outputs.
var ErrNoMonitors = errors.New("no monitors available")

// MonitorInfo describes an individual monitor in the display layout.
type MonitorInfo struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// FitMargin is the fraction of a monitor a fitted window may occupy.
const FitMargin = 0.9

// Find resolves a selector against monitors. The selector may be empty
// (first monitor), "primary", an index with optional '#' prefix, or a
// case-insensitive substring of the output name.
func Find(monitors []MonitorInfo, selector string) (MonitorInfo, error) {
	if len(monitors) == 0 {
		return MonitorInfo{}, ErrNoMonitors
	}
	sel := strings.ToLower(strings.TrimSpace(selector))
	switch sel {
	case "":
		return monitors[0], nil
	case "primary":
		for _, mon := range monitors {
			if mon.Primary {
				return mon, nil
			}
		}
		return monitors[0], nil
	}
	if idx, err := strconv.Atoi(strings.TrimPrefix(sel, "#")); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return MonitorInfo{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, mon := range monitors {
		if strings.Contains(strings.ToLower(mon.Name), sel) {
			return mon, nil
		}
	}
	return MonitorInfo{}, fmt.Errorf("monitor %q not found", selector)
}

// FitSize shrinks a w×h buffer, keeping its aspect ratio, until the buffer
// plus a panel column of the given width fits inside FitMargin of area.
// Sizes that already fit are returned unchanged.
func FitSize(area image.Rectangle, w, h, panel int) (int, int) {
	if w <= 0 || h <= 0 || area.Empty() {
		return w, h
	}
	maxW := float64(area.Dx())*FitMargin - float64(panel)
	maxH := float64(area.Dy()) * FitMargin
	if maxW < 1 {
		return w, h
	}
	scale := min(maxW/float64(w), maxH/float64(h))
	if scale >= 1 {
		return w, h
	}
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
}

// Primary returns the primary monitor of the current session.
func Primary() (MonitorInfo, error) {
	monitors, err := Monitors()
	if err != nil {
		return MonitorInfo{}, err
	}
	return Find(monitors, "primary")
}
