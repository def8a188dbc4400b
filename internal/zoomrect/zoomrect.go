// Package zoomrect turns a dragged screen rectangle into a zoomed viewport.
package zoomrect

import (
	"math"

	"github.com/example/fractalexplorer/internal/viewport"
)

// MinSelection is the smallest side, in pixels, of a selection that zooms.
const MinSelection = 10.0

// Surface is where the rendered buffer is displayed, in pointer coordinates.
type Surface struct {
	Min           viewport.Point
	Width, Height float64
}

// Contains reports whether p lies on the surface.
func (s Surface) Contains(p viewport.Point) bool {
	return p.X >= s.Min.X && p.X < s.Min.X+s.Width &&
		p.Y >= s.Min.Y && p.Y < s.Min.Y+s.Height
}

// Relative returns p as fractions of the surface size, clamped to [0, 1].
// ok is false for a surface without area.
func (s Surface) Relative(p viewport.Point) (rx, ry float64, ok bool) {
	if !(s.Width > 0) || !(s.Height > 0) {
		return 0, 0, false
	}
	rx = clamp01((p.X - s.Min.X) / s.Width)
	ry = clamp01((p.Y - s.Min.Y) / s.Height)
	return rx, ry, true
}

// Valid reports whether a drag from start to end is large enough to zoom.
func Valid(start, end viewport.Point) bool {
	return math.Abs(end.X-start.X) >= MinSelection && math.Abs(end.Y-start.Y) >= MinSelection
}

// Convert returns v zoomed onto the selection from start to end. The current
// bounds are taken for a width x height buffer. ok is false, and v is returned
// unchanged, when the selection is too small, would not zoom in, or would
// produce a non-finite view.
func Convert(start, end viewport.Point, surface Surface, v viewport.Viewport, width, height int) (viewport.Viewport, bool) {
	if !Valid(start, end) {
		return v, false
	}
	minP := viewport.Point{X: math.Min(start.X, end.X), Y: math.Min(start.Y, end.Y)}
	maxP := viewport.Point{X: math.Max(start.X, end.X), Y: math.Max(start.Y, end.Y)}

	rx0, ry0, ok := surface.Relative(minP)
	if !ok {
		return v, false
	}
	rx1, ry1, _ := surface.Relative(maxP)

	b := v.Bounds(width, height)
	tl := b.At(rx0, ry0)
	br := b.At(rx1, ry1)

	selW := br.X - tl.X
	selH := br.Y - tl.Y
	if !(selW > 0) || !(selH > 0) {
		return v, false
	}

	factor := math.Min(b.Width()/selW, b.Height()/selH)
	if !(factor > 1) || math.IsInf(factor, 0) {
		return v, false
	}

	next := v
	next.Center = viewport.Point{X: (tl.X + br.X) / 2, Y: (tl.Y + br.Y) / 2}
	next.ZoomBy(factor)
	if next.Zoom == v.Zoom || !next.Valid() {
		return v, false
	}
	return next, true
}

func clamp01(f float64) float64 {
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
