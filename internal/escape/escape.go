// Package escape renders the escape-time fractals (Mandelbrot and Julia).
// The Koch curve is not an escape-time fractal and is drawn by package koch.
package escape

import (
	"image"
	"image/color"
	"math"

	"github.com/example/fractalexplorer/internal/viewport"
)

const (
	// BaseIterations is the iteration budget at zoom <= 1.
	BaseIterations = 255
	// IterationCap bounds the budget at any zoom.
	IterationCap = 1000
	// escapeRadiusSq is |z|^2 at which a point is considered escaped.
	escapeRadiusSq = 4.0
)

var black = color.RGBA{A: 255}

// MaxIterations returns the iteration budget for a zoom level. Deeper zooms
// get 100 extra iterations per decade, up to IterationCap.
func MaxIterations(zoom float64) int {
	boost := math.Log10(zoom) * 100
	if !(boost > 0) {
		boost = 0
	}
	if boost > IterationCap {
		return IterationCap
	}
	n := int(BaseIterations + boost)
	if n > IterationCap {
		return IterationCap
	}
	return n
}

// Seed returns the starting z and the constant c for plane point p.
// Mandelbrot iterates from zero with c = p; Julia starts at p with the
// viewport's constant.
func Seed(v viewport.Viewport, p viewport.Point) (z, c viewport.Point) {
	if v.Variant == viewport.Julia {
		return p, v.JuliaC
	}
	return viewport.Point{}, p
}

// Iterate applies z <- z^2 + c until |z|^2 >= 4 or maxIter steps have run,
// returning the number of steps taken.
func Iterate(z, c viewport.Point, maxIter int) int {
	zx, zy := z.X, z.Y
	iter := 0
	for zx*zx+zy*zy < escapeRadiusSq && iter < maxIter {
		zx, zy = zx*zx-zy*zy+c.X, 2*zx*zy+c.Y
		iter++
	}
	return iter
}

// IterationsAt returns the escape count for pixel (x, y) of a width x height
// buffer.
func IterationsAt(v viewport.Viewport, x, y, width, height int) int {
	b := v.Bounds(width, height)
	p := b.At(float64(x)/float64(width), float64(y)/float64(height))
	z, c := Seed(v, p)
	return Iterate(z, c, MaxIterations(v.Zoom))
}

// RenderTile renders the tile rectangle of a width x height buffer. The
// returned image uses the tile's global coordinates.
func RenderTile(v viewport.Viewport, tile image.Rectangle, width, height int) *image.RGBA {
	img := image.NewRGBA(tile)
	b := v.Bounds(width, height)
	maxIter := MaxIterations(v.Zoom)
	shade := Palette(v.Variant)

	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		ry := float64(py) / float64(height)
		for px := tile.Min.X; px < tile.Max.X; px++ {
			p := b.At(float64(px)/float64(width), ry)
			z, c := Seed(v, p)
			iter := Iterate(z, c, maxIter)
			if iter == maxIter {
				img.SetRGBA(px, py, black)
				continue
			}
			img.SetRGBA(px, py, shade(iter, maxIter))
		}
	}
	return img
}

// Render renders a full width x height buffer on the calling goroutine.
func Render(v viewport.Viewport, width, height int) *image.RGBA {
	return RenderTile(v, image.Rect(0, 0, width, height), width, height)
}
