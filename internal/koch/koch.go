// Package koch generates and rasterises the Koch curve.
package koch

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/fractalexplorer/internal/viewport"
)

// MaxDepth caps the subdivision depth.
const MaxDepth = 5

// BaseLength is the plane length of the base segment at zoom 1.
const BaseLength = 2.0

var (
	// CurveColor is the stroke colour of the curve.
	CurveColor = color.RGBA{0, 255, 0, 255}
	background = color.RGBA{0, 0, 0, 255}
)

// Segment is a straight piece of the curve in plane coordinates.
type Segment struct {
	Start, End viewport.Point
}

// Length returns the plane length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// Depth returns the subdivision depth for a zoom level, clamped to
// [0, MaxDepth].
func Depth(zoom float64) int {
	d := math.Floor(math.Log2(zoom) + 1)
	if !(d > 0) {
		return 0
	}
	if d > MaxDepth {
		return MaxDepth
	}
	return int(d)
}

// Base returns the horizontal starting segment centred on the viewport.
func Base(v viewport.Viewport) Segment {
	half := BaseLength / v.Zoom / 2
	return Segment{
		Start: viewport.Point{X: v.Center.X - half, Y: v.Center.Y},
		End:   viewport.Point{X: v.Center.X + half, Y: v.Center.Y},
	}
}

// Generate subdivides start-end depth times, yielding 4^depth segments.
// Depth 0 yields the input unchanged. A zero-length segment with depth > 0
// yields nothing, so the 4^depth count holds only for start != end; Base
// never produces a zero-length segment at a finite zoom.
func Generate(start, end viewport.Point, depth int) []Segment {
	if depth < 0 {
		depth = 0
	}
	return generate(make([]Segment, 0, 1<<(2*depth)), start, end, depth)
}

func generate(dst []Segment, p1, p5 viewport.Point, depth int) []Segment {
	if depth == 0 {
		return append(dst, Segment{Start: p1, End: p5})
	}
	dx := p5.X - p1.X
	dy := p5.Y - p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return dst
	}

	p2 := viewport.Point{X: p1.X + dx/3, Y: p1.Y + dy/3}
	p4 := viewport.Point{X: p1.X + 2*dx/3, Y: p1.Y + 2*dy/3}
	mid := viewport.Point{X: (p2.X + p4.X) / 2, Y: (p2.Y + p4.Y) / 2}
	height := (length / 3) * math.Sqrt(3) / 2
	p3 := viewport.Point{
		X: mid.X + (-dy/length)*height,
		Y: mid.Y + (dx/length)*height,
	}

	dst = generate(dst, p1, p2, depth-1)
	dst = generate(dst, p2, p3, depth-1)
	dst = generate(dst, p3, p4, depth-1)
	return generate(dst, p4, p5, depth-1)
}

// Segments returns the curve for the viewport at its zoom-derived depth.
func Segments(v viewport.Viewport) []Segment {
	base := Base(v)
	return Generate(base.Start, base.End, Depth(v.Zoom))
}

// Render draws the curve for v into a fresh black width x height buffer.
func Render(v viewport.Viewport, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	b := v.Bounds(width, height)
	for _, seg := range Segments(v) {
		Rasterize(img, seg, b, CurveColor)
	}
	return img
}
