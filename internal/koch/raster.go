package koch

import (
	"image"
	"image/color"
	"math"

	"github.com/example/fractalexplorer/internal/viewport"
)

// screenLimit keeps far off-screen coordinates inside the int range.
const screenLimit = 1 << 30

// toScreen maps a plane point to pixel coordinates of img, truncating toward
// zero.
func toScreen(p viewport.Point, b viewport.Bounds, width, height int) image.Point {
	x := (p.X - b.Left) / b.Width() * float64(width)
	y := (p.Y - b.Top) / b.Height() * float64(height)
	return image.Pt(truncate(x), truncate(y))
}

func truncate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > screenLimit:
		return screenLimit
	case f < -screenLimit:
		return -screenLimit
	}
	return int(f)
}

// Rasterize draws seg into img as a 3 pixel wide line. The plane to pixel
// mapping uses b and the dimensions of img.
func Rasterize(img *image.RGBA, seg Segment, b viewport.Bounds, col color.RGBA) {
	r := img.Bounds()
	s := toScreen(seg.Start, b, r.Dx(), r.Dy())
	e := toScreen(seg.End, b, r.Dx(), r.Dy())

	box := image.Rectangle{Min: s, Max: e}.Canon().Inset(-1)
	box.Max = box.Max.Add(image.Pt(1, 1))
	if !box.Overlaps(image.Rect(0, 0, r.Dx(), r.Dy())) {
		return
	}

	dx := e.X - s.X
	dy := e.Y - s.Y
	steps := max(abs(dx), abs(dy), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(float64(s.X) + t*float64(dx))
		y := int(float64(s.Y) + t*float64(dy))
		stamp(img, r.Min.X+x, r.Min.Y+y, col)
	}
}

func stamp(img *image.RGBA, x, y int, col color.RGBA) {
	r := img.Bounds()
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			if p := image.Pt(x+ox, y+oy); p.In(r) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
