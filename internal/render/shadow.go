package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow behind overlay cards.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions is the shadow used for the hint card.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(3, 3),
		Opacity: 0.45,
	}
}

// ShadowBounds returns the area DropShadow may touch for rect.
func ShadowBounds(rect image.Rectangle, opts ShadowOptions) image.Rectangle {
	return rect.Canon().Inset(-max(opts.Radius, 0)).Add(opts.Offset)
}

// DropShadow darkens dst with a box-blurred silhouette of rect, shifted by
// opts.Offset. The card itself is not drawn.
func DropShadow(dst *image.RGBA, rect image.Rectangle, opts ShadowOptions) {
	rect = rect.Canon()
	if dst == nil || rect.Empty() || opts.Opacity <= 0 {
		return
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)

	padded := rect.Inset(-radius)
	mask := image.NewGray(padded.Sub(padded.Min))
	draw.Draw(mask, rect.Sub(padded.Min), image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
	blurred := blurGray(mask, radius)

	alpha := uint8(opacity*255 + 0.5)
	target := padded.Add(opts.Offset)
	draw.DrawMask(dst, target, image.NewUniform(color.RGBA{A: alpha}), image.Point{}, blurred, image.Point{}, draw.Over)
}

// blurGray applies a separable box blur with the given radius.
func blurGray(src *image.Gray, radius int) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(b)
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := b.Dx(), b.Dy()
	tmp := image.NewGray(b)

	boxPass(w, h, radius, func(x, y int) uint8 { return src.Pix[y*src.Stride+x] },
		func(x, y int, v uint8) { tmp.Pix[y*tmp.Stride+x] = v })
	// Transposed pass reuses the same row routine for columns.
	boxPass(h, w, radius, func(y, x int) uint8 { return tmp.Pix[y*tmp.Stride+x] },
		func(y, x int, v uint8) { out.Pix[y*out.Stride+x] = v })
	return out
}

// boxPass averages each row of a w×h grid over a window of ±radius.
func boxPass(w, h, radius int, get func(x, y int) uint8, set func(x, y int, v uint8)) {
	prefix := make([]int, w+1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(get(x, y))
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			set(x, y, uint8((prefix[x1+1]-prefix[x0])/(x1-x0+1)))
		}
	}
}
