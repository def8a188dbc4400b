package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func whiteCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func TestDropShadowDarkensOffsetArea(t *testing.T) {
	img := whiteCanvas(40, 40)
	rect := image.Rect(10, 10, 20, 20)
	opts := ShadowOptions{Radius: 2, Offset: image.Pt(4, 4), Opacity: 0.5}
	DropShadow(img, rect, opts)

	if got := img.RGBAAt(18, 18); got.R >= 255 {
		t.Fatalf("expected shadow under the card, got %+v", got)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("shadow leaked outside its bounds: %+v", got)
	}
	if !ShadowBounds(rect, opts).Eq(image.Rect(12, 12, 26, 26)) {
		t.Fatalf("ShadowBounds = %v", ShadowBounds(rect, opts))
	}
}

func TestDropShadowNoopWhenOpacityZero(t *testing.T) {
	img := whiteCanvas(8, 8)
	DropShadow(img, image.Rect(1, 1, 6, 6), ShadowOptions{Radius: 3, Opacity: 0})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.RGBAAt(x, y).R != 255 {
				t.Fatalf("pixel (%d,%d) changed", x, y)
			}
		}
	}
}

func TestBlurGraySpreadsAlpha(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 5, 5))
	src.SetGray(2, 2, color.Gray{Y: 255})
	out := blurGray(src, 1)
	if out.GrayAt(2, 2).Y == 0 || out.GrayAt(3, 2).Y == 0 || out.GrayAt(3, 3).Y == 0 {
		t.Fatalf("blur did not spread: %v", out.Pix)
	}
	if out.GrayAt(0, 0).Y != 0 {
		t.Fatalf("blur reached too far: %d", out.GrayAt(0, 0).Y)
	}
	same := blurGray(src, 0)
	if same.GrayAt(2, 2).Y != 255 || same.GrayAt(3, 2).Y != 0 {
		t.Fatal("zero radius should copy")
	}
}
