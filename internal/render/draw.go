// Package render draws the explorer chrome (side panel, zoom rectangle,
// hint card and message toast) over rendered fractal frames.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the vertical advance of one line of body text.
const LineHeight = 16

var (
	bodyFace    font.Face = basicfont.Face7x13
	headingFace font.Face
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	headingFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 18, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// straight reads a theme colour as non-premultiplied so translucent theme
// entries composite the way they read in a theme file.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r-1+thick%2; dx++ {
		for dy := -r; dy <= r-1+thick%2; dy++ {
			p := image.Pt(x+dx, y+dy)
			if p.In(img.Bounds()) {
				img.Set(p.X, p.Y, col)
			}
		}
	}
}

// DrawLine draws a Bresenham line between two points with the given
// thickness.
func DrawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	if thick < 1 {
		thick = 1
	}
	dx := int(math.Abs(float64(x1 - x0)))
	dy := int(math.Abs(float64(y1 - y0)))
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect outlines rect. The stroke grows inwards from rect's edges.
func DrawRect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	if thick < 1 {
		thick = 1
	}
	u := image.NewUniform(col)
	for i := 0; i < thick; i++ {
		r := rect.Inset(i)
		if r.Empty() {
			break
		}
		draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	}
}

// FillRect composites col over rect.
func FillRect(img *image.RGBA, rect image.Rectangle, col color.Color) {
	draw.Draw(img, rect.Canon(), image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawFilledCircle fills a disc of radius r centred at (cx, cy).
func DrawFilledCircle(img *image.RGBA, cx, cy, r int, col color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(img.Bounds()) {
				img.Set(p.X, p.Y, col)
			}
		}
	}
}

// MeasureText returns the pixel width of text in the body face.
func MeasureText(text string) int {
	return (&font.Drawer{Face: bodyFace}).MeasureString(text).Ceil()
}

// DrawText renders text in the body face with its top-left corner at (x, y).
func DrawText(img *image.RGBA, x, y int, text string, col color.Color) {
	drawString(img, bodyFace, x, y, text, col)
}

// DrawHeading renders text in the heading face with its top-left corner at
// (x, y).
func DrawHeading(img *image.RGBA, x, y int, text string, col color.Color) {
	drawString(img, headingFace, x, y, text, col)
}

func drawString(img *image.RGBA, face font.Face, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
