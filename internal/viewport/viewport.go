package viewport

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Variant selects which fractal family is rendered.
type Variant int

const (
	Mandelbrot Variant = iota
	Julia
	Koch
)

// Variants lists every variant in display order.
var Variants = []Variant{Mandelbrot, Julia, Koch}

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown fractal variant")

// String returns the short command line name of the variant.
func (v Variant) String() string {
	switch v {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	case Koch:
		return "koch"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Label returns the human readable name shown in the UI.
func (v Variant) Label() string {
	switch v {
	case Mandelbrot:
		return "Mandelbrot Set"
	case Julia:
		return "Julia Set"
	case Koch:
		return "Koch Curve"
	}
	return v.String()
}

// ParseVariant converts a short name into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mandelbrot", "m":
		return Mandelbrot, nil
	case "julia", "j":
		return Julia, nil
	case "koch", "k":
		return Koch, nil
	}
	return Mandelbrot, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Point is a position on the complex plane, X real and Y imaginary.
type Point struct {
	X, Y float64
}

// Bounds is the rectangle of the plane visible in a pixel buffer.
// Top is the plane y value of pixel row 0.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// At interpolates linearly inside the bounds. rx and ry are fractions of the
// width and height, so At(0, 0) is the top-left corner.
func (b Bounds) At(rx, ry float64) Point {
	return Point{
		X: b.Left + rx*(b.Right-b.Left),
		Y: b.Top + ry*(b.Bottom-b.Top),
	}
}

const (
	// BaseExtent is the vertical plane extent visible at zoom 1.
	BaseExtent = 3.0
	// JuliaLimit bounds each component of the Julia constant.
	JuliaLimit = 2.0
)

// Viewport is the view window onto the plane. Zoom is always positive.
type Viewport struct {
	Center  Point
	Zoom    float64
	Variant Variant
	JuliaC  Point
}

// New returns the canonical view for the variant with the Dragon Julia constant.
func New(variant Variant) Viewport {
	v := Viewport{JuliaC: Presets[0].C}
	v.Reset(variant)
	return v
}

// Bounds derives the visible plane rectangle for a width x height buffer.
func (v Viewport) Bounds(width, height int) Bounds {
	hr := BaseExtent / v.Zoom
	aspect := 1.0
	if width > 0 && height > 0 {
		aspect = float64(width) / float64(height)
	}
	wr := hr * aspect
	return Bounds{
		Left:   v.Center.X - wr/2,
		Right:  v.Center.X + wr/2,
		Top:    v.Center.Y - hr/2,
		Bottom: v.Center.Y + hr/2,
	}
}

// Reset switches to variant and restores its canonical center and zoom.
// The Julia constant is left alone.
func (v *Viewport) Reset(variant Variant) {
	v.Variant = variant
	switch variant {
	case Julia:
		v.Center = Point{0, 0}
		v.Zoom = 1.5
	case Koch:
		v.Center = Point{0, -0.2}
		v.Zoom = 0.8
	default:
		v.Variant = Mandelbrot
		v.Center = Point{-0.5, 0}
		v.Zoom = 1.0
	}
}

// Pan moves the view opposite to a pixel-space drag of (dx, dy).
func (v *Viewport) Pan(dx, dy float64, width, height int) {
	b := v.Bounds(width, height)
	if width > 0 {
		v.Center.X -= dx * b.Width() / float64(width)
	}
	if height > 0 {
		v.Center.Y -= dy * b.Height() / float64(height)
	}
}

// ZoomBy multiplies the zoom by factor. Factors or results that would leave
// zoom non-positive or non-finite are ignored.
func (v *Viewport) ZoomBy(factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	z := v.Zoom * factor
	if !(z > 0) || math.IsInf(z, 0) {
		return
	}
	v.Zoom = z
}

// Direction is a discrete keyboard pan direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// PanStep is the plane distance of one keyboard pan at zoom 1.
const PanStep = 0.1

// Step translates the center by PanStep/zoom in the given direction.
func (v *Viewport) Step(d Direction) {
	step := PanStep / v.Zoom
	switch d {
	case Left:
		v.Center.X -= step
	case Right:
		v.Center.X += step
	case Up:
		v.Center.Y -= step
	case Down:
		v.Center.Y += step
	}
}

// SetJuliaC assigns the Julia constant, clamping each component to
// [-JuliaLimit, JuliaLimit]. NaN components keep their previous value.
func (v *Viewport) SetJuliaC(re, im float64) {
	if !math.IsNaN(re) {
		v.JuliaC.X = clamp(re, -JuliaLimit, JuliaLimit)
	}
	if !math.IsNaN(im) {
		v.JuliaC.Y = clamp(im, -JuliaLimit, JuliaLimit)
	}
}

// Valid reports whether the viewport can be rendered.
func (v Viewport) Valid() bool {
	return v.Zoom > 0 && !math.IsInf(v.Zoom, 0) &&
		finite(v.Center.X) && finite(v.Center.Y)
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
