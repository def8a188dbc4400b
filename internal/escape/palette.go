package escape

import (
	"image/color"
	"math"

	"github.com/example/fractalexplorer/internal/viewport"
)

// Shader maps an escape count below maxIter to a colour.
type Shader func(iter, maxIter int) color.RGBA

// Palette returns the gradient used for the variant.
func Palette(v viewport.Variant) Shader {
	if v == viewport.Julia {
		return JuliaColor
	}
	return MandelbrotColor
}

// MandelbrotColor is a five band gradient, black through red, yellow, green
// and cyan to white, over t = (iter/max)^0.5.
func MandelbrotColor(iter, maxIter int) color.RGBA {
	t := math.Pow(float64(iter)/float64(maxIter), 0.5)
	band := func(lo float64) uint8 { return channel((t - lo) * 5 * 255) }
	switch {
	case t < 0.2:
		return color.RGBA{band(0), 0, 0, 255}
	case t < 0.4:
		return color.RGBA{255, band(0.2), 0, 255}
	case t < 0.6:
		return color.RGBA{255 - band(0.4), 255, 0, 255}
	case t < 0.8:
		return color.RGBA{0, 255, band(0.6), 255}
	default:
		return color.RGBA{band(0.8), 255, 255, 255}
	}
}

// JuliaColor walks a six sector rainbow, red through orange, yellow, green,
// cyan and blue to magenta, over t = (iter/max)^0.7.
func JuliaColor(iter, maxIter int) color.RGBA {
	t := math.Pow(float64(iter)/float64(maxIter), 0.7)
	hue := t * 6
	f := hue - math.Floor(hue)
	switch int(hue) {
	case 0:
		return color.RGBA{255, channel(f * 165), 0, 255}
	case 1:
		return color.RGBA{255, channel(165 + f*90), 0, 255}
	case 2:
		return color.RGBA{channel(255 * (1 - f)), 255, 0, 255}
	case 3:
		return color.RGBA{0, 255, channel(f * 255), 255}
	case 4:
		return color.RGBA{0, channel(255 * (1 - f)), 255, 255}
	default:
		return color.RGBA{channel(f * 255), 0, 255, 255}
	}
}

// channel truncates toward zero and saturates to the uint8 range.
func channel(f float64) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
