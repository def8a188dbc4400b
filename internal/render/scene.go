package render

import (
	"image"
	"image/draw"

	"github.com/example/fractalexplorer/internal/theme"
)

// Scene is everything visible in one window frame.
type Scene struct {
	// Frame is the latest rendered buffer. It may be nil before the first
	// render completes.
	Frame *image.RGBA
	// Surface is where Frame is drawn, in window coordinates.
	Surface image.Rectangle
	// Panel is nil when the side panel is hidden.
	Panel     *Panel
	Selection *Selection
	Hint      bool
	Message   string
}

// DrawScene composites s onto dst.
func DrawScene(dst *image.RGBA, s Scene, th *theme.Theme) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)
	if s.Frame != nil {
		draw.Draw(dst, s.Surface, s.Frame, s.Frame.Bounds().Min, draw.Src)
	}
	if s.Selection != nil {
		DrawSelection(dst, *s.Selection, th)
	}
	if s.Panel != nil {
		DrawPanel(dst, *s.Panel, th)
	} else if s.Hint {
		DrawHint(dst, s.Surface.Min, th)
	}
	DrawMessage(dst, s.Surface, s.Message, th)
}

// Compose draws s into a new image of the given size.
func Compose(width, height int, s Scene, th *theme.Theme) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	DrawScene(dst, s, th)
	return dst
}
