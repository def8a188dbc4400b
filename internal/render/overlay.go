package render

import (
	"fmt"
	"image"
	"math"

	"github.com/example/fractalexplorer/internal/theme"
	"github.com/example/fractalexplorer/internal/viewport"
	"github.com/example/fractalexplorer/internal/zoomrect"
)

const (
	selectionFillAlpha = 30
	selectionStroke    = 2
	selectionCorner    = 4
	selectionLabelLift = 15
)

// HintLines is the text of the card shown while the panel is hidden.
var HintLines = []string{"Press Tab for controls", "Shift+drag to zoom to area"}

// HintOffset positions the hint card relative to the surface origin.
var HintOffset = image.Pt(10, 10)

// Selection is a zoom rectangle being dragged, in window coordinates.
type Selection struct {
	Start, End viewport.Point
}

// Valid reports whether releasing now would zoom.
func (s Selection) Valid() bool {
	return zoomrect.Valid(s.Start, s.End)
}

// Rect returns the selection as integer pixels.
func (s Selection) Rect() image.Rectangle {
	return image.Rect(
		int(math.Floor(s.Start.X)), int(math.Floor(s.Start.Y)),
		int(math.Floor(s.End.X)), int(math.Floor(s.End.Y)),
	).Canon()
}

// Label is the size readout drawn above the selection centre.
func (s Selection) Label() string {
	return fmt.Sprintf("%dx%d px", int(math.Abs(s.End.X-s.Start.X)), int(math.Abs(s.End.Y-s.Start.Y)))
}

// DrawSelection draws the zoom rectangle with a translucent fill, a stroke,
// corner dots and a size label. Too-small selections use the invalid colour.
func DrawSelection(dst *image.RGBA, sel Selection, th *theme.Theme) {
	stroke := th.SelectionInvalid
	if sel.Valid() {
		stroke = th.SelectionValid
	}
	r := sel.Rect()
	fill := straight(stroke)
	fill.A = selectionFillAlpha
	FillRect(dst, r, fill)
	DrawRect(dst, r, stroke, selectionStroke)
	for _, p := range []image.Point{r.Min, {r.Max.X, r.Min.Y}, {r.Min.X, r.Max.Y}, r.Max} {
		DrawFilledCircle(dst, p.X, p.Y, selectionCorner, stroke)
	}

	label := sel.Label()
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y+r.Max.Y)/2 - selectionLabelLift
	DrawText(dst, cx-MeasureText(label)/2, cy-LineHeight/2, label, stroke)
}

// HintRect returns the card rectangle for a surface whose top-left is origin.
func HintRect(origin image.Point) image.Rectangle {
	w := 0
	for _, line := range HintLines {
		w = max(w, MeasureText(line))
	}
	at := origin.Add(HintOffset)
	return image.Rect(at.X, at.Y, at.X+w+16, at.Y+len(HintLines)*LineHeight+12)
}

// DrawHint draws the shadowed hint card at the surface origin.
func DrawHint(dst *image.RGBA, origin image.Point, th *theme.Theme) {
	r := HintRect(origin)
	DropShadow(dst, r, DefaultShadowOptions())
	FillRect(dst, r, straight(th.HintBackground))
	for i, line := range HintLines {
		DrawText(dst, r.Min.X+8, r.Min.Y+6+i*LineHeight, line, th.HintText)
	}
}

// MessageRect returns the toast rectangle centred at the bottom of surface.
func MessageRect(surface image.Rectangle, msg string) image.Rectangle {
	w := MeasureText(msg) + 24
	h := LineHeight + 12
	x := surface.Min.X + (surface.Dx()-w)/2
	y := surface.Max.Y - h - 20
	return image.Rect(x, y, x+w, y+h)
}

// DrawMessage draws a transient status toast.
func DrawMessage(dst *image.RGBA, surface image.Rectangle, msg string, th *theme.Theme) {
	if msg == "" {
		return
	}
	r := MessageRect(surface, msg)
	FillRect(dst, r, straight(th.MessageBackground))
	DrawRect(dst, r, th.MessageText, 1)
	DrawText(dst, r.Min.X+12, r.Min.Y+6, msg, th.MessageText)
}
