package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/example/fractalexplorer/internal/theme"
	"github.com/example/fractalexplorer/internal/viewport"
)

// PanelWidth is the width of the side panel in pixels.
const PanelWidth = 250

const (
	panelPad     = 12
	buttonHeight = 24
	sliderHeight = 14
	gap          = 6
)

// Widget actions. Variant and preset buttons use VariantAction and
// PresetAction.
const (
	ActionReset   = "reset"
	ActionJuliaRe = "julia-re"
	ActionJuliaIm = "julia-im"
)

// JuliaSliderStep is the resolution of the Julia constant sliders.
const JuliaSliderStep = 0.001

// ControlsHelp is the controls list shown in the panel.
var ControlsHelp = []string{
	"Mouse wheel: Zoom",
	"Click & drag: Pan",
	"Shift + drag: Zoom to rectangle",
	"Tab: Toggle this panel",
	"Ctrl+S: Save  Ctrl+C: Copy",
}

// VariantAction names the button that switches to v.
func VariantAction(v viewport.Variant) string { return "variant-" + v.String() }

// PresetAction names the button for the i-th preset, counting from 1.
func PresetAction(i int) string { return fmt.Sprintf("preset-%d", i) }

// WidgetKind distinguishes clickable buttons from sliders.
type WidgetKind int

const (
	ButtonWidget WidgetKind = iota
	SliderWidget
)

// Widget is a laid out interactive element of the panel.
type Widget struct {
	Kind   WidgetKind
	Action string
	Label  string
	Rect   image.Rectangle
	// Active marks the selected variant button.
	Active bool
	// Slider range and current value.
	Value, Min, Max, Step float64
}

// ValueAt maps a pointer x coordinate onto the slider range, snapped to Step
// and clamped to [Min, Max].
func (w Widget) ValueAt(x int) float64 {
	span := w.Rect.Dx() - 1
	if span <= 0 {
		return w.Min
	}
	t := math.Max(0, math.Min(1, float64(x-w.Rect.Min.X)/float64(span)))
	v := w.Min + t*(w.Max-w.Min)
	if w.Step > 0 {
		v = w.Min + math.Round((v-w.Min)/w.Step)*w.Step
	}
	return math.Max(w.Min, math.Min(w.Max, v))
}

// KnobX returns the x coordinate of the slider knob for the current value.
func (w Widget) KnobX() int {
	if w.Max <= w.Min {
		return w.Rect.Min.X
	}
	t := math.Max(0, math.Min(1, (w.Value-w.Min)/(w.Max-w.Min)))
	return w.Rect.Min.X + int(math.Round(t*float64(w.Rect.Dx()-1)))
}

// Text is a static label placed by Layout.
type Text struct {
	Text    string
	At      image.Point
	Heading bool
}

// Layout is the positioned content of the panel.
type Layout struct {
	Widgets    []Widget
	Texts      []Text
	Separators []int
}

// HitTest returns the widget under p.
func (l Layout) HitTest(p image.Point) (Widget, bool) {
	for _, w := range l.Widgets {
		if p.In(w.Rect) {
			return w, true
		}
	}
	return Widget{}, false
}

// Widget looks a widget up by action.
func (l Layout) Widget(action string) (Widget, bool) {
	for _, w := range l.Widgets {
		if w.Action == action {
			return w, true
		}
	}
	return Widget{}, false
}

// Panel is the side panel state needed to lay it out and draw it.
type Panel struct {
	Status viewport.Status
	Height int
	// Hover and Pressed hold widget actions for highlighting.
	Hover   string
	Pressed string
}

// Rect is the area the panel covers.
func (p Panel) Rect() image.Rectangle {
	return image.Rect(0, 0, PanelWidth, p.Height)
}

// Layout positions every element of the panel from top to bottom.
func (p Panel) Layout() Layout {
	var l Layout
	x := panelPad
	inner := PanelWidth - 2*panelPad
	y := panelPad

	text := func(s string) {
		l.Texts = append(l.Texts, Text{Text: s, At: image.Pt(x, y)})
		y += LineHeight
	}
	separator := func() {
		y += gap
		l.Separators = append(l.Separators, y)
		y += gap + 1
	}
	button := func(action, label string, r image.Rectangle, active bool) {
		l.Widgets = append(l.Widgets, Widget{Kind: ButtonWidget, Action: action, Label: label, Rect: r, Active: active})
	}

	l.Texts = append(l.Texts, Text{Text: "Fractal Explorer", At: image.Pt(x, y), Heading: true})
	y += 26
	separator()

	text("Fractal Type:")
	for _, v := range viewport.Variants {
		button(VariantAction(v), v.Label(), image.Rect(x, y, x+inner, y+buttonHeight), v == p.Status.Variant)
		y += buttonHeight + 4
	}
	separator()

	if p.Status.Variant == viewport.Julia {
		text("Julia Set Parameters:")
		slider := func(action, label string, value float64) {
			text(fmt.Sprintf("%s: %.3f", label, value))
			l.Widgets = append(l.Widgets, Widget{
				Kind: SliderWidget, Action: action, Label: label,
				Rect:  image.Rect(x, y, x+inner, y+sliderHeight),
				Value: value, Min: -viewport.JuliaLimit, Max: viewport.JuliaLimit, Step: JuliaSliderStep,
			})
			y += sliderHeight + gap
		}
		slider(ActionJuliaRe, "c (real)", p.Status.JuliaC.X)
		slider(ActionJuliaIm, "c (imaginary)", p.Status.JuliaC.Y)
		separator()

		text("Presets:")
		half := (inner - gap) / 2
		for i, preset := range viewport.Presets {
			col := i % 2
			left := x + col*(half+gap)
			button(PresetAction(i+1), preset.Name, image.Rect(left, y, left+half, y+buttonHeight), preset.C == p.Status.JuliaC)
			if col == 1 || i == len(viewport.Presets)-1 {
				y += buttonHeight + 4
			}
		}
		separator()
	}

	text("Current View:")
	text(p.Status.ZoomText())
	text(p.Status.CenterText())
	separator()

	text("Controls:")
	for _, line := range ControlsHelp {
		text("- " + line)
	}
	y += gap
	button(ActionReset, "Reset View", image.Rect(x, y, x+inner, y+buttonHeight), false)
	return l
}

// DrawPanel draws the panel at the left edge of dst.
func DrawPanel(dst *image.RGBA, p Panel, th *theme.Theme) {
	draw.Draw(dst, p.Rect(), image.NewUniform(th.PanelBackground), image.Point{}, draw.Src)
	DrawLine(dst, PanelWidth-1, 0, PanelWidth-1, p.Height-1, th.ButtonBorder, 1)

	l := p.Layout()
	for _, y := range l.Separators {
		DrawLine(dst, panelPad, y, PanelWidth-panelPad, y, th.ButtonBorder, 1)
	}
	for _, t := range l.Texts {
		if t.Heading {
			DrawHeading(dst, t.At.X, t.At.Y, t.Text, th.PanelHeading)
			continue
		}
		DrawText(dst, t.At.X, t.At.Y, t.Text, th.PanelText)
	}
	for _, w := range l.Widgets {
		switch w.Kind {
		case ButtonWidget:
			drawButton(dst, w, p, th)
		case SliderWidget:
			drawSlider(dst, w, th)
		}
	}
}

func drawButton(dst *image.RGBA, w Widget, p Panel, th *theme.Theme) {
	bg := th.ButtonBackground
	switch {
	case w.Active || p.Pressed == w.Action:
		bg = th.ButtonBackgroundActive
	case p.Hover == w.Action:
		bg = th.ButtonBackgroundHover
	}
	draw.Draw(dst, w.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	DrawRect(dst, w.Rect, th.ButtonBorder, 1)
	tx := w.Rect.Min.X + (w.Rect.Dx()-MeasureText(w.Label))/2
	ty := w.Rect.Min.Y + (w.Rect.Dy()-13)/2
	DrawText(dst, tx, ty, w.Label, th.ButtonText)
}

func drawSlider(dst *image.RGBA, w Widget, th *theme.Theme) {
	mid := (w.Rect.Min.Y + w.Rect.Max.Y) / 2
	track := image.Rect(w.Rect.Min.X, mid-2, w.Rect.Max.X, mid+2)
	draw.Draw(dst, track, image.NewUniform(th.SliderTrack), image.Point{}, draw.Src)
	DrawFilledCircle(dst, w.KnobX(), mid, w.Rect.Dy()/2, th.SliderKnob)
}
