package theme

import (
	"image/color"
	"reflect"
)

// Theme defines the colours of the explorer chrome. The fractal palettes are
// fixed and not part of a theme.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area not covered by the fractal
	Foreground color.RGBA

	// Side panel
	PanelBackground color.RGBA
	PanelText       color.RGBA
	PanelHeading    color.RGBA

	// Buttons
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA // Selected variant
	ButtonText             color.RGBA
	ButtonBorder           color.RGBA

	// Sliders
	SliderTrack color.RGBA
	SliderKnob  color.RGBA

	// Zoom rectangle
	SelectionValid   color.RGBA
	SelectionInvalid color.RGBA

	// Overlays
	HintBackground    color.RGBA
	HintText          color.RGBA
	MessageBackground color.RGBA
	MessageText       color.RGBA
}

// Default returns the built-in dark-panel theme.
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{27, 27, 27, 255},
		Foreground:             color.RGBA{220, 220, 220, 255},
		PanelBackground:        color.RGBA{40, 40, 40, 255},
		PanelText:              color.RGBA{210, 210, 210, 255},
		PanelHeading:           color.RGBA{255, 255, 255, 255},
		ButtonBackground:       color.RGBA{60, 60, 60, 255},
		ButtonBackgroundHover:  color.RGBA{75, 75, 75, 255},
		ButtonBackgroundActive: color.RGBA{0, 92, 128, 255},
		ButtonText:             color.RGBA{230, 230, 230, 255},
		ButtonBorder:           color.RGBA{90, 90, 90, 255},
		SliderTrack:            color.RGBA{70, 70, 70, 255},
		SliderKnob:             color.RGBA{144, 209, 255, 255},
		SelectionValid:         color.RGBA{144, 238, 144, 255},
		SelectionInvalid:       color.RGBA{255, 128, 128, 255},
		HintBackground:         color.RGBA{0, 0, 0, 180},
		HintText:               color.RGBA{255, 255, 255, 255},
		MessageBackground:      color.RGBA{255, 255, 255, 230},
		MessageText:            color.RGBA{0, 0, 0, 255},
	}
}

// Fields returns the colour field names in declaration order.
func Fields() []string {
	typ := reflect.TypeOf(Theme{})
	rgba := reflect.TypeOf(color.RGBA{})
	var names []string
	for i := 0; i < typ.NumField(); i++ {
		if f := typ.Field(i); f.Type == rgba {
			names = append(names, f.Name)
		}
	}
	return names
}

// Color returns the named colour field, matching the name case-insensitively.
func (t *Theme) Color(name string) (color.RGBA, bool) {
	f, ok := t.field(name)
	if !ok {
		return color.RGBA{}, false
	}
	return f.Interface().(color.RGBA), true
}

// SetColor assigns the named colour field. Unknown names report false.
func (t *Theme) SetColor(name string, c color.RGBA) bool {
	f, ok := t.field(name)
	if !ok {
		return false
	}
	f.Set(reflect.ValueOf(c))
	return true
}

func (t *Theme) field(name string) (reflect.Value, bool) {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Type == reflect.TypeOf(color.RGBA{}) && equalFold(f.Name, name) {
			return val.Field(i), true
		}
	}
	return reflect.Value{}, false
}
