package viewport

import (
	"errors"
	"fmt"
	"strings"
)

// Preset is a named Julia constant.
type Preset struct {
	Name string
	C    Point
}

// Presets are the built-in Julia constants, in UI order.
var Presets = []Preset{
	{Name: "Dragon", C: Point{-0.7269, 0.1889}},
	{Name: "Spiral", C: Point{-0.75, 0.11}},
	{Name: "Lightning", C: Point{-0.4, 0.6}},
	{Name: "Douady Rabbit", C: Point{-0.123, 0.745}},
}

// ErrUnknownPreset is returned by PresetByName for unrecognised names.
var ErrUnknownPreset = errors.New("unknown julia preset")

// Slug returns the lower-case, hyphenated form of the preset name.
func (p Preset) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Name), " ", "-")
}

// PresetByName finds a preset by display name or slug, ignoring case.
// "rabbit" is accepted for Douady Rabbit.
func PresetByName(name string) (Preset, error) {
	key := normalise(name)
	if key == "rabbit" {
		key = "douadyrabbit"
	}
	for _, p := range Presets {
		if normalise(p.Name) == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func normalise(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// ApplyPreset assigns the preset's constant in one step.
func (v *Viewport) ApplyPreset(p Preset) {
	v.SetJuliaC(p.C.X, p.C.Y)
}

// Status is a read-only snapshot for textual display.
type Status struct {
	Zoom    float64
	Center  Point
	Variant Variant
	JuliaC  Point
}

// Status returns a snapshot of the viewport.
func (v Viewport) Status() Status {
	return Status{Zoom: v.Zoom, Center: v.Center, Variant: v.Variant, JuliaC: v.JuliaC}
}

// ZoomText formats the zoom as shown in the side panel.
func (s Status) ZoomText() string { return fmt.Sprintf("Zoom: %.2e", s.Zoom) }

// CenterText formats the center as shown in the side panel.
func (s Status) CenterText() string {
	return fmt.Sprintf("Center: (%.6f, %.6f)", s.Center.X, s.Center.Y)
}

func (s Status) String() string {
	out := fmt.Sprintf("%s  %s  %s", s.Variant.Label(), s.ZoomText(), s.CenterText())
	if s.Variant == Julia {
		out += fmt.Sprintf("  c = %.4f%+.4fi", s.JuliaC.X, s.JuliaC.Y)
	}
	return out
}
