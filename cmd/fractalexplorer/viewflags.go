package main

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/example/fractalexplorer/internal/viewport"
)

// viewFlags are the viewport flags shared by explore, render and serve.
type viewFlags struct {
	fs      *flag.FlagSet
	variant string
	centerX float64
	centerY float64
	zoom    float64
	juliaRe float64
	juliaIm float64
	preset  string
}

func addViewFlags(fs *flag.FlagSet, defaultVariant viewport.Variant) *viewFlags {
	vf := &viewFlags{fs: fs}
	fs.StringVar(&vf.variant, "variant", defaultVariant.String(), "fractal to show ("+variantNames()+")")
	fs.Float64Var(&vf.centerX, "center-x", 0, "real part of the view center (default: the variant's home view)")
	fs.Float64Var(&vf.centerY, "center-y", 0, "imaginary part of the view center (default: the variant's home view)")
	fs.Float64Var(&vf.zoom, "zoom", 0, "zoom factor (default: the variant's home view)")
	fs.Float64Var(&vf.juliaRe, "julia-re", 0, "real part of the Julia constant")
	fs.Float64Var(&vf.juliaIm, "julia-im", 0, "imaginary part of the Julia constant")
	fs.StringVar(&vf.preset, "preset", "", "Julia preset name (see the presets command)")
	return vf
}

// viewport builds the starting view. Unset flags keep the values of the
// variant's home view.
func (vf *viewFlags) viewport() (viewport.Viewport, error) {
	variant, err := viewport.ParseVariant(vf.variant)
	if err != nil {
		return viewport.Viewport{}, err
	}
	v := viewport.New(variant)

	set := map[string]bool{}
	vf.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if vf.preset != "" {
		p, err := viewport.PresetByName(vf.preset)
		if err != nil {
			return viewport.Viewport{}, err
		}
		v.ApplyPreset(p)
	}
	if set["julia-re"] || set["julia-im"] {
		re, im := v.JuliaC.X, v.JuliaC.Y
		if set["julia-re"] {
			re = vf.juliaRe
		}
		if set["julia-im"] {
			im = vf.juliaIm
		}
		if math.Abs(re) > viewport.JuliaLimit || math.Abs(im) > viewport.JuliaLimit {
			return viewport.Viewport{}, fmt.Errorf("julia constant %g%+gi outside [-%g, %g]", re, im, viewport.JuliaLimit, viewport.JuliaLimit)
		}
		v.SetJuliaC(re, im)
	}
	if set["center-x"] {
		v.Center.X = vf.centerX
	}
	if set["center-y"] {
		v.Center.Y = vf.centerY
	}
	if set["zoom"] {
		if !(vf.zoom > 0) || math.IsInf(vf.zoom, 0) {
			return viewport.Viewport{}, fmt.Errorf("zoom must be a positive finite number, got %g", vf.zoom)
		}
		v.Zoom = vf.zoom
	}
	if !v.Valid() {
		return viewport.Viewport{}, fmt.Errorf("invalid view %+v", v)
	}
	return v, nil
}

func variantNames() string {
	names := make([]string, len(viewport.Variants))
	for i, v := range viewport.Variants {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
