package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/example/fractalexplorer/internal/engine"
	"github.com/example/fractalexplorer/internal/render"
	"github.com/example/fractalexplorer/internal/viewport"
)

type renderCmd struct {
	*root
	fs      *flag.FlagSet
	view    *viewFlags
	width   int
	height  int
	workers int
	output  string
	chrome  bool
	panel   bool
	stdout  io.Writer
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	c := &renderCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	c.view = addViewFlags(fs, r.config.Variant)
	fs.IntVar(&c.width, "width", r.config.Width, "image width in pixels")
	fs.IntVar(&c.height, "height", r.config.Height, "image height in pixels")
	fs.IntVar(&c.workers, "workers", 0, "render goroutines (default: config value or one per CPU)")
	fs.StringVar(&c.output, "o", "", "output PNG file, or - for stdout (default: fractal-VARIANT.png)")
	fs.BoolVar(&c.chrome, "chrome", false, "draw the window chrome around the fractal")
	fs.BoolVar(&c.panel, "panel", false, "with -chrome, include the side panel")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", c.width, c.height)
	}
	if c.panel && !c.chrome {
		return nil, fmt.Errorf("-panel requires -chrome")
	}
	return c, nil
}

func (c *renderCmd) Program() string { return c.subcommand("render") }

func (c *renderCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *renderCmd) Run() error {
	v, err := c.view.viewport()
	if err != nil {
		return err
	}
	img := c.compose(v, engine.Render(v, c.width, c.height, c.engineOptions(c.workers)))

	if c.output == "-" {
		if err := png.Encode(c.stdout, img); err != nil {
			return fmt.Errorf("failed to write PNG to stdout: %w", err)
		}
		return nil
	}
	path := c.output
	if path == "" {
		path = fmt.Sprintf("fractal-%s.png", v.Variant)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", path)
	c.notifier.Render(path)
	return nil
}

// compose wraps frame in the same chrome the explorer window shows.
func (c *renderCmd) compose(v viewport.Viewport, frame *image.RGBA) image.Image {
	if !c.chrome {
		return frame
	}
	sc := render.Scene{Frame: frame, Surface: frame.Bounds()}
	width := c.width
	if c.panel {
		sc.Surface = sc.Surface.Add(image.Pt(render.PanelWidth, 0))
		sc.Panel = &render.Panel{Status: v.Status(), Height: c.height}
		width += render.PanelWidth
	} else {
		sc.Hint = true
	}
	return render.Compose(width, c.height, sc, c.activeTheme)
}
