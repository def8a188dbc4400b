package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/example/fractalexplorer/internal/appstate"
	"github.com/example/fractalexplorer/internal/display"
	"github.com/example/fractalexplorer/internal/render"
)

type exploreCmd struct {
	*root
	fs      *flag.FlagSet
	view    *viewFlags
	width   int
	height  int
	workers int
	output  string
	fit     bool
	monitor string
	noPanel bool
	backend string
}

func parseExploreCmd(args []string, r *root) (*exploreCmd, error) {
	fs := flag.NewFlagSet("explore", flag.ContinueOnError)
	c := &exploreCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	c.view = addViewFlags(fs, r.config.Variant)
	fs.IntVar(&c.width, "width", r.config.Width, "render buffer width in pixels")
	fs.IntVar(&c.height, "height", r.config.Height, "render buffer height in pixels")
	fs.IntVar(&c.workers, "workers", 0, "render goroutines (default: config value or one per CPU)")
	fs.StringVar(&c.output, "output", "", "file written by the save shortcut (default: timestamped file in save_dir)")
	fs.BoolVar(&c.fit, "fit", false, "shrink the window to fit the monitor")
	fs.StringVar(&c.monitor, "monitor", "primary", "monitor used by -fit (primary, index or name)")
	fs.BoolVar(&c.noPanel, "no-panel", false, "start with the side panel hidden")
	fs.StringVar(&c.backend, "backend", "shiny", "window backend (shiny, ebiten)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", c.width, c.height)
	}
	switch c.backend {
	case "shiny", "ebiten":
	default:
		return nil, fmt.Errorf("unknown backend %q", c.backend)
	}
	return c, nil
}

func (c *exploreCmd) Program() string { return c.subcommand("explore") }

func (c *exploreCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *exploreCmd) Run() error {
	v, err := c.view.viewport()
	if err != nil {
		return err
	}
	width, height := c.width, c.height
	if c.fit {
		width, height = c.fitSize(width, height)
	}
	if c.backend == "ebiten" {
		if c.interactive != nil {
			return fmt.Errorf("the ebiten backend cannot be driven from interactive mode")
		}
		return runEbiten(c, v, width, height)
	}

	opts := []appstate.Option{
		appstate.WithViewport(v),
		appstate.WithSize(width, height),
		appstate.WithWorkers(c.engineOptions(c.workers)),
		appstate.WithOutput(c.output),
		appstate.WithSaveDir(c.config.SaveDir),
		appstate.WithTheme(c.activeTheme),
		appstate.WithNotifier(c.notifier),
		appstate.WithPanel(!c.noPanel),
	}
	if c.interactive != nil {
		return c.interactive.open(opts...)
	}
	appstate.New(opts...).Run()
	return nil
}

func (c *exploreCmd) fitSize(width, height int) (int, int) {
	panel := render.PanelWidth
	if c.noPanel {
		panel = 0
	}
	monitors, err := display.Monitors()
	if err != nil {
		log.Printf("fit: %v", err)
		return width, height
	}
	mon, err := display.Find(monitors, c.monitor)
	if err != nil {
		log.Printf("fit: %v", err)
		return width, height
	}
	return display.FitSize(mon.Rect, width, height, panel)
}

func (c *exploreCmd) sessionConfig() appstate.SessionConfig {
	return appstate.SessionConfig{
		Theme:     c.activeTheme,
		Notifier:  c.notifier,
		Output:    c.output,
		SaveDir:   c.config.SaveDir,
		ShowPanel: !c.noPanel,
	}
}
