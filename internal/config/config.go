package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/fractalexplorer/internal/theme"
	"github.com/example/fractalexplorer/internal/viewport"
)

const (
	DefaultWidth    = 1200
	DefaultHeight   = 800
	DefaultTileSize = 64
)

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Copy   bool
	Render bool
}

// Config holds the application configuration. The view fields are start-up
// defaults; the explorer never writes its current view back.
type Config struct {
	Theme    string
	SaveDir  string
	Variant  viewport.Variant
	Width    int
	Height   int
	Workers  int // 0 means one per CPU
	TileSize int
	Notify   Notify
	Themes   map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:    "", // Empty allows fallback to env/default
		Variant:  viewport.Mandelbrot,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		TileSize: DefaultTileSize,
		Themes:   make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "variant = %s\n", c.Variant)
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "workers = %d\n", c.Workers)
	fmt.Fprintf(&sb, "tile_size = %d\n", c.TileSize)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "render = %v\n", c.Notify.Render)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		sb.WriteString(c.Themes[name].String())
		sb.WriteString("\n")
	}

	return sb.String()
}
