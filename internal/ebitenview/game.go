//go:build ebiten

// Package ebitenview runs an explorer Session inside an ebiten game loop.
package ebitenview

import (
	"errors"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/example/fractalexplorer/internal/appstate"
	"github.com/example/fractalexplorer/internal/engine"
	"github.com/example/fractalexplorer/internal/interact"
	"github.com/example/fractalexplorer/internal/render"
	"github.com/example/fractalexplorer/internal/viewport"
)

var errQuit = errors.New("quit")

// keyBinding maps an ebiten key, with or without Ctrl, to a Session shortcut.
type keyBinding struct {
	key  ebiten.Key
	ctrl bool
}

var bindings = map[keyBinding]string{
	{ebiten.KeyEqual, false}:          interact.ZoomIn.String(),
	{ebiten.KeyNumpadAdd, false}:      interact.ZoomIn.String(),
	{ebiten.KeyMinus, false}:          interact.ZoomOut.String(),
	{ebiten.KeyNumpadSubtract, false}: interact.ZoomOut.String(),
	{ebiten.KeyArrowLeft, false}:      interact.PanLeft.String(),
	{ebiten.KeyArrowRight, false}:     interact.PanRight.String(),
	{ebiten.KeyArrowUp, false}:        interact.PanUp.String(),
	{ebiten.KeyArrowDown, false}:      interact.PanDown.String(),
	{ebiten.KeyTab, false}:            interact.TogglePanel.String(),
	{ebiten.KeyR, false}:              appstate.ShortcutReset,
	{ebiten.KeyS, true}:               appstate.ShortcutSave,
	{ebiten.KeyC, true}:               appstate.ShortcutCopy,
	{ebiten.KeyQ, false}:              appstate.ShortcutQuit,
	{ebiten.KeyEscape, false}:         appstate.ShortcutQuit,
	{ebiten.KeyDigit1, false}:         render.VariantAction(viewport.Mandelbrot),
	{ebiten.KeyDigit2, false}:         render.VariantAction(viewport.Julia),
	{ebiten.KeyDigit3, false}:         render.VariantAction(viewport.Koch),
	{ebiten.KeyDigit1, true}:          render.PresetAction(1),
	{ebiten.KeyDigit2, true}:          render.PresetAction(2),
	{ebiten.KeyDigit3, true}:          render.PresetAction(3),
	{ebiten.KeyDigit4, true}:          render.PresetAction(4),
}

// Game adapts a Session to ebiten.Game.
type Game struct {
	session  *appstate.Session
	renderer *engine.Renderer
	width    int
	height   int
	canvas   *image.RGBA
	quit     bool

	mu     sync.Mutex
	frames []engine.Frame
	keys   []ebiten.Key
}

// New creates a game for the view at width×height with the given options.
func New(v viewport.Viewport, width, height int, cfg appstate.SessionConfig, opts engine.Options) *Game {
	g := &Game{}
	g.renderer = engine.NewRenderer(opts, g.deliver)
	cfg.Controller = interact.New(v, width, height)
	cfg.Renderer = g.renderer
	cfg.Quit = func() { g.quit = true }
	g.session = appstate.NewSession(cfg)
	g.width, g.height = g.session.WindowSize()
	g.canvas = image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	return g
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	defer g.renderer.Close()
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Fractal Explorer")
	err := ebiten.RunGame(g)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (g *Game) deliver(f engine.Frame) {
	g.mu.Lock()
	g.frames = append(g.frames, f)
	g.mu.Unlock()
}

// Update polls input and feeds the session.
func (g *Game) Update() error {
	g.mu.Lock()
	frames := g.frames
	g.frames = nil
	g.mu.Unlock()
	for _, f := range frames {
		g.session.SetFrame(f)
	}

	mx, my := ebiten.CursorPosition()
	pos := viewport.Point{X: float64(mx), Y: float64(my)}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.PointerDown(pos, shift)
	}
	g.session.PointerMove(pos)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.PointerUp()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.session.Scroll(pos, dy)
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyC && ctrl && shift {
			g.session.Shortcut(appstate.ShortcutCopyCoords)
			continue
		}
		if name, ok := bindings[keyBinding{k, ctrl}]; ok {
			g.session.Shortcut(name)
		}
	}

	if g.quit {
		return errQuit
	}
	g.session.Tick()
	return nil
}

// Draw composites the current scene onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawScene(g.canvas, g.session.Scene(), g.session.Theme())
	screen.WritePixels(g.canvas.Pix)
}

// Layout keeps the logical screen at the session's window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
