package appstate

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/fractalexplorer/internal/clipboard"
	"github.com/example/fractalexplorer/internal/engine"
	"github.com/example/fractalexplorer/internal/interact"
	"github.com/example/fractalexplorer/internal/notify"
	"github.com/example/fractalexplorer/internal/render"
	"github.com/example/fractalexplorer/internal/theme"
	"github.com/example/fractalexplorer/internal/viewport"
	"github.com/example/fractalexplorer/internal/zoomrect"
)

// MessageDuration is how long save and copy messages stay on screen.
const MessageDuration = 2 * time.Second

// Shortcut names understood by Session.Shortcut besides the interact
// KeyAction names and the panel widget actions.
const (
	ShortcutReset      = "reset"
	ShortcutSave       = "save"
	ShortcutCopy       = "copy"
	ShortcutCopyCoords = "copy-coords"
	ShortcutQuit       = "quit"
)

// ErrNoFrame is returned when saving or copying before the first render.
var ErrNoFrame = errors.New("no frame rendered yet")

var (
	writeImage = clipboard.WriteImage
	writeText  = clipboard.WriteText
)

// Submitter queues a render. *engine.Renderer implements it.
type Submitter interface {
	Submit(v viewport.Viewport, width, height int) uint64
}

// SessionConfig wires a Session to its collaborators.
type SessionConfig struct {
	Controller *interact.Controller
	Renderer   Submitter
	Theme      *theme.Theme
	Notifier   *notify.Notifier
	// Output is the PNG path for Save. When empty a timestamped name in
	// SaveDir is used.
	Output  string
	SaveDir string
	// ShowPanel starts with the side panel visible.
	ShowPanel bool
	// Quit is called for the quit shortcut.
	Quit func()
	// Now is the clock used for message expiry.
	Now func() time.Time
}

// Session is the window-independent state of an explorer window. Drivers
// translate platform input into Session calls and draw Scene. It is not safe
// for concurrent use.
type Session struct {
	ctrl     *interact.Controller
	renderer Submitter
	theme    *theme.Theme
	notifier *notify.Notifier
	output   string
	saveDir  string
	quit     func()
	now      func() time.Time

	width, height int
	panel         bool
	hover         string
	pressed       string
	slider        string

	frame        *image.RGBA
	frameView    viewport.Viewport
	frameGen     uint64
	submitted    uint64
	message      string
	messageUntil time.Time
}

// NewSession creates a session. The window starts sized to the buffer plus
// the panel when it is visible.
func NewSession(cfg SessionConfig) *Session {
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	s := &Session{
		ctrl:     cfg.Controller,
		renderer: cfg.Renderer,
		theme:    th,
		notifier: cfg.Notifier,
		output:   cfg.Output,
		saveDir:  cfg.SaveDir,
		quit:     cfg.Quit,
		now:      now,
		panel:    cfg.ShowPanel,
	}
	w, h := s.ctrl.Size()
	s.width, s.height = w, h
	if s.panel {
		s.width += render.PanelWidth
	}
	s.layoutSurface()
	return s
}

// Controller exposes the interaction controller.
func (s *Session) Controller() *interact.Controller { return s.ctrl }

// PanelVisible reports whether the side panel is shown.
func (s *Session) PanelVisible() bool { return s.panel }

// WindowSize returns the window size the session lays out for.
func (s *Session) WindowSize() (int, int) { return s.width, s.height }

// Resize records a new window size. The render buffer keeps its size.
func (s *Session) Resize(width, height int) {
	s.width, s.height = width, height
}

// TogglePanel shows or hides the side panel and moves the surface with it.
func (s *Session) TogglePanel() {
	s.panel = !s.panel
	s.hover, s.pressed, s.slider = "", "", ""
	s.layoutSurface()
}

func (s *Session) layoutSurface() {
	w, h := s.ctrl.Size()
	x := 0.0
	if s.panel {
		x = render.PanelWidth
	}
	s.ctrl.SetSurface(zoomrect.Surface{Min: viewport.Point{X: x}, Width: float64(w), Height: float64(h)})
}

// SurfaceRect returns where the frame is drawn in window coordinates.
func (s *Session) SurfaceRect() image.Rectangle {
	sf := s.ctrl.Surface()
	x, y := int(sf.Min.X), int(sf.Min.Y)
	return image.Rect(x, y, x+int(sf.Width), y+int(sf.Height))
}

func (s *Session) panelModel() render.Panel {
	return render.Panel{
		Status:  s.ctrl.Viewport().Status(),
		Height:  s.height,
		Hover:   s.hover,
		Pressed: s.pressed,
	}
}

func (s *Session) inPanel(p viewport.Point) bool {
	return s.panel && p.X >= 0 && p.X < render.PanelWidth && p.Y >= 0
}

func toPixel(p viewport.Point) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// PointerDown starts a click on the panel or a drag on the fractal. shift
// selects a zoom rectangle instead of panning.
func (s *Session) PointerDown(p viewport.Point, shift bool) {
	if s.inPanel(p) {
		w, ok := s.panelModel().Layout().HitTest(toPixel(p))
		if !ok {
			return
		}
		if w.Kind == render.SliderWidget {
			s.slider = w.Action
			s.setSlider(w, p)
			return
		}
		s.pressed = w.Action
		s.hover = w.Action
		return
	}
	s.ctrl.Handle(interact.PointerDown{Pos: p, FineSelect: shift})
}

// PointerMove updates hover state and drives slider or viewport drags.
func (s *Session) PointerMove(p viewport.Point) {
	if s.slider != "" {
		if w, ok := s.panelModel().Layout().Widget(s.slider); ok {
			s.setSlider(w, p)
		}
		return
	}
	s.hover = ""
	if s.inPanel(p) {
		if w, ok := s.panelModel().Layout().HitTest(toPixel(p)); ok {
			s.hover = w.Action
		}
	}
	s.ctrl.Handle(interact.PointerDrag{Pos: p})
}

// PointerUp finishes the current click or drag. A panel button fires when
// the pointer is released over the button it was pressed on.
func (s *Session) PointerUp() {
	if s.slider != "" {
		s.slider = ""
		return
	}
	if s.pressed != "" {
		action := s.pressed
		s.pressed = ""
		if s.hover == action {
			s.Shortcut(action)
		}
		return
	}
	s.ctrl.Handle(interact.PointerUp{})
}

func (s *Session) setSlider(w render.Widget, p viewport.Point) {
	v := w.ValueAt(int(p.X))
	c := s.ctrl.Viewport().JuliaC
	switch w.Action {
	case render.ActionJuliaRe:
		s.ctrl.SetJuliaC(v, c.Y)
	case render.ActionJuliaIm:
		s.ctrl.SetJuliaC(c.X, v)
	}
}

// Scroll zooms with the wheel. Positive dy zooms in.
func (s *Session) Scroll(p viewport.Point, dy float64) {
	if dy == 0 {
		return
	}
	s.ctrl.Handle(interact.Scroll{DeltaY: dy, Pos: p})
}

// Key applies a keyboard action.
func (s *Session) Key(a interact.KeyAction) {
	if res := s.ctrl.Handle(interact.Key{Action: a}); res.TogglePanel {
		s.TogglePanel()
	}
}

// Shortcut runs a named action and reports whether the name was known.
func (s *Session) Shortcut(name string) bool {
	if a, ok := interact.ParseKeyAction(name); ok {
		s.Key(a)
		return true
	}
	switch name {
	case ShortcutReset:
		s.ctrl.ResetView()
	case ShortcutSave:
		if _, err := s.Save(); err != nil {
			log.Printf("save: %v", err)
			s.flash(fmt.Sprintf("save failed: %v", err))
		}
	case ShortcutCopy:
		if err := s.Copy(); err != nil {
			log.Printf("copy: %v", err)
			s.flash(fmt.Sprintf("copy failed: %v", err))
		}
	case ShortcutCopyCoords:
		if err := s.CopyCoords(); err != nil {
			log.Printf("copy coordinates: %v", err)
			s.flash(fmt.Sprintf("copy failed: %v", err))
		}
	case ShortcutQuit:
		if s.quit != nil {
			s.quit()
		}
	default:
		return s.widgetAction(name)
	}
	return true
}

func (s *Session) widgetAction(name string) bool {
	for _, v := range viewport.Variants {
		if name == render.VariantAction(v) {
			if s.ctrl.Viewport().Variant != v {
				s.ctrl.SetVariant(v)
			}
			return true
		}
	}
	if rest, ok := strings.CutPrefix(name, "preset-"); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 1 || i > len(viewport.Presets) {
			return false
		}
		s.ctrl.ApplyPreset(viewport.Presets[i-1])
		return true
	}
	return false
}

// Tick queues a render when the view changed since the last one.
func (s *Session) Tick() bool {
	if !s.ctrl.Dirty() || s.renderer == nil {
		return false
	}
	w, h := s.ctrl.Size()
	s.submitted = s.renderer.Submit(s.ctrl.Viewport(), w, h)
	s.ctrl.MarkClean()
	return true
}

// SetFrame accepts a finished render. Frames older than the one on screen
// are dropped; it reports whether f was kept.
func (s *Session) SetFrame(f engine.Frame) bool {
	if f.Image == nil || (s.frame != nil && f.Generation < s.frameGen) {
		return false
	}
	s.frame = f.Image
	s.frameView = f.Viewport
	s.frameGen = f.Generation
	return true
}

// Frame returns the image currently on screen.
func (s *Session) Frame() *image.RGBA { return s.frame }

// Pending reports whether a submitted render has not arrived yet.
func (s *Session) Pending() bool { return s.submitted > s.frameGen }

// Message returns the active toast text and when it expires.
func (s *Session) Message() (string, time.Time) {
	if s.message == "" || !s.now().Before(s.messageUntil) {
		return "", time.Time{}
	}
	return s.message, s.messageUntil
}

func (s *Session) flash(msg string) {
	s.message = msg
	s.messageUntil = s.now().Add(MessageDuration)
}

// Scene builds everything to draw for the current state.
func (s *Session) Scene() render.Scene {
	sc := render.Scene{
		Frame:   s.frame,
		Surface: s.SurfaceRect(),
		Hint:    !s.panel,
	}
	if s.panel {
		p := s.panelModel()
		sc.Panel = &p
	}
	if start, end, ok := s.ctrl.Selection(); ok {
		sc.Selection = &render.Selection{Start: start, End: end}
	}
	sc.Message, _ = s.Message()
	return sc
}

// Theme returns the chrome theme.
func (s *Session) Theme() *theme.Theme { return s.theme }

// SavePath returns where Save will write.
func (s *Session) SavePath() string {
	if s.output != "" {
		return s.output
	}
	name := fmt.Sprintf("fractal-%s-%s.png", s.frameView.Variant, s.now().Format("20060102-150405"))
	return filepath.Join(s.saveDir, name)
}

// Save writes the frame on screen as a PNG and returns its path.
func (s *Session) Save() (string, error) {
	if s.frame == nil {
		return "", ErrNoFrame
	}
	path := s.SavePath()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := writePNG(path, s.frame); err != nil {
		return "", err
	}
	s.flash(fmt.Sprintf("saved %s", path))
	log.Printf("saved %s", path)
	s.notifier.Save(path)
	return path, nil
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("save: closing file: %v", cerr)
		}
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}

// Copy puts the frame on screen on the clipboard.
func (s *Session) Copy() error {
	if s.frame == nil {
		return ErrNoFrame
	}
	if err := writeImage(s.frame); err != nil {
		return err
	}
	s.flash("image copied to clipboard")
	s.notifier.Copy("image")
	return nil
}

// CopyCoords puts the textual view status on the clipboard.
func (s *Session) CopyCoords() error {
	status := s.ctrl.Viewport().Status().String()
	if err := writeText(status); err != nil {
		return err
	}
	s.flash("coordinates copied to clipboard")
	s.notifier.Copy("coordinates")
	return nil
}
