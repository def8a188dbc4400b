package appstate

import (
	"sync"

	"github.com/example/fractalexplorer/internal/engine"
	"github.com/example/fractalexplorer/internal/notify"
	"github.com/example/fractalexplorer/internal/theme"
	"github.com/example/fractalexplorer/internal/viewport"
	"golang.org/x/exp/shiny/driver"
)

// AppState holds the configuration of an explorer window.
type AppState struct {
	View      viewport.Viewport
	Width     int
	Height    int
	Engine    engine.Options
	Output    string
	SaveDir   string
	Theme     *theme.Theme
	Notifier  *notify.Notifier
	ShowPanel bool

	controlMu   sync.Mutex
	sendControl func(controlEvent)
	onView      func(viewport.Viewport)

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithViewport sets the initial view.
func WithViewport(v viewport.Viewport) Option { return func(a *AppState) { a.View = v } }

// WithSize sets the render buffer size in pixels.
func WithSize(width, height int) Option {
	return func(a *AppState) { a.Width, a.Height = width, height }
}

// WithWorkers sets the render worker pool.
func WithWorkers(opts engine.Options) Option { return func(a *AppState) { a.Engine = opts } }

// WithOutput sets the PNG path used by save. Without it frames are saved
// under SaveDir with a timestamped name.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithSaveDir sets the directory for timestamped saves.
func WithSaveDir(dir string) Option { return func(a *AppState) { a.SaveDir = dir } }

// WithTheme sets the chrome colours.
func WithTheme(th *theme.Theme) Option { return func(a *AppState) { a.Theme = th } }

// WithNotifier sets the desktop notifier for save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithPanel starts with the side panel shown or hidden.
func WithPanel(show bool) Option { return func(a *AppState) { a.ShowPanel = show } }

// WithViewListener registers a callback for every rendered view.
func WithViewListener(fn func(viewport.Viewport)) Option {
	return func(a *AppState) { a.onView = fn }
}

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		View:      viewport.New(viewport.Mandelbrot),
		Width:     1200,
		Height:    800,
		Engine:    engine.DefaultOptions(),
		ShowPanel: true,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

// controlEvent carries requests from other goroutines into the window loop.
type controlEvent struct {
	View     *viewport.Viewport
	Shortcut string
}

// SetViewport replaces the view of a running window.
func (a *AppState) SetViewport(v viewport.Viewport) bool {
	return a.control(controlEvent{View: &v})
}

// Trigger runs a Session shortcut in a running window.
func (a *AppState) Trigger(name string) bool {
	return a.control(controlEvent{Shortcut: name})
}

func (a *AppState) control(ev controlEvent) bool {
	a.controlMu.Lock()
	sender := a.sendControl
	a.controlMu.Unlock()
	if sender == nil {
		return false
	}
	sender(ev)
	return true
}

func (a *AppState) setControlSender(fn func(controlEvent)) {
	a.controlMu.Lock()
	a.sendControl = fn
	a.controlMu.Unlock()
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		a.setControlSender(nil)
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }
