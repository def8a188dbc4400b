package appstate

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/fractalexplorer/internal/engine"
	"github.com/example/fractalexplorer/internal/interact"
	"github.com/example/fractalexplorer/internal/render"
	"github.com/example/fractalexplorer/internal/theme"
	"github.com/example/fractalexplorer/internal/viewport"
)

// frameDropThreshold specifies how many consecutive paints can be canceled
// before one is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// frameEvent delivers a finished render to the window loop.
type frameEvent struct {
	Frame engine.Frame
}

type paintState struct {
	width, height int
	scene         render.Scene
	theme         *theme.Theme
}

// Main runs the window on screen s until it is closed.
func (a *AppState) Main(s screen.Screen) {
	ctrl := interact.New(a.View, a.Width, a.Height)
	quit := false
	session := NewSession(SessionConfig{
		Controller: ctrl,
		Theme:      a.Theme,
		Notifier:   a.Notifier,
		Output:     a.Output,
		SaveDir:    a.SaveDir,
		ShowPanel:  a.ShowPanel,
		Quit:       func() { quit = true },
	})
	width, height := session.WindowSize()

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Fractal Explorer"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	renderer := engine.NewRenderer(a.Engine, func(f engine.Frame) { w.Send(frameEvent{Frame: f}) })
	defer renderer.Close()
	session.renderer = renderer

	a.setControlSender(func(ev controlEvent) { w.Send(ev) })

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	defer close(paintCh)
	stopPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	keymap := DefaultKeymap()
	var messageDeadline time.Time

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				stopPaint()
				return
			}
		case size.Event:
			session.Resize(e.WidthPx, e.HeightPx)
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			ww, wh := session.WindowSize()
			st := paintState{width: ww, height: wh, scene: session.Scene(), theme: session.Theme()}
			select {
			case paintCh <- st:
			default:
				<-paintCh
				paintCh <- st
			}
			continue
		case frameEvent:
			if session.SetFrame(e.Frame) && a.onView != nil {
				a.onView(e.Frame.Viewport)
			}
		case controlEvent:
			if e.View != nil && !ctrl.SetViewport(*e.View) {
				log.Printf("ignoring invalid view %+v", *e.View)
			}
			if e.Shortcut != "" && !session.Shortcut(e.Shortcut) {
				log.Printf("unknown action %q", e.Shortcut)
			}
		case mouse.Event:
			handleMouse(session, e)
		case key.Event:
			if e.Direction == key.DirRelease {
				continue
			}
			if name, ok := keymap.Lookup(e.Rune, e.Code, e.Modifiers); ok {
				session.Shortcut(name)
			}
		case error:
			log.Printf("window: %v", e)
			continue
		}

		if quit {
			stopPaint()
			return
		}
		session.Tick()
		if _, until := session.Message(); !until.IsZero() && !until.Equal(messageDeadline) {
			messageDeadline = until
			time.AfterFunc(time.Until(until), func() { w.Send(paint.Event{}) })
		}
		w.Send(paint.Event{})
	}
}

func handleMouse(session *Session, e mouse.Event) {
	pos := viewport.Point{X: float64(e.X), Y: float64(e.Y)}
	if e.Button.IsWheel() {
		if e.Direction == mouse.DirRelease {
			return
		}
		switch e.Button {
		case mouse.ButtonWheelUp:
			session.Scroll(pos, 1)
		case mouse.ButtonWheelDown:
			session.Scroll(pos, -1)
		}
		return
	}
	switch e.Direction {
	case mouse.DirPress:
		if e.Button == mouse.ButtonLeft {
			session.PointerDown(pos, e.Modifiers&key.ModShift != 0)
		}
	case mouse.DirRelease:
		if e.Button == mouse.ButtonLeft {
			session.PointerUp()
		}
	case mouse.DirNone:
		session.PointerMove(pos)
	}
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	render.DrawScene(b.RGBA(), st.scene, st.theme)
	if ctx.Err() != nil {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
