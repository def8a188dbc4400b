// Package remote serves the explorer to a browser over a websocket.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/example/fractalexplorer/assets"
	"github.com/example/fractalexplorer/internal/engine"
	"github.com/example/fractalexplorer/internal/interact"
	"github.com/example/fractalexplorer/internal/viewport"
)

// Server renders one controller per websocket connection.
type Server struct {
	Width  int
	Height int
	Engine engine.Options
	// View is the starting viewport for new connections.
	View viewport.Viewport
}

// Handler returns the HTTP routes for the web client and its websocket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.Handle("/", http.FileServerFS(assets.Web()))
	return mux
}

// ListenAndServe serves the handler on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Printf("listening on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		log.Printf("websocket accept: %v", err)
		return
	}
	defer c.CloseNow()

	v := s.View
	if !v.Valid() {
		v = viewport.New(viewport.Mandelbrot)
	}
	sess := &session{conn: c, ctrl: interact.New(v, s.Width, s.Height), opts: s.Engine}
	err = sess.run(r.Context())
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("websocket session: %v", err)
	}
}

type session struct {
	conn *websocket.Conn
	ctrl *interact.Controller
	opts engine.Options
}

func (s *session) run(ctx context.Context) error {
	for {
		if s.ctrl.Dirty() {
			if err := s.sendFrame(ctx); err != nil {
				return err
			}
		}
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}
		var msg ClientMessage
		if typ != websocket.MessageText {
			err = errors.New("expected a JSON text message")
		} else if err = json.Unmarshal(data, &msg); err != nil {
			err = fmt.Errorf("decode message: %w", err)
		} else {
			err = s.apply(msg)
		}
		if err != nil {
			if werr := s.reject(ctx, err); werr != nil {
				return werr
			}
		}
	}
}

func (s *session) reject(ctx context.Context, err error) error {
	return wsjson.Write(ctx, s.conn, ErrorMessage{Type: "error", Error: err.Error()})
}

func (s *session) sendFrame(ctx context.Context) error {
	v := s.ctrl.Viewport()
	w, h := s.ctrl.Size()
	img := engine.Render(v, w, h, s.opts)
	s.ctrl.MarkClean()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := wsjson.Write(ctx, s.conn, statusFor(v, w, h)); err != nil {
		return err
	}
	return s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes())
}

// apply feeds one client message to the controller.
func (s *session) apply(msg ClientMessage) error {
	pos := viewport.Point{X: msg.X, Y: msg.Y}
	switch msg.Type {
	case "down":
		s.ctrl.Handle(interact.PointerDown{Pos: pos, FineSelect: msg.Shift})
	case "drag":
		s.ctrl.Handle(interact.PointerDrag{Pos: pos})
	case "up":
		s.ctrl.Handle(interact.PointerUp{})
	case "scroll":
		if msg.DeltaY == 0 {
			return nil
		}
		s.ctrl.Handle(interact.Scroll{DeltaY: msg.DeltaY, Pos: pos})
	case "key":
		a, ok := interact.ParseKeyAction(msg.Action)
		if !ok || a == interact.TogglePanel {
			return fmt.Errorf("unknown key action %q", msg.Action)
		}
		s.ctrl.Handle(interact.Key{Action: a})
	case "variant":
		v, err := viewport.ParseVariant(msg.Variant)
		if err != nil {
			return err
		}
		s.ctrl.SetVariant(v)
	case "preset":
		p, err := viewport.PresetByName(msg.Preset)
		if err != nil {
			return err
		}
		s.ctrl.ApplyPreset(p)
	case "julia":
		if msg.Re == nil && msg.Im == nil {
			return fmt.Errorf("julia message needs re or im")
		}
		c := s.ctrl.Viewport().JuliaC
		if msg.Re != nil {
			c.X = *msg.Re
		}
		if msg.Im != nil {
			c.Y = *msg.Im
		}
		s.ctrl.SetJuliaC(c.X, c.Y)
	case "reset":
		s.ctrl.ResetView()
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}
