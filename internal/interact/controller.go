// Package interact maps pointer, wheel and key input onto viewport changes.
package interact

import (
	"github.com/example/fractalexplorer/internal/viewport"
	"github.com/example/fractalexplorer/internal/zoomrect"
)

const (
	KeyZoomIn     = 1.5
	KeyZoomOut    = 0.67
	ScrollZoomIn  = 1.1
	ScrollZoomOut = 0.9
)

// Result describes what handling one event did.
type Result struct {
	// Changed is set when the viewport was modified.
	Changed bool
	// TogglePanel asks the caller to flip its side panel.
	TogglePanel bool
}

// Controller owns the viewport and the gesture state machine. It is not safe
// for concurrent use; all input must come from one goroutine.
type Controller struct {
	view    viewport.Viewport
	gesture Gesture
	surface zoomrect.Surface
	width   int
	height  int
	dirty   bool
}

// New returns an idle controller for a width x height buffer displayed on a
// surface of the same size at the origin. It starts dirty so the first frame
// is rendered.
func New(v viewport.Viewport, width, height int) *Controller {
	return &Controller{
		view:    v,
		gesture: Idle{},
		surface: zoomrect.Surface{Width: float64(width), Height: float64(height)},
		width:   width,
		height:  height,
		dirty:   true,
	}
}

// Viewport returns a copy of the current viewport.
func (c *Controller) Viewport() viewport.Viewport { return c.view }

// Size returns the buffer dimensions.
func (c *Controller) Size() (width, height int) { return c.width, c.height }

// Gesture returns the current drag state.
func (c *Controller) Gesture() Gesture { return c.gesture }

// Surface returns where the buffer is displayed.
func (c *Controller) Surface() zoomrect.Surface { return c.surface }

// SetSurface moves the display rectangle. It does not change the viewport.
func (c *Controller) SetSurface(s zoomrect.Surface) { c.surface = s }

// Resize changes the buffer dimensions and marks the view dirty.
func (c *Controller) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.dirty = true
}

// Dirty reports whether the viewport changed since the last MarkClean.
func (c *Controller) Dirty() bool { return c.dirty }

// MarkClean clears the dirty flag, normally once a render has been queued.
func (c *Controller) MarkClean() { c.dirty = false }

// Selection returns the active zoom rectangle, if any.
func (c *Controller) Selection() (start, end viewport.Point, ok bool) {
	if s, isSel := c.gesture.(SelectingRect); isSel {
		return s.Start, s.End, true
	}
	return viewport.Point{}, viewport.Point{}, false
}

// Handle applies one input event.
func (c *Controller) Handle(ev Event) Result {
	switch ev := ev.(type) {
	case PointerDown:
		return c.pointerDown(ev)
	case PointerDrag:
		return c.pointerDrag(ev)
	case PointerUp:
		return c.pointerUp()
	case Scroll:
		if !c.surface.Contains(ev.Pos) {
			return Result{}
		}
		if ev.DeltaY > 0 {
			return c.zoom(ScrollZoomIn)
		}
		return c.zoom(ScrollZoomOut)
	case Key:
		return c.key(ev.Action)
	}
	return Result{}
}

func (c *Controller) pointerDown(ev PointerDown) Result {
	if _, idle := c.gesture.(Idle); !idle {
		return Result{}
	}
	if !c.surface.Contains(ev.Pos) {
		return Result{}
	}
	if ev.FineSelect {
		c.gesture = SelectingRect{Start: ev.Pos, End: ev.Pos}
	} else {
		c.gesture = Panning{Last: ev.Pos}
	}
	return Result{}
}

func (c *Controller) pointerDrag(ev PointerDrag) Result {
	switch g := c.gesture.(type) {
	case Panning:
		dx := ev.Pos.X - g.Last.X
		dy := ev.Pos.Y - g.Last.Y
		c.gesture = Panning{Last: ev.Pos}
		if dx == 0 && dy == 0 {
			return Result{}
		}
		c.view.Pan(dx, dy, c.width, c.height)
		return c.changed()
	case SelectingRect:
		c.gesture = SelectingRect{Start: g.Start, End: ev.Pos}
	}
	return Result{}
}

func (c *Controller) pointerUp() Result {
	g := c.gesture
	c.gesture = Idle{}
	sel, ok := g.(SelectingRect)
	if !ok {
		return Result{}
	}
	next, applied := zoomrect.Convert(sel.Start, sel.End, c.surface, c.view, c.width, c.height)
	if !applied {
		return Result{}
	}
	c.view = next
	return c.changed()
}

func (c *Controller) key(a KeyAction) Result {
	switch a {
	case ZoomIn:
		return c.zoom(KeyZoomIn)
	case ZoomOut:
		return c.zoom(KeyZoomOut)
	case PanLeft:
		c.view.Step(viewport.Left)
	case PanRight:
		c.view.Step(viewport.Right)
	case PanUp:
		c.view.Step(viewport.Up)
	case PanDown:
		c.view.Step(viewport.Down)
	case TogglePanel:
		return Result{TogglePanel: true}
	default:
		return Result{}
	}
	return c.changed()
}

func (c *Controller) zoom(factor float64) Result {
	before := c.view.Zoom
	c.view.ZoomBy(factor)
	if c.view.Zoom == before {
		return Result{}
	}
	return c.changed()
}

func (c *Controller) changed() Result {
	c.dirty = true
	return Result{Changed: true}
}

// SetVariant switches variant and resets to its canonical view.
func (c *Controller) SetVariant(v viewport.Variant) {
	c.view.Reset(v)
	c.dirty = true
}

// ResetView restores the canonical view of the current variant.
func (c *Controller) ResetView() {
	c.view.Reset(c.view.Variant)
	c.dirty = true
}

// SetJuliaC assigns a clamped Julia constant.
func (c *Controller) SetJuliaC(re, im float64) {
	before := c.view.JuliaC
	c.view.SetJuliaC(re, im)
	if c.view.JuliaC != before {
		c.dirty = true
	}
}

// ApplyPreset assigns a preset Julia constant.
func (c *Controller) ApplyPreset(p viewport.Preset) {
	c.SetJuliaC(p.C.X, p.C.Y)
}

// SetViewport replaces the viewport outright. Invalid viewports are ignored.
func (c *Controller) SetViewport(v viewport.Viewport) bool {
	if !v.Valid() {
		return false
	}
	c.view = v
	c.view.SetJuliaC(v.JuliaC.X, v.JuliaC.Y)
	c.dirty = true
	return true
}
