package interact

import "github.com/example/fractalexplorer/internal/viewport"

// Event is an input delivered to the Controller. Positions are in the same
// pointer coordinates as the controller's Surface.
type Event interface{ isEvent() }

// PointerDown starts a drag. FineSelect is the modifier that turns the drag
// into a rectangle selection.
type PointerDown struct {
	Pos        viewport.Point
	FineSelect bool
}

// PointerDrag continues a drag.
type PointerDrag struct {
	Pos viewport.Point
}

// PointerUp ends a drag.
type PointerUp struct{}

// Scroll is a wheel movement with the pointer at Pos. Positive DeltaY zooms in.
type Scroll struct {
	DeltaY float64
	Pos    viewport.Point
}

// Key is a discrete keyboard action.
type Key struct {
	Action KeyAction
}

func (PointerDown) isEvent() {}
func (PointerDrag) isEvent() {}
func (PointerUp) isEvent()   {}
func (Scroll) isEvent()      {}
func (Key) isEvent()         {}

// KeyAction enumerates the keyboard actions the controller understands.
type KeyAction int

const (
	ZoomIn KeyAction = iota
	ZoomOut
	PanLeft
	PanRight
	PanUp
	PanDown
	TogglePanel
)

var keyActionNames = map[KeyAction]string{
	ZoomIn:      "zoom-in",
	ZoomOut:     "zoom-out",
	PanLeft:     "pan-left",
	PanRight:    "pan-right",
	PanUp:       "pan-up",
	PanDown:     "pan-down",
	TogglePanel: "toggle-panel",
}

func (a KeyAction) String() string {
	if n, ok := keyActionNames[a]; ok {
		return n
	}
	return "unknown"
}

// ParseKeyAction converts a name produced by KeyAction.String back to the
// action.
func ParseKeyAction(name string) (KeyAction, bool) {
	for a, n := range keyActionNames {
		if n == name {
			return a, true
		}
	}
	return 0, false
}

// Gesture is the drag state of the controller: Idle, Panning or
// SelectingRect.
type Gesture interface{ isGesture() }

// Idle means no drag is in progress.
type Idle struct{}

// Panning drags the view. Last is the previous pointer position.
type Panning struct {
	Last viewport.Point
}

// SelectingRect is drawing a zoom rectangle from Start to End.
type SelectingRect struct {
	Start, End viewport.Point
}

func (Idle) isGesture()          {}
func (Panning) isGesture()       {}
func (SelectingRect) isGesture() {}
