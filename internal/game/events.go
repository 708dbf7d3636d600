package game

import "fmt"

// EventKind enumerates everything a front-end can feed into a Session.
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventPointerCancel
	EventPointerLeave
	EventWheel
	EventKeyDown
	EventKeyUp
	EventBlur
	EventResize

	// Commands from HUD buttons or shortcut keys.
	EventNewTarget
	EventReset
	EventModeRotate
	EventModeTranslate
)

var eventKindNames = [...]string{
	EventPointerDown:   "pointer_down",
	EventPointerMove:   "pointer_move",
	EventPointerUp:     "pointer_up",
	EventPointerCancel: "pointer_cancel",
	EventPointerLeave:  "pointer_leave",
	EventWheel:         "wheel",
	EventKeyDown:       "key_down",
	EventKeyUp:         "key_up",
	EventBlur:          "blur",
	EventResize:        "resize",
	EventNewTarget:     "new_target",
	EventReset:         "reset",
	EventModeRotate:    "mode_rotate",
	EventModeTranslate: "mode_translate",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// PointerType mirrors the browser pointerType field.
type PointerType int

const (
	PointerMouse PointerType = iota
	PointerTouch
	PointerPen
)

// Mouse buttons, numbered like DOM MouseEvent.button.
const (
	ButtonPrimary   = 0
	ButtonMiddle    = 1
	ButtonSecondary = 2
)

// Event is one raw input or command. Only the fields relevant to Kind are
// read.
type Event struct {
	Kind EventKind

	PointerID   int
	PointerType PointerType
	X, Y        float64 // client coordinates
	Button      int
	Shift       bool

	DeltaY float64 // wheel, browser convention: positive scrolls down

	Key Key

	// Resize: canvas rectangle in client coordinates.
	Width, Height float64
}

func (e Event) String() string {
	switch e.Kind {
	case EventPointerDown, EventPointerMove, EventPointerUp, EventPointerCancel, EventPointerLeave:
		return fmt.Sprintf("%s id=%d (%.0f,%.0f) btn=%d", e.Kind, e.PointerID, e.X, e.Y, e.Button)
	case EventWheel:
		return fmt.Sprintf("%s dy=%.1f", e.Kind, e.DeltaY)
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s %s", e.Kind, e.Key)
	case EventResize:
		return fmt.Sprintf("%s %.0fx%.0f@(%.0f,%.0f)", e.Kind, e.Width, e.Height, e.X, e.Y)
	default:
		return e.Kind.String()
	}
}
