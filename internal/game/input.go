package game

// InputMode selects what a single-pointer drag does.
type InputMode int

const (
	ModeRotate InputMode = iota
	ModeTranslate
)

func (m InputMode) String() string {
	if m == ModeTranslate {
		return "translate"
	}
	return "rotate"
}

// InputTranslator turns pointer and wheel events into incremental updates
// of the player Transform. It owns the gesture state but not the
// Transform; the Session passes that in on every call.
type InputTranslator struct {
	cfg    Config
	canvas Rect

	pointers *PointerSession

	dragging   bool
	mode       InputMode
	manualMode InputMode
	last       Point

	multiTouch   bool
	haveCenter   bool
	lastCenter   Point
	lastDistance float64
}

// NewInputTranslator builds a translator for cfg. The canvas starts empty,
// so nothing is accepted until SetCanvas is called.
func NewInputTranslator(cfg Config) *InputTranslator {
	return &InputTranslator{cfg: cfg, pointers: NewPointerSession()}
}

// SetCanvas updates the accepted input area.
func (in *InputTranslator) SetCanvas(r Rect) { in.canvas = r }

// Canvas returns the accepted input area.
func (in *InputTranslator) Canvas() Rect { return in.canvas }

// InCanvas reports whether a client coordinate lies on the canvas.
func (in *InputTranslator) InCanvas(x, y float64) bool {
	return in.canvas.Contains(Point{x, y})
}

// SetManualMode changes the free-play rotate/move toggle. It has no effect
// in variants without the toggle. A drag already in progress keeps the
// mode it started with.
func (in *InputTranslator) SetManualMode(m InputMode) {
	if !in.cfg.AllowManualModeToggle {
		return
	}
	in.manualMode = m
}

// ManualMode returns the toggle position.
func (in *InputTranslator) ManualMode() InputMode { return in.manualMode }

// Mode returns the mode of the current (or last) drag.
func (in *InputTranslator) Mode() InputMode { return in.mode }

// Dragging reports whether at least one pointer is held.
func (in *InputTranslator) Dragging() bool { return in.dragging }

// MultiTouch reports whether a two-pointer gesture is active.
func (in *InputTranslator) MultiTouch() bool { return in.multiTouch }

// ActivePointers is the number of tracked pointers.
func (in *InputTranslator) ActivePointers() int { return in.pointers.Count() }

func (in *InputTranslator) translateAllowed() bool { return in.cfg.AllowPositionMatch }

// PointerDown starts or extends a gesture. Presses off the canvas and
// mouse buttons other than primary and secondary are ignored. It returns
// false when the event was dropped.
func (in *InputTranslator) PointerDown(ev Event, enabled bool) bool {
	if !enabled {
		return false
	}
	if !in.InCanvas(ev.X, ev.Y) {
		return false
	}
	if ev.PointerType == PointerMouse && ev.Button != ButtonPrimary && ev.Button != ButtonSecondary {
		return false
	}

	in.pointers.Set(ev.PointerID, Point{ev.X, ev.Y})
	in.dragging = true

	if center, dist, ok := in.pointers.Pair(); ok {
		in.multiTouch = true
		in.haveCenter = true
		in.lastCenter = center
		in.lastDistance = dist
		in.mode = ModeTranslate
		return true
	}

	in.multiTouch = false
	in.mode = in.dragStartMode(ev)
	in.last = Point{ev.X, ev.Y}
	return true
}

// dragStartMode resolves the single-pointer mode once, at press time.
// Shift or the secondary button force translate in free play.
func (in *InputTranslator) dragStartMode(ev Event) InputMode {
	if !in.translateAllowed() {
		return ModeRotate
	}
	if ev.Shift || ev.Button == ButtonSecondary {
		return ModeTranslate
	}
	return in.manualMode
}

// PointerMove applies the gesture delta to t. When enabled is false the
// gesture anchors still follow the pointer but t is left untouched, so
// the discarded motion never replays as a jump later.
func (in *InputTranslator) PointerMove(ev Event, t *Transform, enabled bool) bool {
	if !in.pointers.Has(ev.PointerID) {
		return false
	}
	in.pointers.Set(ev.PointerID, Point{ev.X, ev.Y})
	if !in.dragging {
		return false
	}

	if center, dist, ok := in.pointers.Pair(); ok {
		if enabled {
			if in.haveCenter && in.translateAllowed() {
				d := center.Sub(in.lastCenter)
				t.TranslateBy(d.X()*in.cfg.Sensitivity.Pan, -d.Y()*in.cfg.Sensitivity.Pan, in.cfg.Bounds.Pos)
			}
			if in.lastDistance > 0 {
				t.ScaleBy((dist-in.lastDistance)*in.cfg.Sensitivity.Pinch, in.cfg.Bounds.MinScale, in.cfg.Bounds.MaxScale)
			}
		}
		in.haveCenter = true
		in.lastCenter = center
		in.lastDistance = dist
		return enabled
	}

	dx := ev.X - in.last.X()
	dy := ev.Y - in.last.Y()
	in.last = Point{ev.X, ev.Y}
	if !enabled {
		return false
	}

	if in.mode == ModeRotate {
		s := in.cfg.Sensitivity.DragRotate
		t.RotateBy(dx*s, dy*s)
	} else {
		s := in.cfg.Sensitivity.DragTranslate
		t.TranslateBy(dx*s, -dy*s, in.cfg.Bounds.Pos)
	}
	return true
}

// PointerUp handles up, cancel and leave alike. It always runs, even while
// input is locked, so the pointer map never keeps stale entries.
func (in *InputTranslator) PointerUp(ev Event) {
	in.pointers.Remove(ev.PointerID)

	if center, dist, ok := in.pointers.Pair(); ok {
		in.haveCenter = true
		in.lastCenter = center
		in.lastDistance = dist
		in.multiTouch = true
		return
	}

	if only, ok := in.pointers.First(); ok {
		in.last = only
		in.multiTouch = false
		in.mode = in.manualMode
		if !in.translateAllowed() {
			in.mode = ModeRotate
		}
		return
	}

	in.dragging = false
	in.multiTouch = false
	in.haveCenter = false
	in.lastCenter = Point{}
	in.lastDistance = 0
}

// Wheel maps vertical scroll to scale; scrolling down shrinks.
func (in *InputTranslator) Wheel(ev Event, t *Transform, enabled bool) bool {
	if !enabled || !in.InCanvas(ev.X, ev.Y) {
		return false
	}
	t.ScaleBy(-ev.DeltaY*in.cfg.Sensitivity.Wheel, in.cfg.Bounds.MinScale, in.cfg.Bounds.MaxScale)
	return true
}

// Release drops every pointer, ending any gesture.
func (in *InputTranslator) Release() {
	in.pointers.Clear()
	in.dragging = false
	in.multiTouch = false
	in.haveCenter = false
	in.lastCenter = Point{}
	in.lastDistance = 0
}
