package game

// Autoplayer is a greedy steering bot. Each frame it previews a small set
// of candidate inputs on a copy of the player pose, picks the one that
// raises the score most and emits the raw events that produce it. It only
// talks to a Session through events, like a human player.
type Autoplayer struct {
	cfg  Config
	step float64 // pixels per candidate drag

	down    bool
	button  int
	at      Point
	held    [keyCount]bool
	stalled int
}

const (
	autoMaxStep = 24.0
	autoMinStep = 1.0
	autoWheel   = 40.0
	autoPointer = 7
)

// NewAutoplayer creates a bot for cfg.
func NewAutoplayer(cfg Config) *Autoplayer {
	return &Autoplayer{cfg: cfg, step: autoMaxStep}
}

type autoAction struct {
	kind   int // 0 rotate drag, 1 translate drag, 2 wheel, 3 keys
	dx, dy float64
	keys   [keyCount]bool
}

// Plan returns the events for one frame. It returns nothing while input
// is locked.
func (a *Autoplayer) Plan(s *Session) []Event {
	if !s.InputEnabled() {
		return a.release()
	}
	player, target := s.Player(), s.Target()
	base := Score(player, target, a.cfg.Weights)

	best, bestScore := autoAction{}, base
	found := false
	for _, c := range a.candidates() {
		p := player
		a.preview(&p, c)
		if sc := Score(p, target, a.cfg.Weights); sc > bestScore+1e-9 {
			best, bestScore, found = c, sc, true
		}
	}
	if !found {
		a.stalled++
		if a.step > autoMinStep {
			a.step /= 2
			if a.step < autoMinStep {
				a.step = autoMinStep
			}
		}
		return a.release()
	}
	a.stalled = 0
	if bestScore-base < 0.002 && a.step > autoMinStep {
		a.step *= 0.75
	}
	return a.emit(best, s.Input().Canvas())
}

// Reset restores the coarse step for a fresh target.
func (a *Autoplayer) Reset() {
	a.step = autoMaxStep
	a.stalled = 0
}

func (a *Autoplayer) candidates() []autoAction {
	var out []autoAction
	s := a.step
	if a.cfg.AllowKeyboardInput {
		for _, k := range [][]Key{{KeyLeft}, {KeyRight}, {KeyUp}, {KeyDown}, {KeyZ}, {KeyX},
			{KeyLeft, KeyUp}, {KeyLeft, KeyDown}, {KeyRight, KeyUp}, {KeyRight, KeyDown}} {
			var act autoAction
			act.kind = 3
			for _, key := range k {
				act.keys[key] = true
			}
			out = append(out, act)
		}
	}
	for _, dx := range []float64{-s, 0, s} {
		for _, dy := range []float64{-s, 0, s} {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, autoAction{kind: 0, dx: dx, dy: dy})
			if a.cfg.AllowPositionMatch {
				out = append(out, autoAction{kind: 1, dx: dx, dy: dy})
			}
		}
	}
	out = append(out, autoAction{kind: 2, dy: autoWheel}, autoAction{kind: 2, dy: -autoWheel})
	return out
}

func (a *Autoplayer) preview(t *Transform, c autoAction) {
	sens, b := a.cfg.Sensitivity, a.cfg.Bounds
	switch c.kind {
	case 0:
		t.RotateBy(c.dx*sens.DragRotate, c.dy*sens.DragRotate)
	case 1:
		t.TranslateBy(c.dx*sens.DragTranslate, -c.dy*sens.DragTranslate, b.Pos)
	case 2:
		t.ScaleBy(-c.dy*sens.Wheel, b.MinScale, b.MaxScale)
	case 3:
		ks := KeyboardState{held: c.keys}
		yaw, pitch, sc := ks.Resolve(sens.KeyRotate, sens.KeyScale)
		t.RotateBy(yaw, pitch)
		t.ScaleBy(sc, b.MinScale, b.MaxScale)
	}
}

func (a *Autoplayer) emit(c autoAction, canvas Rect) []Event {
	center := Point{canvas.X + canvas.W/2, canvas.Y + canvas.H/2}
	var evs []Event
	if c.kind != 3 {
		evs = append(evs, a.releaseKeys()...)
	}
	switch c.kind {
	case 0, 1:
		button := ButtonPrimary
		if c.kind == 1 {
			button = ButtonSecondary
		}
		next := a.at.Add(Point{c.dx, c.dy})
		if a.down && (a.button != button || !canvas.Contains(next)) {
			evs = append(evs, a.release()...)
		}
		if !a.down {
			a.down, a.button, a.at = true, button, center
			evs = append(evs, Event{Kind: EventPointerDown, PointerID: autoPointer, X: center.X(), Y: center.Y(), Button: button})
			next = center.Add(Point{c.dx, c.dy})
		}
		a.at = next
		evs = append(evs, Event{Kind: EventPointerMove, PointerID: autoPointer, X: next.X(), Y: next.Y(), Button: button})
	case 2:
		evs = append(evs, a.release()...)
		evs = append(evs, Event{Kind: EventWheel, X: center.X(), Y: center.Y(), DeltaY: c.dy})
	case 3:
		evs = append(evs, a.release()...)
		for k := KeyUp; k < keyCount; k++ {
			if c.keys[k] && !a.held[k] {
				evs = append(evs, Event{Kind: EventKeyDown, Key: k})
			} else if !c.keys[k] && a.held[k] {
				evs = append(evs, Event{Kind: EventKeyUp, Key: k})
			}
		}
		a.held = c.keys
	}
	return evs
}

// release lifts the pointer and every held key.
func (a *Autoplayer) release() []Event {
	evs := a.releaseKeys()
	if a.down {
		evs = append(evs, Event{Kind: EventPointerUp, PointerID: autoPointer, X: a.at.X(), Y: a.at.Y(), Button: a.button})
		a.down = false
	}
	return evs
}

func (a *Autoplayer) releaseKeys() []Event {
	var evs []Event
	for k := KeyUp; k < keyCount; k++ {
		if a.held[k] {
			evs = append(evs, Event{Kind: EventKeyUp, Key: k})
			a.held[k] = false
		}
	}
	return evs
}

// Stalled reports how many consecutive frames found no improving move.
func (a *Autoplayer) Stalled() int { return a.stalled }
