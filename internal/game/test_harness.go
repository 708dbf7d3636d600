package game

import (
	"math/rand"
	"time"
)

// FakeClock is a manually advanced time source for headless runs.
type FakeClock struct {
	t time.Time
}

// NewFakeClock starts a clock at a fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{t: time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC)}
}

// Now returns the current fake instant.
func (c *FakeClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// defaultFrame is one display frame at 60 Hz.
const defaultFrame = time.Second / 60

// TestSim is a headless session harness. It drives a Session with a fake
// clock at a fixed frame rate and has no rendering dependency, so tests
// and the headless report share it.
type TestSim struct {
	Session *Session
	SimLog  *SimLog
	Clock   *FakeClock
	Frame   time.Duration
	Canvas  Rect
	Frames  int

	cfg     Config
	seed    int64
	verbose bool
	sampler func(*rand.Rand) Transform
}

// SimOption is a builder function applied to a TestSim before its Session
// is created.
type SimOption func(*TestSim)

// WithVariant selects the free-play or timed preset.
func WithVariant(v Variant) SimOption {
	return func(ts *TestSim) { ts.cfg = ConfigFor(v) }
}

// WithConfig sets a fully custom configuration.
func WithConfig(cfg Config) SimOption {
	return func(ts *TestSim) { ts.cfg = cfg }
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return func(ts *TestSim) { ts.seed = seed }
}

// WithVerbose enables per-frame score logging.
func WithVerbose(v bool) SimOption {
	return func(ts *TestSim) { ts.verbose = v }
}

// WithFrame sets the simulated frame duration.
func WithFrame(d time.Duration) SimOption {
	return func(ts *TestSim) { ts.Frame = d }
}

// WithCanvas sets the input canvas rectangle.
func WithCanvas(r Rect) SimOption {
	return func(ts *TestSim) { ts.Canvas = r }
}

// WithNeutralTargets makes every target the rest pose.
func WithNeutralTargets() SimOption {
	return func(ts *TestSim) { ts.sampler = NeutralTarget }
}

// WithTargets replaces the target draw.
func WithTargets(fn func(*rand.Rand) Transform) SimOption {
	return func(ts *TestSim) { ts.sampler = fn }
}

// NewTestSim constructs a started TestSim from the given options.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Clock:  NewFakeClock(),
		Frame:  defaultFrame,
		Canvas: Rect{X: 0, Y: 0, W: 800, H: 600},
		cfg:    FreePlayConfig(),
		seed:   1,
	}
	for _, o := range opts {
		o(ts)
	}
	ts.SimLog = NewSimLog(ts.verbose)
	sessOpts := []SessionOption{
		WithClock(ts.Clock.Now),
		WithSeed(ts.seed),
		WithSimLog(ts.SimLog),
	}
	if ts.sampler != nil {
		sessOpts = append(sessOpts, WithTargetSampler(ts.sampler))
	}
	ts.Session = NewSession(ts.cfg, sessOpts...)
	ts.Session.Handle(Event{Kind: EventResize, X: ts.Canvas.X, Y: ts.Canvas.Y, Width: ts.Canvas.W, Height: ts.Canvas.H})
	ts.Session.Start()
	return ts
}

// Send feeds events to the session in order.
func (ts *TestSim) Send(evs ...Event) {
	for _, ev := range evs {
		ts.Session.Handle(ev)
	}
}

// RunFrames advances the clock and ticks the session n times.
func (ts *TestSim) RunFrames(n int) HUD {
	var hud HUD
	for i := 0; i < n; i++ {
		ts.Clock.Advance(ts.Frame)
		hud = ts.Session.Tick()
		ts.Frames++
	}
	return hud
}

// RunFor advances by at least d of simulated time.
func (ts *TestSim) RunFor(d time.Duration) HUD {
	n := int((d + ts.Frame - 1) / ts.Frame)
	return ts.RunFrames(n)
}

// RunUntil advances up to maxFrames, stopping early if predicate returns
// true. Returns the frame count at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.RunFrames(1)
		if predicate(ts) {
			return ts.Frames
		}
	}
	return -1
}

// WaitForInput runs frames until the drop-in finishes.
func (ts *TestSim) WaitForInput() {
	ts.RunUntil(func(ts *TestSim) bool { return ts.Session.InputEnabled() }, 600)
}

// Center returns the middle of the canvas.
func (ts *TestSim) Center() Point {
	return Point{ts.Canvas.X + ts.Canvas.W/2, ts.Canvas.Y + ts.Canvas.H/2}
}

// Drag presses a mouse button at the canvas centre, moves by (dx,dy) in
// the given number of steps and releases.
func (ts *TestSim) Drag(button int, shift bool, dx, dy float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	c := ts.Center()
	ts.Send(Event{Kind: EventPointerDown, PointerID: 1, X: c.X(), Y: c.Y(), Button: button, Shift: shift})
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		ts.Send(Event{Kind: EventPointerMove, PointerID: 1, X: c.X() + dx*f, Y: c.Y() + dy*f, Button: button, Shift: shift})
	}
	ts.Send(Event{Kind: EventPointerUp, PointerID: 1, X: c.X() + dx, Y: c.Y() + dy, Button: button})
}
