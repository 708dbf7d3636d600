package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Garsondee/Egg-Match/internal/logging"
	"github.com/go-gl/mathgl/mgl64"
)

// Session owns all state of one play session: the player and target
// poses, input gesture state, round, timer and keyboard state, and the
// delayed-task queue. It is not safe for concurrent use; the front-end
// feeds events and ticks from a single goroutine.
type Session struct {
	cfg Config

	now    func() time.Time
	rng    *rand.Rand
	gen    *TargetGenerator
	log    *logging.Logger
	simLog *SimLog

	player Transform
	target Transform

	input *InputTranslator
	keys  KeyboardState
	timer *Timer
	drop  DropIn
	round RoundState
	sched Scheduler

	tick    int
	rounds  int
	best    int
	status  string
	hud     HUD
	started bool

	onCelebrate func()
	onTimeUp    func()
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithClock injects the time source. Tests pass a fake clock.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithSeed seeds the target RNG for deterministic runs.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) } // #nosec G404 -- game only
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *logging.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithSimLog records session events into sl.
func WithSimLog(sl *SimLog) SessionOption {
	return func(s *Session) { s.simLog = sl }
}

// WithTargetSampler replaces the random target draw.
func WithTargetSampler(fn func(*rand.Rand) Transform) SessionOption {
	return func(s *Session) { s.gen.override = fn }
}

// OnCelebrate registers a hook run once per round when the threshold is
// first crossed.
func OnCelebrate(fn func()) SessionOption {
	return func(s *Session) { s.onCelebrate = fn }
}

// OnTimeUp registers a hook run when the countdown ends.
func OnTimeUp(fn func()) SessionOption {
	return func(s *Session) { s.onTimeUp = fn }
}

// NewSession builds a session for cfg. Call Start before the first Tick.
func NewSession(cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		cfg:    cfg,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- game only
		log:    logging.Discard(),
		simLog: NewSimLog(false),
		player: IdentityTransform(),
		input:  NewInputTranslator(cfg),
		drop:   DropIn{Duration: cfg.DropDuration, Height: cfg.DropHeight},
	}
	s.gen = NewTargetGenerator(s.rng, !cfg.AllowPositionMatch)
	for _, o := range opts {
		o(s)
	}
	// WithSeed may have replaced the rng after the generator was built.
	s.gen.rng = s.rng
	if cfg.TimerEnabled {
		s.timer = NewTimer(cfg.TimerSeconds)
	}
	return s
}

// Start generates the first target and starts the countdown.
func (s *Session) Start() {
	now := s.now()
	s.started = true
	if s.timer != nil {
		s.timer.Start(now)
	}
	s.log.Infof("session start variant=%s", s.cfg.Variant)
	s.newRound(now)
}

// newRound installs a fresh target, replays the drop-in and resets the
// player and round flags.
func (s *Session) newRound(now time.Time) {
	s.round.Reset()
	s.status = statusKeepGoing
	s.drop.Start(now)
	s.target = s.gen.Generate()
	s.player.Reset()
	s.journal("target", "generated", fmt.Sprintf("angle=%.1fdeg scale=%.3f", mgl64.RadToDeg(IdentityTransform().AngleTo(s.target)), s.target.Scale), s.target.Scale)
}

func (s *Session) journal(category, key, value string, num float64) {
	s.simLog.Add(s.tick, s.rounds+1, category, key, value, num)
}

// InputEnabled reports whether interaction is currently accepted.
func (s *Session) InputEnabled() bool {
	if s.drop.Active() {
		return false
	}
	if s.timer != nil && s.timer.Ended() {
		return false
	}
	return true
}

func (s *Session) ended() bool {
	return s.timer != nil && s.timer.Ended()
}

// Handle applies one input event. Events arriving while input is locked
// are dropped, not queued.
func (s *Session) Handle(ev Event) {
	enabled := s.InputEnabled()
	switch ev.Kind {
	case EventPointerDown:
		s.input.PointerDown(ev, enabled)
	case EventPointerMove:
		s.input.PointerMove(ev, &s.player, enabled)
	case EventPointerUp, EventPointerCancel, EventPointerLeave:
		s.input.PointerUp(ev)
	case EventWheel:
		s.input.Wheel(ev, &s.player, enabled)
	case EventKeyDown:
		if s.cfg.AllowKeyboardInput && enabled {
			s.keys.Set(ev.Key, true)
		}
	case EventKeyUp:
		s.keys.Set(ev.Key, false)
	case EventBlur:
		s.keys.Clear()
		s.input.Release()
	case EventResize:
		s.input.SetCanvas(Rect{X: ev.X, Y: ev.Y, W: ev.Width, H: ev.Height})
	case EventNewTarget:
		if s.ended() {
			return
		}
		s.journal("input", "new_target", "manual", 0)
		s.newRound(s.now())
	case EventReset:
		if s.ended() {
			return
		}
		s.player.Reset()
	case EventModeRotate:
		s.input.SetManualMode(ModeRotate)
	case EventModeTranslate:
		s.input.SetManualMode(ModeTranslate)
	default:
		s.log.Debugf("ignored event %s", ev)
	}
}

// Tick runs one frame: due tasks, drop-in, timer, keyboard, score and
// round state, in that order. It returns the HUD for the frame.
func (s *Session) Tick() HUD {
	if !s.started {
		s.Start()
	}
	now := s.now()
	s.tick++

	s.sched.RunDue(now)
	s.drop.Update(now)

	if s.timer != nil && s.timer.Update(now) {
		s.keys.Clear()
		s.journal("timer", "ended", fmt.Sprintf("rounds=%d", s.rounds), float64(s.rounds))
		s.log.Infof("time up: %d rounds, best %d%%", s.rounds, s.best)
		if s.onTimeUp != nil {
			s.onTimeUp()
		}
	}

	if s.cfg.AllowKeyboardInput && s.InputEnabled() {
		yaw, pitch, scale := s.keys.Resolve(s.cfg.Sensitivity.KeyRotate, s.cfg.Sensitivity.KeyScale)
		s.player.RotateBy(yaw, pitch)
		s.player.ScaleBy(scale, s.cfg.Bounds.MinScale, s.cfg.Bounds.MaxScale)
	}

	b := Breakdown(s.player, s.target, s.cfg.Weights)
	pct := Percent(b.Total)
	if pct > s.best {
		s.best = pct
	}
	s.simLog.AddVerbose(s.tick, s.rounds+1, "hud", "score", fmt.Sprintf("pct=%d", pct), b.Total)

	celebrate, schedule := s.round.Observe(pct, s.cfg.Threshold)
	if celebrate {
		s.journal("round", "celebrate", fmt.Sprintf("pct=%d", pct), float64(pct))
		if s.onCelebrate != nil {
			s.onCelebrate()
		}
	}
	if schedule {
		s.journal("round", "advance_scheduled", fmt.Sprintf("delay=%s", s.cfg.AdvanceDelay), float64(pct))
		s.sched.After(now, s.cfg.AdvanceDelay, "advance", s.fireAdvance)
	}
	s.status = statusFor(pct, s.round.HasCelebrated, s.ended(), s.rounds)

	s.hud = HUD{
		MatchPercent: pct,
		BestPercent:  s.best,
		Status:       s.status,
		Glow:         bannerGlow(pct),
		TimerEnabled: s.timer != nil,
		Ended:        s.ended(),
		Rounds:       s.rounds,
		Mode:         s.input.ManualMode(),
		Phase:        s.round.Phase(),
		Breakdown:    b,
	}
	if s.timer != nil {
		s.hud.Remaining = s.timer.String()
	}
	return s.hud
}

// fireAdvance is the delayed round-advance. The timer guard is checked
// here, when the task fires, not when it was scheduled.
func (s *Session) fireAdvance(now time.Time) {
	if s.ended() {
		s.journal("round", "advance_skipped", "timer ended", 0)
		return
	}
	s.rounds++
	s.journal("round", "advance", fmt.Sprintf("rounds=%d", s.rounds), float64(s.rounds))
	s.log.Debugf("round %d matched", s.rounds)
	s.newRound(now)
}

// ContextMenuSuppressed reports whether a context-menu request at (x,y)
// should be swallowed: only over the canvas. Hosts that have a context
// menu, such as a browser embedding, consult it.
func (s *Session) ContextMenuSuppressed(x, y float64) bool {
	return s.input.InCanvas(x, y)
}

// Started reports whether Start has run.
func (s *Session) Started() bool { return s.started }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Player returns the live player pose.
func (s *Session) Player() Transform { return s.player }

// Target returns the current target pose.
func (s *Session) Target() Transform { return s.target }

// DropOffset is the player egg's vertical entrance offset.
func (s *Session) DropOffset() float64 { return s.drop.Offset() }

// HUD returns the last computed HUD.
func (s *Session) HUD() HUD { return s.hud }

// Round returns the round flags.
func (s *Session) Round() RoundState { return s.round }

// Rounds returns the number of matched rounds.
func (s *Session) Rounds() int { return s.rounds }

// Timer returns the countdown, or nil in untimed sessions.
func (s *Session) Timer() *Timer { return s.timer }

// Keys returns the held steering keys.
func (s *Session) Keys() KeyboardState { return s.keys }

// Input exposes the gesture translator for inspection.
func (s *Session) Input() *InputTranslator { return s.input }

// SimLog returns the event journal.
func (s *Session) SimLog() *SimLog { return s.simLog }

// PendingTasks returns the number of queued delayed tasks.
func (s *Session) PendingTasks() int { return s.sched.Pending() }

// TickCount returns the number of frames run.
func (s *Session) TickCount() int { return s.tick }
