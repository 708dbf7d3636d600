// Package term plays Egg Match in a terminal: tcell for input and output,
// the eggs drawn as shaded characters.
package term

import (
	"context"
	"image"
	"math/rand"
	"time"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/Garsondee/Egg-Match/internal/logging"
	"github.com/Garsondee/Egg-Match/internal/skin"
	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// Each cell stands for this many canvas units, so pointer gains tuned for
// pixels feel similar.
const (
	cellW = 8
	cellH = 16
)

const frameInterval = 16 * time.Millisecond

// Options configures the terminal front-end.
type Options struct {
	Theme string
	Seed  int64
	Log   *logging.Logger
	Now   func() time.Time
}

// App owns the screen and the session. Everything except PollEvent runs
// on the Run goroutine.
type App struct {
	screen  tcell.Screen
	cfg     game.Config
	session *game.Session
	log     *logging.Logger
	now     func() time.Time
	hud     game.HUD

	theme string
	skin  image.Image
	rng   *rand.Rand

	keys    *heldKeys
	buttons tcell.ButtonMask
	status  string
}

// New wraps an initialized screen.
func New(screen tcell.Screen, cfg game.Config, opts Options) *App {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if _, ok := skin.PaletteFor(opts.Theme); !ok {
		opts.Theme = skin.DefaultTheme
	}
	a := &App{
		screen: screen,
		cfg:    cfg,
		log:    opts.Log,
		now:    opts.Now,
		theme:  opts.Theme,
		rng:    rand.New(rand.NewSource(opts.Seed)), // #nosec G404 -- texture jitter
		keys:   newHeldKeys(),
	}
	a.skin = skin.Generate(a.theme, 256, a.rng)
	a.session = game.NewSession(cfg,
		game.WithSeed(opts.Seed),
		game.WithClock(opts.Now),
		game.WithLogger(opts.Log),
		game.OnCelebrate(func() { a.screen.Beep() }),
	)
	a.session.Start()
	a.resize()
	return a
}

// Session exposes the underlying session.
func (a *App) Session() *game.Session { return a.session }

// Run loops until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}

// Step releases lapsed keys, ticks the session and redraws.
func (a *App) Step() {
	for _, k := range a.keys.expire(a.now()) {
		a.session.Handle(game.Event{Kind: game.EventKeyUp, Key: k})
	}
	a.hud = a.session.Tick()
	a.draw()
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.session.Handle(game.Event{Kind: game.EventResize, Width: float64(w * cellW), Height: float64(max(0, h-hudRows) * cellH)})
}

// HandleEvent applies one terminal event. It returns false on quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	case *tcell.EventFocus:
		if !ev.Focused {
			a.blur()
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) blur() {
	a.keys.releaseAll()
	a.session.Handle(game.Event{Kind: game.EventBlur})
	if a.buttons != 0 {
		a.session.Handle(game.Event{Kind: game.EventPointerCancel, PointerType: game.PointerMouse})
		a.buttons = 0
	}
}

func steeringKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z':
			return game.KeyZ
		case 'x', 'X':
			return game.KeyX
		}
	}
	return game.KeyNone
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if k := steeringKey(ev); k != game.KeyNone {
		// Repeats resend the press in case the first arrived while locked.
		a.keys.press(k, a.now())
		a.session.Handle(game.Event{Kind: game.EventKeyDown, Key: k})
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'n', 'N':
		a.session.Handle(game.Event{Kind: game.EventNewTarget})
	case 'r', 'R':
		a.session.Handle(game.Event{Kind: game.EventReset})
	case '1':
		a.session.Handle(game.Event{Kind: game.EventModeRotate})
	case '2':
		a.session.Handle(game.Event{Kind: game.EventModeTranslate})
	case 't', 'T':
		a.theme = skin.NextTheme(a.theme)
		a.skin = skin.Generate(a.theme, 256, a.rng)
	case 'c', 'C':
		if err := clipboard.WriteAll(a.hud.ShareLine(a.cfg.Variant)); err != nil {
			a.log.Warnf("clipboard: %v", err)
			a.status = "copy failed"
		} else {
			a.status = "copied"
		}
	}
	return true
}

func mouseButton(b tcell.ButtonMask) int {
	switch {
	case b&tcell.ButtonSecondary != 0:
		return game.ButtonSecondary
	case b&tcell.ButtonMiddle != 0 && b&tcell.ButtonPrimary == 0:
		return game.ButtonMiddle
	}
	return game.ButtonPrimary
}

const buttonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

func (a *App) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := float64(cx*cellW+cellW/2), float64(cy*cellH+cellH/2)
	btn := ev.Buttons()
	base := game.Event{PointerID: 0, PointerType: game.PointerMouse, X: x, Y: y, Shift: ev.Modifiers()&tcell.ModShift != 0}

	switch {
	case btn&tcell.WheelUp != 0:
		base.Kind, base.DeltaY = game.EventWheel, -100
		a.session.Handle(base)
	case btn&tcell.WheelDown != 0:
		base.Kind, base.DeltaY = game.EventWheel, 100
		a.session.Handle(base)
	}

	pressed := btn & buttonMask
	switch {
	case a.buttons == 0 && pressed != 0:
		base.Kind = game.EventPointerDown
		base.Button = mouseButton(pressed)
		a.session.Handle(base)
	case a.buttons != 0 && pressed != 0:
		base.Kind = game.EventPointerMove
		a.session.Handle(base)
	case a.buttons != 0 && pressed == 0:
		base.Kind = game.EventPointerUp
		a.session.Handle(base)
	}
	a.buttons = pressed
}
