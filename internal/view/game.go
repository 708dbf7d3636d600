// Package view runs an Egg Match session inside an ebiten window.
package view

import (
	"image/color"
	"math/rand"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/Garsondee/Egg-Match/internal/logging"
	"github.com/Garsondee/Egg-Match/internal/render"
	"github.com/Garsondee/Egg-Match/internal/skin"
	"github.com/Garsondee/Egg-Match/internal/sound"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Options configures the window front-end.
type Options struct {
	Theme    string
	Seed     int64
	Muted    bool
	Volume   float64
	ShowFeed bool
	Log      *logging.Logger
}

// Game adapts a game.Session to ebiten.Game.
type Game struct {
	cfg     game.Config
	session *game.Session
	log     *logging.Logger
	hud     game.HUD

	theme   string
	skinRng *rand.Rand
	mesh    *render.Mesh
	player  *render.Renderer
	ref     *render.Renderer
	chime   *sound.Player
	feed    *Feed

	in       *poller
	src      inputSource
	prevKeys map[ebiten.Key]bool

	width, height int
	resized       bool
	showFeed      bool
	layout        screenLayout

	hudBuf *ebiten.Image
}

// New builds the window front-end and its session.
func New(cfg game.Config, opts Options) *Game {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Volume <= 0 {
		opts.Volume = 0.6
	}
	g := &Game{
		cfg:      cfg,
		log:      opts.Log,
		theme:    opts.Theme,
		skinRng:  rand.New(rand.NewSource(opts.Seed)), // #nosec G404 -- texture jitter
		mesh:     render.EggMesh(32, 48),
		chime:    sound.NewPlayer(opts.Volume, opts.Muted, opts.Log),
		feed:     NewFeed(),
		in:       newPoller(),
		src:      ebitenSource{},
		prevKeys: make(map[ebiten.Key]bool),
		showFeed: opts.ShowFeed,
	}
	if _, ok := skin.PaletteFor(g.theme); !ok {
		g.log.Warnf("unknown theme %q, using %s", g.theme, skin.DefaultTheme)
		g.theme = skin.DefaultTheme
	}
	tex := skin.Generate(g.theme, skin.DefaultSize, g.skinRng)
	g.player = render.NewRenderer(g.mesh, tex)
	g.ref = render.NewRenderer(g.mesh, tex)

	g.session = game.NewSession(cfg,
		game.WithSeed(opts.Seed),
		game.WithLogger(opts.Log),
		game.OnCelebrate(g.chime.Celebrate),
		game.OnTimeUp(func() { g.log.Infof("time up after %d rounds", g.session.Rounds()) }),
	)
	return g
}

// Session exposes the underlying session.
func (g *Game) Session() *game.Session { return g.session }

func (g *Game) Update() error {
	// The countdown and first drop-in begin with the first frame, once the
	// window is up.
	if !g.session.Started() {
		g.session.Start()
	}
	if g.resized {
		g.applyResize()
	}
	for _, ev := range g.in.poll(g.src) {
		g.session.Handle(ev)
	}
	g.handleCommands()
	g.hud = g.session.Tick()
	g.feed.Sync(g.session.SimLog())
	return nil
}

func (g *Game) applyResize() {
	g.resized = false
	g.layout = computeLayout(g.width, g.height, g.showFeed)
	c := g.layout.canvas
	g.session.Handle(game.Event{
		Kind:   game.EventResize,
		X:      float64(c.Min.X),
		Y:      float64(c.Min.Y),
		Width:  float64(c.Dx()),
		Height: float64(c.Dy()),
	})
	g.in.setSize(g.width, g.height)
	g.player.Resize(c.Dx(), c.Dy())
	g.ref.Resize(g.layout.ref.Dx(), g.layout.ref.Dy())

	if g.hudBuf != nil {
		g.hudBuf.Deallocate()
	}
	g.hudBuf = ebiten.NewImage(max(1, c.Dx()/hudScale), max(1, c.Dy()/hudScale))
}

// handleCommands processes shortcut keys (edge-triggered).
func (g *Game) handleCommands() {
	current := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		current[k] = g.src.KeyPressed(k)
		return current[k] && !g.prevKeys[k]
	}

	if pressed(ebiten.KeyN) {
		g.session.Handle(game.Event{Kind: game.EventNewTarget})
	}
	if pressed(ebiten.KeyR) {
		g.session.Handle(game.Event{Kind: game.EventReset})
	}
	if pressed(ebiten.Key1) {
		g.session.Handle(game.Event{Kind: game.EventModeRotate})
	}
	if pressed(ebiten.Key2) {
		g.session.Handle(game.Event{Kind: game.EventModeTranslate})
	}
	if pressed(ebiten.KeyC) {
		g.copyResult()
	}
	if pressed(ebiten.KeyT) {
		g.cycleTheme()
	}
	if pressed(ebiten.KeyM) {
		g.chime.SetMuted(!g.chime.Muted())
	}
	if pressed(ebiten.KeyL) {
		g.showFeed = !g.showFeed
		g.resized = true
	}

	g.prevKeys = current
}

func (g *Game) copyResult() {
	line := g.hud.ShareLine(g.cfg.Variant)
	if err := clipboard.WriteAll(line); err != nil {
		g.log.Warnf("clipboard: %v", err)
		g.feed.Add(FeedEntry{Tick: g.session.TickCount(), Round: g.hud.Rounds + 1, Category: "input", Message: "copy failed"})
		return
	}
	g.feed.Add(FeedEntry{Tick: g.session.TickCount(), Round: g.hud.Rounds + 1, Category: "input", Message: "copied result"})
}

func (g *Game) cycleTheme() {
	g.theme = skin.NextTheme(g.theme)
	tex := skin.Generate(g.theme, skin.DefaultSize, g.skinRng)
	g.player.SetSkin(tex)
	g.ref.SetSkin(tex)
	g.log.Debugf("skin %s", g.theme)
}

var backdrop = color.RGBA{R: 236, G: 242, B: 248, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if g.hudBuf == nil {
		return
	}
	s := g.session

	c := g.layout.canvas
	egg := g.player.Draw(s.Player(), render.GameCamera, s.DropOffset())
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(c.Min.X), float64(c.Min.Y))
	screen.DrawImage(egg, &op)

	if r := g.layout.ref; !r.Empty() {
		drawRefPanel(screen, r)
		target := g.ref.Draw(s.Target(), render.ReferenceCamera, 0)
		var rop ebiten.DrawImageOptions
		rop.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		screen.DrawImage(target, &rop)
		drawText(screen, "TARGET", float64(r.Min.X+8), float64(r.Min.Y+6), inkColor, text.AlignStart)
	}

	drawHUD(g.hudBuf, g.hud, hudLines(g.hud, g.cfg, g.theme, g.chime.Muted()), helpLine(g.cfg))
	var hop ebiten.DrawImageOptions
	hop.GeoM.Scale(hudScale, hudScale)
	hop.GeoM.Translate(float64(c.Min.X), float64(c.Min.Y))
	screen.DrawImage(g.hudBuf, &hop)

	if g.showFeed && g.layout.feedX < g.width {
		g.feed.Draw(screen, g.layout.feedX, g.height)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}
