package view

import (
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeSource is a scripted inputSource. Just-pressed/released state lasts
// one poll; call next() between frames.
type fakeSource struct {
	focused  bool
	x, y     int
	wheel    float64
	held     map[ebiten.Key]bool
	keyDown  map[ebiten.Key]bool
	keyUp    map[ebiten.Key]bool
	mDown    map[ebiten.MouseButton]bool
	mUp      map[ebiten.MouseButton]bool
	newTouch []ebiten.TouchID
	touchPos map[ebiten.TouchID][2]int
	touchUp  map[ebiten.TouchID]bool
}

func newFakeSource() *fakeSource {
	f := &fakeSource{focused: true, held: map[ebiten.Key]bool{}, touchPos: map[ebiten.TouchID][2]int{}}
	f.next()
	return f
}

func (f *fakeSource) next() {
	f.wheel = 0
	f.keyDown = map[ebiten.Key]bool{}
	f.keyUp = map[ebiten.Key]bool{}
	f.mDown = map[ebiten.MouseButton]bool{}
	f.mUp = map[ebiten.MouseButton]bool{}
	f.newTouch = nil
	for id := range f.touchUp {
		delete(f.touchPos, id)
	}
	f.touchUp = map[ebiten.TouchID]bool{}
}

func (f *fakeSource) Focused() bool                               { return f.focused }
func (f *fakeSource) CursorPosition() (int, int)                  { return f.x, f.y }
func (f *fakeSource) MouseJustPressed(b ebiten.MouseButton) bool  { return f.mDown[b] }
func (f *fakeSource) MouseJustReleased(b ebiten.MouseButton) bool { return f.mUp[b] }
func (f *fakeSource) Wheel() (float64, float64)                   { return 0, f.wheel }
func (f *fakeSource) KeyPressed(k ebiten.Key) bool                { return f.held[k] }
func (f *fakeSource) KeyJustPressed(k ebiten.Key) bool            { return f.keyDown[k] }
func (f *fakeSource) KeyJustReleased(k ebiten.Key) bool           { return f.keyUp[k] }
func (f *fakeSource) TouchJustReleased(id ebiten.TouchID) bool    { return f.touchUp[id] }
func (f *fakeSource) TouchPosition(id ebiten.TouchID) (int, int) {
	p := f.touchPos[id]
	return p[0], p[1]
}
func (f *fakeSource) JustPressedTouches(ids []ebiten.TouchID) []ebiten.TouchID {
	return append(ids, f.newTouch...)
}
func (f *fakeSource) Touches(ids []ebiten.TouchID) []ebiten.TouchID {
	for id := range f.touchPos {
		ids = append(ids, id)
	}
	return ids
}

func kinds(evs []game.Event) []game.EventKind {
	out := make([]game.EventKind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func wantKinds(t *testing.T, evs []game.Event, want ...game.EventKind) {
	t.Helper()
	got := kinds(evs)
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestPoll_MouseDrag(t *testing.T) {
	p := newPoller()
	p.setSize(800, 600)
	src := newFakeSource()

	src.x, src.y = 100, 100
	p.poll(src) // first frame just records the cursor
	src.next()

	src.mDown[ebiten.MouseButtonLeft] = true
	evs := p.poll(src)
	wantKinds(t, evs, game.EventPointerDown)
	if e := evs[0]; e.PointerID != 0 || e.Button != game.ButtonPrimary || e.X != 100 || e.PointerType != game.PointerMouse {
		t.Fatalf("down = %+v", e)
	}
	src.next()

	src.x, src.y = 110, 105
	evs = p.poll(src)
	wantKinds(t, evs, game.EventPointerMove)
	if evs[0].X != 110 || evs[0].Y != 105 {
		t.Fatalf("move = %+v", evs[0])
	}
	src.next()

	// No motion, no event.
	wantKinds(t, p.poll(src))
	src.next()

	src.mUp[ebiten.MouseButtonLeft] = true
	wantKinds(t, p.poll(src), game.EventPointerUp)
}

func TestPoll_MoveWithoutButtonIsSilent(t *testing.T) {
	p := newPoller()
	src := newFakeSource()
	src.x, src.y = 50, 50
	wantKinds(t, p.poll(src))
}

func TestPoll_SecondaryButtonAndShift(t *testing.T) {
	p := newPoller()
	src := newFakeSource()
	src.held[ebiten.KeyShift] = true
	src.mDown[ebiten.MouseButtonRight] = true
	evs := p.poll(src)
	wantKinds(t, evs, game.EventPointerDown)
	if evs[0].Button != game.ButtonSecondary || !evs[0].Shift {
		t.Fatalf("down = %+v", evs[0])
	}
	src.next()

	// A second button while the first is held does not restart the pointer.
	src.mDown[ebiten.MouseButtonLeft] = true
	wantKinds(t, p.poll(src))
	src.next()
	src.mUp[ebiten.MouseButtonRight] = true
	wantKinds(t, p.poll(src))
	src.next()
	src.mUp[ebiten.MouseButtonLeft] = true
	wantKinds(t, p.poll(src), game.EventPointerUp)
}

func TestPoll_WheelUsesBrowserSign(t *testing.T) {
	p := newPoller()
	src := newFakeSource()
	src.x, src.y = 20, 30
	src.wheel = 1 // scroll up
	evs := p.poll(src)
	wantKinds(t, evs, game.EventWheel)
	if evs[0].DeltaY != -wheelLinePixels || evs[0].X != 20 || evs[0].Y != 30 {
		t.Fatalf("wheel = %+v", evs[0])
	}
}

func TestPoll_DragOffWindowLeaves(t *testing.T) {
	p := newPoller()
	p.setSize(800, 600)
	src := newFakeSource()
	src.mDown[ebiten.MouseButtonLeft] = true
	p.poll(src)
	src.next()

	src.x = 900
	wantKinds(t, p.poll(src), game.EventPointerLeave)
	src.next()
	src.x = 950
	wantKinds(t, p.poll(src))
	src.next()
	src.mUp[ebiten.MouseButtonLeft] = true
	wantKinds(t, p.poll(src))
}

func TestPoll_BlurCancelsPointers(t *testing.T) {
	p := newPoller()
	src := newFakeSource()
	src.mDown[ebiten.MouseButtonLeft] = true
	src.newTouch = []ebiten.TouchID{3}
	src.touchPos[3] = [2]int{10, 10}
	p.poll(src)
	src.next()

	src.focused = false
	evs := p.poll(src)
	if len(evs) != 3 || evs[0].Kind != game.EventBlur {
		t.Fatalf("events = %v, want blur then two cancels", kinds(evs))
	}
	for _, e := range evs[1:] {
		if e.Kind != game.EventPointerCancel {
			t.Fatalf("events = %v", kinds(evs))
		}
	}
	src.next()
	wantKinds(t, p.poll(src))
}

func TestPoll_Touches(t *testing.T) {
	p := newPoller()
	src := newFakeSource()

	src.newTouch = []ebiten.TouchID{0, 1}
	src.touchPos[0] = [2]int{100, 100}
	src.touchPos[1] = [2]int{200, 100}
	evs := p.poll(src)
	wantKinds(t, evs, game.EventPointerDown, game.EventPointerDown)
	if evs[0].PointerID != touchIDBase || evs[1].PointerID != touchIDBase+1 || evs[0].PointerType != game.PointerTouch {
		t.Fatalf("downs = %+v", evs)
	}
	src.next()

	src.touchPos[1] = [2]int{250, 100}
	evs = p.poll(src)
	wantKinds(t, evs, game.EventPointerMove)
	if evs[0].PointerID != touchIDBase+1 || evs[0].X != 250 {
		t.Fatalf("move = %+v", evs[0])
	}
	src.next()

	src.touchUp[1] = true
	evs = p.poll(src)
	wantKinds(t, evs, game.EventPointerUp)
	if evs[0].X != 250 {
		t.Fatalf("up carried %v, want last known position", evs[0].X)
	}
}

func TestPoll_SteeringKeys(t *testing.T) {
	p := newPoller()
	src := newFakeSource()
	src.keyDown[ebiten.KeyArrowLeft] = true
	src.keyDown[ebiten.KeyX] = true
	evs := p.poll(src)
	wantKinds(t, evs, game.EventKeyDown, game.EventKeyDown)
	if evs[0].Key != game.KeyLeft || evs[1].Key != game.KeyX {
		t.Fatalf("keys = %v %v", evs[0].Key, evs[1].Key)
	}
	src.next()
	src.keyUp[ebiten.KeyArrowLeft] = true
	evs = p.poll(src)
	wantKinds(t, evs, game.EventKeyUp)
	if evs[0].Key != game.KeyLeft {
		t.Fatalf("key up = %v", evs[0].Key)
	}
}

func TestPoll_DrivesSession(t *testing.T) {
	now := time.Unix(1000, 0)
	s := game.NewSession(game.FreePlayConfig(), game.WithClock(func() time.Time { return now }), game.WithSeed(1))
	s.Start()
	now = now.Add(time.Second)
	s.Tick()
	s.Handle(game.Event{Kind: game.EventResize, Width: 800, Height: 600})

	p := newPoller()
	p.setSize(800, 600)
	src := newFakeSource()
	src.x, src.y = 400, 300
	src.mDown[ebiten.MouseButtonLeft] = true
	for _, ev := range p.poll(src) {
		s.Handle(ev)
	}
	src.next()
	src.x = 460
	for _, ev := range p.poll(src) {
		s.Handle(ev)
	}

	if s.Player().Orientation.ApproxEqualThreshold(mgl64.QuatIdent(), 1e-9) {
		t.Fatal("drag did not rotate the player")
	}
}

func TestComputeLayout(t *testing.T) {
	l := computeLayout(1000, 800, false)
	if l.canvas.Dx() != 1000 || l.feedX != 1000 {
		t.Fatalf("canvas = %v feedX = %d", l.canvas, l.feedX)
	}
	if l.ref.Dx() != 256 || l.ref.Dx() != l.ref.Dy() {
		t.Fatalf("ref = %v, want 256 square", l.ref)
	}
	if l.ref.Max.X != 1000-refMargin || l.ref.Min.Y != refMargin {
		t.Fatalf("ref = %v, want top-right inset", l.ref)
	}

	f := computeLayout(1000, 800, true)
	if f.feedX != 1000-feedPanelWidth || f.canvas.Max.X != f.feedX || f.ref.Max.X != f.feedX-refMargin {
		t.Fatalf("with feed: %+v", f)
	}

	narrow := computeLayout(500, 800, true)
	if narrow.feedX != 500 {
		t.Fatalf("feed shown on a narrow window: %+v", narrow)
	}

	tiny := computeLayout(100, 100, false)
	if tiny.ref.Dx() > 100-2*refMargin {
		t.Fatalf("ref %v does not fit a 100px window", tiny.ref)
	}
}

func TestHUDLines(t *testing.T) {
	h := game.HUD{MatchPercent: 83, BestPercent: 91, Rounds: 2, TimerEnabled: true, Remaining: "01:05"}
	lines := hudLines(h, game.TimedConfig(), "night", true)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Match:  83%", "Best:  91%", "01:05", "Matched: 2", "night", "Sound: off"} {
		if !strings.Contains(joined, want) {
			t.Errorf("hud lines missing %q:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, "Mode:") {
		t.Error("timed HUD shows the mode toggle")
	}

	free := strings.Join(hudLines(game.HUD{}, game.FreePlayConfig(), "spring", false), "\n")
	if !strings.Contains(free, "Mode: rotate") || strings.Contains(free, "Time:") {
		t.Errorf("free-play lines:\n%s", free)
	}
	if !strings.Contains(helpLine(game.TimedConfig()), "Z/X") || strings.Contains(helpLine(game.FreePlayConfig()), "Z/X") {
		t.Error("help line does not follow the variant")
	}
}

func TestFeed_RingAndSync(t *testing.T) {
	f := NewFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(FeedEntry{Tick: i})
	}
	got := f.Recent()
	if len(got) != feedMaxEntries || got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("recent = %d entries, first %d", len(got), got[0].Tick)
	}

	sl := game.NewSimLog(true)
	sl.Add(1, 1, "target", "generated", "angle=10.0deg", 1)
	sl.AddVerbose(2, 1, "hud", "score", "pct=40", 0.4)
	sl.Add(3, 1, "round", "celebrate", "pct=81", 81)

	g := NewFeed()
	g.Sync(sl)
	g.Sync(sl)
	rec := g.Recent()
	if len(rec) != 2 {
		t.Fatalf("synced %d entries, want 2 without score samples or repeats", len(rec))
	}
	if rec[1].Category != "round" || rec[1].Message != "celebrate pct=81" {
		t.Fatalf("last = %+v", rec[1])
	}
}

func TestMix(t *testing.T) {
	if got := mix(panelFill, glowColor, 0); got != panelFill {
		t.Fatalf("mix at 0 = %v", got)
	}
	if got := mix(panelFill, glowColor, 1); got != glowColor {
		t.Fatalf("mix at 1 = %v", got)
	}
}
