package view

import (
	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelLinePixels converts one wheel notch into browser-style pixels.
const wheelLinePixels = 100

// touchIDBase keeps touch pointer ids clear of the mouse's id 0.
const touchIDBase = 1

const mousePointerID = 0

// inputSource is the slice of ebiten's input API the poller reads.
type inputSource interface {
	Focused() bool
	CursorPosition() (int, int)
	MouseJustPressed(b ebiten.MouseButton) bool
	MouseJustReleased(b ebiten.MouseButton) bool
	Wheel() (float64, float64)
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	KeyJustReleased(k ebiten.Key) bool
	JustPressedTouches(ids []ebiten.TouchID) []ebiten.TouchID
	Touches(ids []ebiten.TouchID) []ebiten.TouchID
	TouchJustReleased(id ebiten.TouchID) bool
	TouchPosition(id ebiten.TouchID) (int, int)
}

type ebitenSource struct{}

func (ebitenSource) Focused() bool                                 { return ebiten.IsFocused() }
func (ebitenSource) CursorPosition() (int, int)                    { return ebiten.CursorPosition() }
func (ebitenSource) MouseJustPressed(b ebiten.MouseButton) bool    { return inpututil.IsMouseButtonJustPressed(b) }
func (ebitenSource) MouseJustReleased(b ebiten.MouseButton) bool   { return inpututil.IsMouseButtonJustReleased(b) }
func (ebitenSource) Wheel() (float64, float64)                     { return ebiten.Wheel() }
func (ebitenSource) KeyPressed(k ebiten.Key) bool                  { return ebiten.IsKeyPressed(k) }
func (ebitenSource) KeyJustPressed(k ebiten.Key) bool              { return inpututil.IsKeyJustPressed(k) }
func (ebitenSource) KeyJustReleased(k ebiten.Key) bool             { return inpututil.IsKeyJustReleased(k) }
func (ebitenSource) TouchJustReleased(id ebiten.TouchID) bool      { return inpututil.IsTouchJustReleased(id) }
func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int)    { return ebiten.TouchPosition(id) }
func (ebitenSource) Touches(ids []ebiten.TouchID) []ebiten.TouchID { return ebiten.AppendTouchIDs(ids) }
func (ebitenSource) JustPressedTouches(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

var mouseButtons = []struct {
	b   ebiten.MouseButton
	dom int
}{
	{ebiten.MouseButtonLeft, game.ButtonPrimary},
	{ebiten.MouseButtonMiddle, game.ButtonMiddle},
	{ebiten.MouseButtonRight, game.ButtonSecondary},
}

var steeringKeys = []struct {
	k   ebiten.Key
	key game.Key
}{
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeyZ, game.KeyZ},
	{ebiten.KeyX, game.KeyX},
}

// poller turns per-frame ebiten input state into game events, the way a
// browser would have delivered them.
type poller struct {
	focused   bool
	mouseDown map[ebiten.MouseButton]bool
	cursorX   int
	cursorY   int
	touches   map[ebiten.TouchID][2]int
	width     int
	height    int

	ids []ebiten.TouchID
}

func newPoller() *poller {
	return &poller{
		focused:   true,
		mouseDown: make(map[ebiten.MouseButton]bool),
		touches:   make(map[ebiten.TouchID][2]int),
	}
}

func (p *poller) setSize(w, h int) { p.width, p.height = w, h }

func (p *poller) anyMouseDown() bool {
	for _, down := range p.mouseDown {
		if down {
			return true
		}
	}
	return false
}

func (p *poller) mouseEvent(kind game.EventKind, x, y, button int, shift bool) game.Event {
	return game.Event{
		Kind:        kind,
		PointerID:   mousePointerID,
		PointerType: game.PointerMouse,
		X:           float64(x),
		Y:           float64(y),
		Button:      button,
		Shift:       shift,
	}
}

func touchEvent(kind game.EventKind, id ebiten.TouchID, pos [2]int) game.Event {
	return game.Event{
		Kind:        kind,
		PointerID:   touchIDBase + int(id),
		PointerType: game.PointerTouch,
		X:           float64(pos[0]),
		Y:           float64(pos[1]),
	}
}

// poll reads one frame of input.
func (p *poller) poll(src inputSource) []game.Event {
	var evs []game.Event

	focused := src.Focused()
	if p.focused && !focused {
		evs = append(evs, game.Event{Kind: game.EventBlur})
		if p.anyMouseDown() {
			evs = append(evs, p.mouseEvent(game.EventPointerCancel, p.cursorX, p.cursorY, game.ButtonPrimary, false))
		}
		for id, pos := range p.touches {
			evs = append(evs, touchEvent(game.EventPointerCancel, id, pos))
		}
		clear(p.mouseDown)
		clear(p.touches)
	}
	p.focused = focused

	evs = p.pollMouse(src, evs)
	evs = p.pollTouches(src, evs)

	for _, sk := range steeringKeys {
		if src.KeyJustPressed(sk.k) {
			evs = append(evs, game.Event{Kind: game.EventKeyDown, Key: sk.key})
		}
		if src.KeyJustReleased(sk.k) {
			evs = append(evs, game.Event{Kind: game.EventKeyUp, Key: sk.key})
		}
	}
	return evs
}

func (p *poller) pollMouse(src inputSource, evs []game.Event) []game.Event {
	x, y := src.CursorPosition()
	shift := src.KeyPressed(ebiten.KeyShift)
	moved := x != p.cursorX || y != p.cursorY
	p.cursorX, p.cursorY = x, y

	if p.anyMouseDown() && moved {
		if p.outside(x, y) {
			evs = append(evs, p.mouseEvent(game.EventPointerLeave, x, y, game.ButtonPrimary, shift))
			clear(p.mouseDown)
		} else {
			evs = append(evs, p.mouseEvent(game.EventPointerMove, x, y, game.ButtonPrimary, shift))
		}
	}

	// One pointer id for the mouse: the first button down starts it and
	// the last button up ends it.
	for _, mb := range mouseButtons {
		if src.MouseJustPressed(mb.b) {
			if !p.anyMouseDown() {
				evs = append(evs, p.mouseEvent(game.EventPointerDown, x, y, mb.dom, shift))
			}
			p.mouseDown[mb.b] = true
		}
	}
	for _, mb := range mouseButtons {
		if src.MouseJustReleased(mb.b) && p.mouseDown[mb.b] {
			delete(p.mouseDown, mb.b)
			if !p.anyMouseDown() {
				evs = append(evs, p.mouseEvent(game.EventPointerUp, x, y, mb.dom, shift))
			}
		}
	}

	if _, yoff := src.Wheel(); yoff != 0 {
		evs = append(evs, game.Event{
			Kind:        game.EventWheel,
			PointerType: game.PointerMouse,
			X:           float64(x),
			Y:           float64(y),
			DeltaY:      -yoff * wheelLinePixels,
		})
	}
	return evs
}

func (p *poller) pollTouches(src inputSource, evs []game.Event) []game.Event {
	// Releases first so a lifted finger never pairs with a new one.
	for id, pos := range p.touches {
		if src.TouchJustReleased(id) {
			evs = append(evs, touchEvent(game.EventPointerUp, id, pos))
			delete(p.touches, id)
		}
	}

	p.ids = src.JustPressedTouches(p.ids[:0])
	for _, id := range p.ids {
		x, y := src.TouchPosition(id)
		pos := [2]int{x, y}
		p.touches[id] = pos
		evs = append(evs, touchEvent(game.EventPointerDown, id, pos))
	}

	p.ids = src.Touches(p.ids[:0])
	for _, id := range p.ids {
		old, ok := p.touches[id]
		if !ok {
			continue
		}
		x, y := src.TouchPosition(id)
		if pos := [2]int{x, y}; pos != old {
			p.touches[id] = pos
			evs = append(evs, touchEvent(game.EventPointerMove, id, pos))
		}
	}
	return evs
}

func (p *poller) outside(x, y int) bool {
	if p.width <= 0 || p.height <= 0 {
		return false
	}
	return x < 0 || y < 0 || x >= p.width || y >= p.height
}
