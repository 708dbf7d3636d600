package term

import (
	"time"

	"github.com/Garsondee/Egg-Match/internal/game"
)

// Terminals report presses and auto-repeats but never releases. A key
// counts as held until no repeat has arrived for a while.
const (
	firstHold  = 520 * time.Millisecond // covers the usual auto-repeat delay
	repeatHold = 90 * time.Millisecond
)

// heldKeys synthesizes key-up events from press timing.
type heldKeys struct {
	until map[game.Key]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[game.Key]time.Time)}
}

// press records a press or repeat and reports whether it is a new hold.
func (h *heldKeys) press(k game.Key, now time.Time) bool {
	_, held := h.until[k]
	if held {
		h.until[k] = now.Add(repeatHold)
	} else {
		h.until[k] = now.Add(firstHold)
	}
	return !held
}

// expire returns the keys whose hold has lapsed, in Key order.
func (h *heldKeys) expire(now time.Time) []game.Key {
	var out []game.Key
	for k := game.KeyUp; k <= game.KeyX; k++ {
		if t, ok := h.until[k]; ok && !now.Before(t) {
			delete(h.until, k)
			out = append(out, k)
		}
	}
	return out
}

// releaseAll drops every hold.
func (h *heldKeys) releaseAll() []game.Key {
	var out []game.Key
	for k := game.KeyUp; k <= game.KeyX; k++ {
		if _, ok := h.until[k]; ok {
			out = append(out, k)
		}
	}
	clear(h.until)
	return out
}
