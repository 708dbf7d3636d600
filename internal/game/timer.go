package game

import (
	"fmt"
	"time"
)

// Timer is the one-way countdown of the timed variant. Once it has ended
// it stays ended for the rest of the session.
type Timer struct {
	total     int
	start     time.Time
	remaining int
	ended     bool
}

// NewTimer creates a stopped countdown of totalSecs seconds.
func NewTimer(totalSecs int) *Timer {
	return &Timer{total: totalSecs, remaining: totalSecs}
}

// Start anchors the countdown at now.
func (t *Timer) Start(now time.Time) {
	t.start = now
	t.remaining = t.total
	t.ended = false
}

// Update recomputes the remaining whole seconds and reports whether the
// timer ended on this call. It reports true at most once.
func (t *Timer) Update(now time.Time) bool {
	if t.ended {
		return false
	}
	elapsed := int(now.Sub(t.start) / time.Second)
	t.remaining = t.total - elapsed
	if t.remaining <= 0 {
		t.remaining = 0
		t.ended = true
		return true
	}
	return false
}

// Remaining returns whole seconds left, never negative.
func (t *Timer) Remaining() int { return t.remaining }

// Ended reports whether the countdown has reached zero.
func (t *Timer) Ended() bool { return t.ended }

// String formats the remaining time as MM:SS.
func (t *Timer) String() string { return FormatClock(t.remaining) }

// FormatClock renders seconds as MM:SS.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
