package game

import "time"

// EaseOutBounce is the standard four-segment bounce-out curve on [0,1].
func EaseOutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		x := t - 1.5/d1
		return n1*x*x + 0.75
	case t < 2.5/d1:
		x := t - 2.25/d1
		return n1*x*x + 0.9375
	default:
		x := t - 2.625/d1
		return n1*x*x + 0.984375
	}
}

// DropOffset is the vertical offset after elapsed time: height at the
// start, bouncing down to exactly 0 once the duration has passed.
func DropOffset(elapsed, duration time.Duration, height float64) float64 {
	if duration <= 0 {
		return 0
	}
	p := clamp(float64(elapsed)/float64(duration), 0, 1)
	if p >= 1 {
		return 0
	}
	return (1 - EaseOutBounce(p)) * height
}

// DropIn tracks the entrance animation played for each new target. Input
// is locked while it is active.
type DropIn struct {
	Duration time.Duration
	Height   float64

	active bool
	start  time.Time
	offset float64
}

// Start (re)triggers the animation at now.
func (d *DropIn) Start(now time.Time) {
	d.active = true
	d.start = now
	d.offset = d.Height
}

// Update advances the animation to now and returns the current offset.
func (d *DropIn) Update(now time.Time) float64 {
	if !d.active {
		return d.offset
	}
	elapsed := now.Sub(d.start)
	d.offset = DropOffset(elapsed, d.Duration, d.Height)
	if elapsed >= d.Duration {
		d.active = false
		d.offset = 0
	}
	return d.offset
}

// Active reports whether the animation is still running.
func (d *DropIn) Active() bool { return d.active }

// Offset is the last computed vertical offset.
func (d *DropIn) Offset() float64 { return d.offset }
