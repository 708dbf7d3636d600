package game

import "fmt"

// Status banner texts.
const (
	statusKeepGoing = "Keep rotating to match!"
	statusClose     = "Very close! Fine-tune it."
	statusMatched   = "Great match! Next angle..."
)

// HUD is everything the output sink displays for one frame. Nothing flows
// back from it.
type HUD struct {
	MatchPercent int
	BestPercent  int
	Status       string
	Glow         float64 // 0..1 banner highlight

	TimerEnabled bool
	Remaining    string // MM:SS, timed variant only
	Ended        bool

	Rounds    int
	Mode      InputMode
	Phase     RoundPhase
	Breakdown ScoreBreakdown
}

// bannerGlow ramps from 0 at 70% to 1 at 100%.
func bannerGlow(pct int) float64 {
	return clamp(float64(pct-closeThreshold)/30, 0, 1)
}

func statusFor(pct int, celebrated, ended bool, rounds int) string {
	switch {
	case ended:
		return timeUpStatus(rounds)
	case celebrated:
		return statusMatched
	case pct >= closeThreshold:
		return statusClose
	default:
		return statusKeepGoing
	}
}

func timeUpStatus(rounds int) string {
	if rounds == 1 {
		return "Time's up! 1 pose matched."
	}
	return fmt.Sprintf("Time's up! %d poses matched.", rounds)
}

// ShareLine is the one-line summary copied to the clipboard.
func (h HUD) ShareLine(v Variant) string {
	if h.TimerEnabled {
		return fmt.Sprintf("Egg Match (%s): %d poses matched in %s, best %d%%", v, h.Rounds, FormatClock(timedSessionSecs), h.BestPercent)
	}
	return fmt.Sprintf("Egg Match (%s): %d poses matched, best %d%%", v, h.Rounds, h.BestPercent)
}
