package game

// RoundPhase is the derived state of the round machine.
type RoundPhase int

const (
	PhaseIdle RoundPhase = iota
	PhaseCelebrating
	PhaseAdvancing
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCelebrating:
		return "celebrating"
	case PhaseAdvancing:
		return "advancing"
	default:
		return "unknown"
	}
}

// RoundState gates the one-time celebration and the single pending
// advance of the current round. Both flags reset with every new target.
type RoundState struct {
	HasCelebrated bool
	IsAdvancing   bool
}

// Phase derives the machine state from the flags.
func (r RoundState) Phase() RoundPhase {
	switch {
	case r.IsAdvancing:
		return PhaseAdvancing
	case r.HasCelebrated:
		return PhaseCelebrating
	default:
		return PhaseIdle
	}
}

// Observe feeds one frame's match percentage. celebrate is true on the
// first frame at or above threshold; schedule is true when an advance
// must be queued. Neither fires again until Reset, so an advance stays
// committed even if the score drops back below threshold.
func (r *RoundState) Observe(pct, threshold int) (celebrate, schedule bool) {
	if pct < threshold {
		return false, false
	}
	if !r.HasCelebrated {
		r.HasCelebrated = true
		celebrate = true
	}
	if !r.IsAdvancing {
		r.IsAdvancing = true
		schedule = true
	}
	return celebrate, schedule
}

// Reset clears both flags for a new target.
func (r *RoundState) Reset() {
	*r = RoundState{}
}
