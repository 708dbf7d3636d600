package game

import "time"

// Variant names the two game flavours.
type Variant int

const (
	VariantFreePlay Variant = iota
	VariantTimed
)

func (v Variant) String() string {
	switch v {
	case VariantFreePlay:
		return "free"
	case VariantTimed:
		return "timed"
	default:
		return "unknown"
	}
}

// ParseVariant maps a flag value to a Variant. Unknown names fall back to
// free play and report ok=false.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "free", "free-play", "freeplay":
		return VariantFreePlay, true
	case "timed", "challenge":
		return VariantTimed, true
	default:
		return VariantFreePlay, false
	}
}

// Weights are the per-term contributions to the match score.
type Weights struct {
	Angle    float64
	Position float64
	Scale    float64
}

// Sensitivity holds the fixed input-to-transform gains.
type Sensitivity struct {
	DragRotate    float64
	DragTranslate float64
	Pan           float64
	Pinch         float64
	Wheel         float64
	KeyRotate     float64
	KeyScale      float64
}

// Config parameterizes one Session. The two presets below cover both
// variants; everything else is shared.
type Config struct {
	Variant Variant

	AllowPositionMatch    bool // target position sampled, position term scored, translate input enabled
	AllowManualModeToggle bool
	AllowKeyboardInput    bool
	TimerEnabled          bool
	TimerSeconds          int

	Weights     Weights
	Sensitivity Sensitivity
	Bounds      Bounds

	Threshold    int // percent
	AdvanceDelay time.Duration

	DropDuration time.Duration
	DropHeight   float64
}

// Bounds are the clamps applied on every player mutation.
type Bounds struct {
	Pos      float64
	MinScale float64
	MaxScale float64
}

func defaultSensitivity() Sensitivity {
	return Sensitivity{
		DragRotate:    dragRotateSensitivity,
		DragTranslate: dragTranslateSensitivity,
		Pan:           panSensitivity,
		Pinch:         pinchSensitivity,
		Wheel:         wheelSensitivity,
		KeyRotate:     keyRotateStep,
		KeyScale:      keyScaleStep,
	}
}

// DefaultBounds returns the player clamps shared by both variants.
func DefaultBounds() Bounds {
	return Bounds{Pos: posBound, MinScale: minScale, MaxScale: maxScale}
}

// FreePlayConfig is the untimed variant: position matching, manual
// rotate/move toggle, no keyboard steering.
func FreePlayConfig() Config {
	return Config{
		Variant:               VariantFreePlay,
		AllowPositionMatch:    true,
		AllowManualModeToggle: true,
		Weights:               Weights{Angle: 0.70, Position: 0.20, Scale: 0.10},
		Sensitivity:           defaultSensitivity(),
		Bounds:                DefaultBounds(),
		Threshold:             matchThreshold,
		AdvanceDelay:          advanceDelay,
		DropDuration:          dropDuration,
		DropHeight:            dropHeight,
	}
}

// TimedConfig is the 179 second challenge: rotation and scale only, with
// keyboard controls.
func TimedConfig() Config {
	return Config{
		Variant:            VariantTimed,
		AllowKeyboardInput: true,
		TimerEnabled:       true,
		TimerSeconds:       timedSessionSecs,
		Weights:            Weights{Angle: 0.85, Scale: 0.15},
		Sensitivity:        defaultSensitivity(),
		Bounds:             DefaultBounds(),
		Threshold:          matchThreshold,
		AdvanceDelay:       advanceDelay,
		DropDuration:       dropDuration,
		DropHeight:         dropHeight,
	}
}

// ConfigFor returns the preset for v.
func ConfigFor(v Variant) Config {
	if v == VariantTimed {
		return TimedConfig()
	}
	return FreePlayConfig()
}
