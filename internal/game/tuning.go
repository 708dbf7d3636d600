package game

import "time"

// Transform bounds.
const (
	posBound = 0.85
	minScale = 0.72
	maxScale = 1.35
)

// Input sensitivities. Pointer values are per screen pixel, wheel per
// browser-style delta unit, keyboard values per frame.
const (
	dragRotateSensitivity    = 0.0098 // radians per pixel
	dragTranslateSensitivity = 0.0022
	panSensitivity           = 0.0019
	pinchSensitivity         = 0.0024
	wheelSensitivity         = 0.0008
	keyRotateStep            = 0.035 // radians per frame
	keyScaleStep             = 0.012
)

// Scoring tolerances: a sub-score reaches 0 at these deviations.
const (
	angleToleranceDeg = 65.0
	positionTolerance = 0.55
	scaleTolerance    = 0.45
)

// Round flow.
const (
	matchThreshold   = 80 // percent, compared against the displayed value
	closeThreshold   = 70 // "very close" banner
	advanceDelay     = 700 * time.Millisecond
	timedSessionSecs = 179
)

// Drop-in animation.
const (
	dropDuration = 900 * time.Millisecond
	dropHeight   = 1.7
)

// Target ranges, as full spreads in degrees (sampled ±spread/2).
const (
	targetPitchSpreadDeg = 90.0
	targetYawSpreadDeg   = 150.0
	targetRollSpreadDeg  = 35.0
	targetScaleMin       = 0.92
	targetScaleMax       = 1.08
	targetPosXSpread     = 0.12
	targetPosYMin        = -0.08
	targetPosYMax        = 0.10
)
