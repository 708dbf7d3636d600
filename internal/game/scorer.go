package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ScoreBreakdown holds the three clamped sub-scores and their weighted
// total. Position is zero-weighted in the timed variant.
type ScoreBreakdown struct {
	Angle    float64
	Position float64
	Scale    float64
	Total    float64
}

// Breakdown compares player against target. Each sub-score is clamped to
// [0,1] before weighting.
func Breakdown(player, target Transform, w Weights) ScoreBreakdown {
	var b ScoreBreakdown
	b.Angle = clamp(1-player.AngleTo(target)/mgl64.DegToRad(angleToleranceDeg), 0, 1)
	b.Position = clamp(1-player.Position.Sub(target.Position).Len()/positionTolerance, 0, 1)
	b.Scale = clamp(1-math.Abs(player.Scale-target.Scale)/scaleTolerance, 0, 1)

	sum := w.Angle + w.Position + w.Scale
	if sum <= 0 {
		return b
	}
	// Normalized by the weight sum: a perfect match is exactly 1.
	b.Total = (b.Angle*w.Angle + b.Position*w.Position + b.Scale*w.Scale) / sum
	return b
}

// Score returns the weighted match score in [0,1].
func Score(player, target Transform, w Weights) float64 {
	return Breakdown(player, target, w).Total
}

// Percent is the rounded integer percentage shown on the HUD.
func Percent(score float64) int {
	return int(math.Round(clamp(score, 0, 1) * 100))
}
