package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// EulerSample is one sampled target orientation, in radians, applied in
// XYZ order.
type EulerSample struct {
	Pitch float64 // X
	Yaw   float64 // Y
	Roll  float64 // Z
}

// Quat converts the XYZ Euler triple to a unit quaternion.
func (e EulerSample) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(e.Pitch, e.Yaw, e.Roll, mgl64.XYZ).Normalize()
}

// TargetGenerator produces random target poses within the fixed ranges.
// Position is sampled only when pinned is false.
type TargetGenerator struct {
	rng    *rand.Rand
	pinned bool

	// override replaces the random draw entirely. Tests use it to force a
	// neutral target.
	override func(*rand.Rand) Transform
}

// NewTargetGenerator builds a generator reading from rng. Pass
// pinPosition=true for the timed variant, which keeps targets at the origin.
func NewTargetGenerator(rng *rand.Rand, pinPosition bool) *TargetGenerator {
	return &TargetGenerator{rng: rng, pinned: pinPosition}
}

// randSpread returns a value in [-spread/2, spread/2).
func randSpread(rng *rand.Rand, spread float64) float64 {
	return spread * (0.5 - rng.Float64())
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func sampleEuler(rng *rand.Rand) EulerSample {
	return EulerSample{
		Pitch: mgl64.DegToRad(randSpread(rng, targetPitchSpreadDeg)),
		Yaw:   mgl64.DegToRad(randSpread(rng, targetYawSpreadDeg)),
		Roll:  mgl64.DegToRad(randSpread(rng, targetRollSpreadDeg)),
	}
}

// NeutralTarget always returns the rest pose.
func NeutralTarget(*rand.Rand) Transform { return IdentityTransform() }

// Generate draws a new target Transform.
func (g *TargetGenerator) Generate() Transform {
	if g.override != nil {
		t := g.override(g.rng)
		if g.pinned {
			t.Position = mgl64.Vec3{}
		}
		return t
	}
	e := sampleEuler(g.rng)
	t := Transform{
		Orientation: e.Quat(),
		Scale:       randRange(g.rng, targetScaleMin, targetScaleMax),
	}
	if !g.pinned {
		t.Position = mgl64.Vec3{
			randSpread(g.rng, targetPosXSpread),
			randRange(g.rng, targetPosYMin, targetPosYMax),
			0,
		}
	}
	return t
}
