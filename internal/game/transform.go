package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisY = mgl64.Vec3{0, 1, 0}
	axisX = mgl64.Vec3{1, 0, 0}
)

// Transform is the orientation, position and uniform scale of an egg.
// The same type carries both the player pose and the target pose.
type Transform struct {
	Orientation mgl64.Quat
	Position    mgl64.Vec3
	Scale       float64
}

// IdentityTransform is the rest pose: no rotation, origin, scale 1.
func IdentityTransform() Transform {
	return Transform{Orientation: mgl64.QuatIdent(), Scale: 1}
}

// Reset puts t back into the rest pose.
func (t *Transform) Reset() {
	*t = IdentityTransform()
}

// RotateBy applies a yaw about world Y and then a pitch about world X.
// Both rotations are pre-multiplied, so they act in world space:
// q' = pitch * (yaw * q).
func (t *Transform) RotateBy(yaw, pitch float64) {
	if yaw == 0 && pitch == 0 {
		return
	}
	qYaw := mgl64.QuatRotate(yaw, axisY)
	qPitch := mgl64.QuatRotate(pitch, axisX)
	q := qYaw.Mul(t.Orientation)
	q = qPitch.Mul(q)
	// Renormalize against float drift over long drags.
	t.Orientation = q.Normalize()
}

// TranslateBy shifts X/Y and clamps each component to ±bound.
func (t *Transform) TranslateBy(dx, dy, bound float64) {
	if dx == 0 && dy == 0 {
		return
	}
	t.Position[0] = clamp(t.Position[0]+dx, -bound, bound)
	t.Position[1] = clamp(t.Position[1]+dy, -bound, bound)
}

// ScaleBy adds delta to the uniform scale and clamps to [lo, hi].
func (t *Transform) ScaleBy(delta, lo, hi float64) {
	if delta == 0 {
		return
	}
	t.Scale = clamp(t.Scale+delta, lo, hi)
}

// AngleTo returns the rotation angle in radians between the orientations
// of t and o, in [0, π].
func (t Transform) AngleTo(o Transform) float64 {
	return angleBetween(t.Orientation, o.Orientation)
}

// angleBetween measures the relative rotation a⁻¹·b. Identical inputs
// give exactly 0.
func angleBetween(a, b mgl64.Quat) float64 {
	rel := a.Conjugate().Mul(b)
	return 2 * math.Atan2(rel.V.Len(), math.Abs(rel.W))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
