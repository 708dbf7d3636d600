package render

import (
	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera on the +Z axis looking down -Z, plus the
// visual scale applied to whatever egg it shows.
type Camera struct {
	FovDeg float64
	Y, Z   float64
	Near   float64
	Far    float64

	// VisualScale and PositionScale shrink the egg and its offset; the
	// reference view uses them to fit the smaller panel.
	VisualScale   float64
	PositionScale float64
}

var (
	// GameCamera frames the player's egg.
	GameCamera = Camera{FovDeg: 44, Y: 0.1, Z: 3.1, Near: 0.1, Far: 30, VisualScale: 1, PositionScale: 1}
	// ReferenceCamera frames the target egg in the reference panel.
	ReferenceCamera = Camera{FovDeg: 36, Y: 0.08, Z: 3.45, Near: 0.1, Far: 30, VisualScale: 0.72, PositionScale: 0.55}
)

// Eye returns the camera position in world space.
func (c Camera) Eye() mgl64.Vec3 { return mgl64.Vec3{0, c.Y, c.Z} }

// ViewProj is projection * view for the given viewport aspect (w/h).
func (c Camera) ViewProj(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	eye := c.Eye()
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovDeg), aspect, c.Near, c.Far)
	view := mgl64.LookAtV(eye, eye.Sub(mgl64.Vec3{0, 0, 1}), mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Model places an egg with pose t, lifted by dropOffset, as seen by c.
func (c Camera) Model(t game.Transform, dropOffset float64) mgl64.Mat4 {
	pos := t.Position.Mul(c.PositionScale)
	pos[1] += dropOffset
	s := t.Scale * c.VisualScale
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(t.Orientation.Mat4()).
		Mul4(mgl64.Scale3D(s, s, s))
}
