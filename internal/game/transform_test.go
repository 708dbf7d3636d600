package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestScaleBy_StaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := IdentityTransform()
	for i := 0; i < 5000; i++ {
		tr.ScaleBy((rng.Float64()-0.5)*2, minScale, maxScale)
		if tr.Scale < minScale || tr.Scale > maxScale {
			t.Fatalf("step %d: scale %.4f escaped [%.2f, %.2f]", i, tr.Scale, minScale, maxScale)
		}
	}
}

func TestTranslateBy_StaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tr := IdentityTransform()
	for i := 0; i < 5000; i++ {
		tr.TranslateBy((rng.Float64()-0.5)*3, (rng.Float64()-0.5)*3, posBound)
		for axis := 0; axis < 2; axis++ {
			if math.Abs(tr.Position[axis]) > posBound {
				t.Fatalf("step %d: position[%d]=%.4f escaped ±%.2f", i, axis, tr.Position[axis], posBound)
			}
		}
	}
	if tr.Position[2] != 0 {
		t.Fatalf("translate must never touch Z, got %.4f", tr.Position[2])
	}
}

func TestTranslateBy_ClampsEachAxisIndependently(t *testing.T) {
	tr := IdentityTransform()
	tr.TranslateBy(5, -0.1, posBound)
	if tr.Position[0] != posBound {
		t.Fatalf("expected X clamped to %.2f, got %.4f", posBound, tr.Position[0])
	}
	if math.Abs(tr.Position[1]+0.1) > 1e-12 {
		t.Fatalf("expected Y=-0.1 untouched by X clamp, got %.4f", tr.Position[1])
	}
}

func TestZeroDeltas_AreNoOps(t *testing.T) {
	tr := Transform{
		Orientation: mgl64.QuatRotate(0.4, mgl64.Vec3{0, 0, 1}),
		Position:    mgl64.Vec3{0.2, -0.3, 0},
		Scale:       1.1,
	}
	before := tr
	tr.RotateBy(0, 0)
	tr.TranslateBy(0, 0, posBound)
	tr.ScaleBy(0, minScale, maxScale)
	if tr != before {
		t.Fatalf("zero deltas changed the transform: %+v -> %+v", before, tr)
	}
}

func TestReset_RestPose(t *testing.T) {
	tr := IdentityTransform()
	tr.RotateBy(1.2, -0.7)
	tr.TranslateBy(0.4, 0.4, posBound)
	tr.ScaleBy(0.3, minScale, maxScale)
	tr.Reset()
	if tr != IdentityTransform() {
		t.Fatalf("expected rest pose after Reset, got %+v", tr)
	}
}

func TestRotateBy_PreMultipliesYawThenPitch(t *testing.T) {
	start := mgl64.QuatRotate(0.3, mgl64.Vec3{0, 0, 1})
	tr := Transform{Orientation: start, Scale: 1}
	tr.RotateBy(0.5, 0.25)

	yaw := mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(0.25, mgl64.Vec3{1, 0, 0})
	want := pitch.Mul(yaw.Mul(start))
	if !tr.Orientation.ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("world-space composition mismatch: got %v want %v", tr.Orientation, want)
	}

	// Local-space (post-multiplied) composition differs for this input.
	local := start.Mul(yaw).Mul(pitch)
	if tr.Orientation.ApproxEqualThreshold(local, 1e-6) {
		t.Fatalf("rotation must not be applied in local space")
	}
}

func TestRotateBy_OrderMatters(t *testing.T) {
	a := IdentityTransform()
	a.RotateBy(0.8, 0)
	a.RotateBy(0, 0.6)

	b := IdentityTransform()
	b.RotateBy(0, 0.6)
	b.RotateBy(0.8, 0)

	if a.AngleTo(b) < 1e-3 {
		t.Fatalf("yaw-then-pitch and pitch-then-yaw should differ, angle=%.6f", a.AngleTo(b))
	}
}

func TestRotateBy_StaysUnitAfterLongDrag(t *testing.T) {
	tr := IdentityTransform()
	for i := 0; i < 20000; i++ {
		tr.RotateBy(0.0098*3, -0.0098*2)
	}
	if l := tr.Orientation.Len(); math.Abs(l-1) > 1e-9 {
		t.Fatalf("orientation drifted off unit length: %.15f", l)
	}
}

func TestAngleTo(t *testing.T) {
	id := IdentityTransform()
	cases := []struct {
		name  string
		q     mgl64.Quat
		angle float64
	}{
		{"identity", mgl64.QuatIdent(), 0},
		{"quarter yaw", mgl64.QuatRotate(math.Pi/2, axisY), math.Pi / 2},
		{"half turn", mgl64.QuatRotate(math.Pi, axisX), math.Pi},
		{"negated quat same rotation", mgl64.Quat{W: -1}, 0},
	}
	for _, tc := range cases {
		other := Transform{Orientation: tc.q, Scale: 1}
		if got := id.AngleTo(other); math.Abs(got-tc.angle) > 1e-9 {
			t.Fatalf("%s: expected angle %.6f, got %.6f", tc.name, tc.angle, got)
		}
	}
}

func TestAngleTo_IdenticalIsExactlyZero(t *testing.T) {
	q := EulerSample{Pitch: 0.31, Yaw: -1.1, Roll: 0.2}.Quat()
	a := Transform{Orientation: q, Scale: 1}
	if got := a.AngleTo(a); got != 0 {
		t.Fatalf("expected exactly 0 for identical orientations, got %g", got)
	}
}
