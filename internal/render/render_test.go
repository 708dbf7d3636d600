package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/go-gl/mathgl/mgl64"
)

func projectPose(t game.Transform, cam Camera, drop float64) Frame {
	m := EggMesh(24, 32)
	return Project(m, cam.Model(t, drop), cam.ViewProj(800.0/600.0), t.Orientation, 800, 600)
}

func TestEggMesh_Counts(t *testing.T) {
	m := EggMesh(8, 12)
	if got, want := len(m.Positions), 9*13; got != want {
		t.Fatalf("vertices = %d, want %d", got, want)
	}
	// Two triangles per quad, minus one per quad on each pole row.
	if got, want := m.TriangleCount(), 2*8*12-2*12; got != want {
		t.Fatalf("triangles = %d, want %d", got, want)
	}
	for i, n := range m.Normals {
		if math.Abs(n.Len()-1) > 1e-9 {
			t.Fatalf("normal %d not unit: %v", i, n)
		}
	}
}

func TestEggMesh_ClampsDegenerate(t *testing.T) {
	m := EggMesh(0, 1)
	if m.TriangleCount() == 0 {
		t.Fatal("degenerate arguments produced an empty mesh")
	}
}

func TestProject_CentredAndAboutHalfVisible(t *testing.T) {
	m := EggMesh(24, 32)
	f := projectPose(game.IdentityTransform(), GameCamera, 0)

	vis := len(f.Indices) / 3
	frac := float64(vis) / float64(m.TriangleCount())
	if frac < 0.35 || frac > 0.65 {
		t.Fatalf("visible fraction = %.2f, want about half", frac)
	}

	minX, minY, maxX, maxY, ok := f.Bounds()
	if !ok {
		t.Fatal("nothing visible")
	}
	if cx := (minX + maxX) / 2; math.Abs(cx-400) > 2 {
		t.Fatalf("horizontal centre = %.1f, want 400", cx)
	}
	if minY >= 300 || maxY <= 300 {
		t.Fatalf("egg spans y %.0f..%.0f, want it across the screen centre", minY, maxY)
	}
}

func TestProject_ScaleEnlarges(t *testing.T) {
	small := game.IdentityTransform()
	big := game.IdentityTransform()
	big.Scale = 1.5

	x0, _, x1, _, _ := projectPose(small, GameCamera, 0).Bounds()
	X0, _, X1, _, _ := projectPose(big, GameCamera, 0).Bounds()
	if X1-X0 <= (x1-x0)*1.3 {
		t.Fatalf("width %.0f at scale 1.5 vs %.0f at 1", X1-X0, x1-x0)
	}
}

func TestProject_DropOffsetLifts(t *testing.T) {
	_, y0, _, _, _ := projectPose(game.IdentityTransform(), GameCamera, 0).Bounds()
	_, y1, _, _, _ := projectPose(game.IdentityTransform(), GameCamera, 1.0).Bounds()
	if y1 >= y0 {
		t.Fatalf("top edge %.0f with drop offset, %.0f without", y1, y0)
	}
}

func TestProject_ReferenceCameraSmaller(t *testing.T) {
	x0, _, x1, _, _ := projectPose(game.IdentityTransform(), GameCamera, 0).Bounds()
	r0, _, r1, _, _ := projectPose(game.IdentityTransform(), ReferenceCamera, 0).Bounds()
	if r1-r0 >= x1-x0 {
		t.Fatalf("reference width %.0f not smaller than game width %.0f", r1-r0, x1-x0)
	}
}

func TestShade_Bounds(t *testing.T) {
	for _, n := range []mgl64.Vec3{{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {0, -1, 0}, mgl64.Vec3{2.6, 2.3, 2.0}.Normalize()} {
		s := Shade(n)
		for c, v := range s {
			if v < Ambient*exposure-1e-12 || v > 1 {
				t.Fatalf("Shade(%v)[%d] = %v", n, c, v)
			}
		}
	}
	lit := Shade(mgl64.Vec3{2.6, 2.3, 2.0}.Normalize())
	dark := Shade(mgl64.Vec3{0, -1, 0})
	if lit[0] <= dark[0] {
		t.Fatalf("key-facing %v not brighter than underside %v", lit, dark)
	}
}

func TestRaycast_CentreHitCornerMiss(t *testing.T) {
	grid := Raycast(game.IdentityTransform(), GameCamera, 0, 40, 20, 2, nil)
	if len(grid) != 20 || len(grid[0]) != 40 {
		t.Fatalf("grid %dx%d", len(grid), len(grid[0]))
	}
	if !grid[10][20].Hit {
		t.Fatal("centre ray missed")
	}
	if grid[10][20].Ch == ' ' {
		t.Fatal("hit cell drawn blank")
	}
	for _, rc := range [][2]int{{0, 0}, {0, 39}, {19, 0}, {19, 39}} {
		if grid[rc[0]][rc[1]].Hit {
			t.Fatalf("corner %v hit", rc)
		}
	}
}

func TestRaycast_TintsFromSkin(t *testing.T) {
	skin := image.NewUniform(color.RGBA{R: 255, A: 255})
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, skin.C)
		}
	}
	c := Raycast(game.IdentityTransform(), GameCamera, 0, 40, 20, 2, img)[10][20]
	if c.R == 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("cell colour = %d,%d,%d, want pure red tint", c.R, c.G, c.B)
	}
}

func TestRaycast_Empty(t *testing.T) {
	if Raycast(game.IdentityTransform(), GameCamera, 0, 0, 10, 2, nil) != nil {
		t.Fatal("zero columns should give nil")
	}
}

func TestSphereUV_MatchesMesh(t *testing.T) {
	m := EggMesh(6, 8)
	for i, p := range m.Positions {
		uv := m.UVs[i]
		if uv[1] == 0 || uv[1] == 1 || uv[0] == 1 {
			continue // poles and the duplicated seam are ambiguous
		}
		u, v := sphereUV(sphereSpace(p))
		if math.Abs(u-uv[0]) > 1e-9 || math.Abs(v-uv[1]) > 1e-9 {
			t.Fatalf("vertex %d: uv (%v,%v), want %v", i, u, v, uv)
		}
	}
}
