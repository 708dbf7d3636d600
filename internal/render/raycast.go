package render

import (
	"image"
	"math"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/go-gl/mathgl/mgl64"
)

// Cell is one character of a raycast frame.
type Cell struct {
	Ch      rune
	R, G, B uint8
	Hit     bool
}

// shadeRamp runs from darkest to brightest.
const shadeRamp = " .:-=+*#%@"

// Raycast renders pose t as a rows×cols character grid by casting one ray
// per cell against the egg. cellAspect is the height of a cell over its
// width. skin may be nil, in which case hits are white.
func Raycast(t game.Transform, cam Camera, dropOffset float64, cols, rows int, cellAspect float64, skin image.Image) [][]Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	if cellAspect <= 0 {
		cellAspect = 2
	}
	aspect := float64(cols) / (float64(rows) * cellAspect)
	invVP := cam.ViewProj(aspect).Inv()
	invModel := cam.Model(t, dropOffset).Inv()

	grid := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]Cell, cols)
		ny := 1 - (float64(r)+0.5)/float64(rows)*2
		for c := 0; c < cols; c++ {
			nx := (float64(c)+0.5)/float64(cols)*2 - 1
			grid[r][c] = castCell(invVP, invModel, t.Orientation, nx, ny, skin)
		}
	}
	return grid
}

func castCell(invVP, invModel mgl64.Mat4, rot mgl64.Quat, nx, ny float64, skin image.Image) Cell {
	near := unproject(invVP, nx, ny, -1)
	far := unproject(invVP, nx, ny, 1)
	o := invModel.Mul4x1(near.Vec4(1)).Vec3()
	e := invModel.Mul4x1(far.Vec4(1)).Vec3()

	// Work on the unit sphere: subtract the centre and divide by the radii.
	ou := sphereSpace(o)
	du := sphereSpace(e).Sub(ou)

	a := du.Dot(du)
	b := 2 * ou.Dot(du)
	k := ou.Dot(ou) - 1
	disc := b*b - 4*a*k
	if a == 0 || disc < 0 {
		return Cell{Ch: ' '}
	}
	s := (-b - math.Sqrt(disc)) / (2 * a)
	if s < 0 {
		return Cell{Ch: ' '}
	}
	unit := ou.Add(du.Mul(s))

	light := Shade(rot.Rotate(ellipsoidNormal(unit)))
	lum := (light[0] + light[1] + light[2]) / 3
	idx := int(lum * float64(len(shadeRamp)))
	if idx >= len(shadeRamp) {
		idx = len(shadeRamp) - 1
	}
	if idx < 1 {
		idx = 1
	}

	cr, cg, cb := 1.0, 1.0, 1.0
	if skin != nil {
		u, v := sphereUV(unit)
		bnd := skin.Bounds()
		px := bnd.Min.X + int(u*float64(bnd.Dx()-1))
		py := bnd.Min.Y + int(v*float64(bnd.Dy()-1))
		r32, g32, b32, _ := skin.At(px, py).RGBA()
		cr, cg, cb = float64(r32)/0xffff, float64(g32)/0xffff, float64(b32)/0xffff
	}
	return Cell{
		Ch:  rune(shadeRamp[idx]),
		R:   uint8(math.Min(cr*light[0], 1) * 255),
		G:   uint8(math.Min(cg*light[1], 1) * 255),
		B:   uint8(math.Min(cb*light[2], 1) * 255),
		Hit: true,
	}
}

func unproject(inv mgl64.Mat4, x, y, z float64) mgl64.Vec3 {
	p := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	return p.Vec3().Mul(1 / p.W())
}

func sphereSpace(p mgl64.Vec3) mgl64.Vec3 {
	d := p.Sub(EggCenter)
	return mgl64.Vec3{d[0] / EggRadii[0], d[1] / EggRadii[1], d[2] / EggRadii[2]}
}

// sphereUV inverts the mesh parameterization for a point on the unit
// sphere.
func sphereUV(unit mgl64.Vec3) (u, v float64) {
	v = math.Acos(math.Max(-1, math.Min(1, unit[1]))) / math.Pi
	phi := math.Atan2(unit[2], -unit[0])
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi / (2 * math.Pi), v
}
