package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Egg proportions: a unit sphere squashed into an egg and lifted slightly
// so the wide end sits near the origin.
var (
	EggRadii  = mgl64.Vec3{0.76, 1.02, 0.76}
	EggCenter = mgl64.Vec3{0, 0.06, 0}
)

// Mesh is an indexed triangle list in object space. UVs are in [0,1] with
// v=0 at the top pole.
type Mesh struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	UVs       [][2]float64
	Indices   []uint16
}

// EggMesh tessellates the egg into rings×segments quads. The seam column
// is duplicated so texture coordinates do not wrap inside a triangle.
func EggMesh(rings, segments int) *Mesh {
	if rings < 3 {
		rings = 3
	}
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	for i := 0; i <= rings; i++ {
		v := float64(i) / float64(rings)
		theta := v * math.Pi
		for j := 0; j <= segments; j++ {
			u := float64(j) / float64(segments)
			phi := u * 2 * math.Pi
			unit := mgl64.Vec3{
				-math.Cos(phi) * math.Sin(theta),
				math.Cos(theta),
				math.Sin(phi) * math.Sin(theta),
			}
			m.Positions = append(m.Positions, mgl64.Vec3{
				unit[0]*EggRadii[0] + EggCenter[0],
				unit[1]*EggRadii[1] + EggCenter[1],
				unit[2]*EggRadii[2] + EggCenter[2],
			})
			m.Normals = append(m.Normals, ellipsoidNormal(unit))
			m.UVs = append(m.UVs, [2]float64{u, v})
		}
	}

	stride := segments + 1
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a := uint16(i*stride + j)
			b := uint16((i+1)*stride + j)
			c := uint16((i+1)*stride + j + 1)
			d := uint16(i*stride + j + 1)
			// Pole rows collapse to a point: emit only the non-degenerate half.
			if i != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if i != rings-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}

// ellipsoidNormal maps a point on the unit sphere to the outward normal of
// the scaled egg at the corresponding point.
func ellipsoidNormal(unit mgl64.Vec3) mgl64.Vec3 {
	n := mgl64.Vec3{unit[0] / EggRadii[0], unit[1] / EggRadii[1], unit[2] / EggRadii[2]}
	if n.Len() == 0 {
		return mgl64.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

// TriangleCount is the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }
