package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a directional light. Dir points from the surface toward the
// light and need not be normalized.
type Light struct {
	Dir   mgl64.Vec3
	Color [3]float64
}

// Scene lighting: a white key, a cool fill from the lower left and a warm
// rim from behind.
var (
	Ambient = 0.6
	Lights  = []Light{
		{Dir: mgl64.Vec3{2.6, 2.3, 2.0}, Color: [3]float64{1.0, 1.0, 1.0}},
		{Dir: mgl64.Vec3{-2.2, -0.4, 1.6}, Color: [3]float64{0.32 * 0xba / 255.0, 0.32 * 0xd8 / 255.0, 0.32}},
		{Dir: mgl64.Vec3{-1.6, 1.0, -2.2}, Color: [3]float64{0.42, 0.42 * 0xf2 / 255.0, 0.42 * 0xcf / 255.0}},
	}
	exposure = 0.72
)

// Shade returns the clamped RGB light factor for a world-space normal.
func Shade(n mgl64.Vec3) [3]float64 {
	out := [3]float64{Ambient, Ambient, Ambient}
	for _, l := range Lights {
		d := n.Dot(l.Dir.Normalize())
		if d <= 0 {
			continue
		}
		for c := 0; c < 3; c++ {
			out[c] += d * l.Color[c]
		}
	}
	for c := range out {
		out[c] = math.Min(out[c]*exposure, 1)
	}
	return out
}

// ScreenVertex is a projected mesh vertex in pixel coordinates (y down).
type ScreenVertex struct {
	X, Y  float64
	U, V  float64
	Shade [3]float64
	ok    bool
}

// Frame is a projected mesh: every vertex, and the indices of the
// front-facing triangles only.
type Frame struct {
	Vertices []ScreenVertex
	Indices  []uint16
}

// Project transforms m by model and viewProj into a w×h viewport. rot is
// the model's orientation, used to bring normals into world space. The
// egg is convex, so back-face culling alone resolves visibility.
func Project(m *Mesh, model, viewProj mgl64.Mat4, rot mgl64.Quat, w, h int) Frame {
	var f Frame
	f.Vertices = make([]ScreenVertex, len(m.Positions))
	mvp := viewProj.Mul4(model)
	hw, hh := float64(w)/2, float64(h)/2

	ndc := make([]mgl64.Vec2, len(m.Positions))
	for i, p := range m.Positions {
		clip := mvp.Mul4x1(p.Vec4(1))
		sv := ScreenVertex{U: m.UVs[i][0], V: m.UVs[i][1]}
		if clip.W() > 1e-6 {
			nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
			ndc[i] = mgl64.Vec2{nx, ny}
			sv.X = (nx + 1) * hw
			sv.Y = (1 - ny) * hh
			sv.Shade = Shade(rot.Rotate(m.Normals[i]))
			sv.ok = true
		}
		f.Vertices[i] = sv
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		if !f.Vertices[a].ok || !f.Vertices[b].ok || !f.Vertices[c].ok {
			continue
		}
		pa, pb, pc := ndc[a], ndc[b], ndc[c]
		// Counter-clockwise in NDC (y up) faces the camera.
		area := (pb[0]-pa[0])*(pc[1]-pa[1]) - (pc[0]-pa[0])*(pb[1]-pa[1])
		if area <= 0 {
			continue
		}
		f.Indices = append(f.Indices, a, b, c)
	}
	return f
}

// Bounds returns the pixel bounding box of the visible triangles.
func (f Frame) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, i := range f.Indices {
		v := f.Vertices[i]
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
		ok = true
	}
	return minX, minY, maxX, maxY, ok
}
