package render

import (
	"image"
	"image/color"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws one egg into its own offscreen buffer. The front-end
// blits the buffer wherever the view sits on screen.
type Renderer struct {
	mesh *Mesh
	skin *ebiten.Image
	sw   float32
	sh   float32

	buf  *ebiten.Image
	w, h int

	verts []ebiten.Vertex
	opts  ebiten.DrawTrianglesOptions

	// Background fills the buffer before each draw. Nil leaves it
	// transparent.
	Background color.Color
}

// NewRenderer builds a renderer for mesh textured with skin.
func NewRenderer(mesh *Mesh, skin image.Image) *Renderer {
	r := &Renderer{mesh: mesh}
	r.opts.Filter = ebiten.FilterLinear
	r.SetSkin(skin)
	return r
}

// SetSkin replaces the texture.
func (r *Renderer) SetSkin(img image.Image) {
	if r.skin != nil {
		r.skin.Deallocate()
	}
	r.skin = ebiten.NewImageFromImage(img)
	b := img.Bounds()
	r.sw, r.sh = float32(b.Dx()), float32(b.Dy())
}

// Resize reallocates the offscreen buffer when the viewport changes.
// Non-positive sizes are ignored.
func (r *Renderer) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == r.w && h == r.h && r.buf != nil) {
		return
	}
	if r.buf != nil {
		r.buf.Deallocate()
	}
	r.buf = ebiten.NewImage(w, h)
	r.w, r.h = w, h
}

// Size returns the current buffer size.
func (r *Renderer) Size() (int, int) { return r.w, r.h }

// Draw renders pose t through cam into the buffer and returns it.
func (r *Renderer) Draw(t game.Transform, cam Camera, dropOffset float64) *ebiten.Image {
	if r.buf == nil {
		r.Resize(1, 1)
	}
	r.buf.Clear()
	if r.Background != nil {
		r.buf.Fill(r.Background)
	}

	aspect := float64(r.w) / float64(r.h)
	f := Project(r.mesh, cam.Model(t, dropOffset), cam.ViewProj(aspect), t.Orientation, r.w, r.h)
	if len(f.Indices) == 0 {
		return r.buf
	}

	r.verts = r.verts[:0]
	for _, v := range f.Vertices {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(v.X),
			DstY:   float32(v.Y),
			SrcX:   float32(v.U) * r.sw,
			SrcY:   float32(v.V) * r.sh,
			ColorR: float32(v.Shade[0]),
			ColorG: float32(v.Shade[1]),
			ColorB: float32(v.Shade[2]),
			ColorA: 1,
		})
	}
	r.buf.DrawTriangles(r.verts, f.Indices, r.skin, &r.opts)
	return r.buf
}
