package skin

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"

	"golang.org/x/image/vector"
)

type pt struct{ X, Y float64 }

// path is a set of open polylines to stroke and closed polygons to fill,
// in canvas units.
type path struct {
	lines [][]pt
	fills [][]pt
}

func (p *path) line(pts ...pt) { p.lines = append(p.lines, pts) }

func (p *path) closed(pts ...pt) {
	p.lines = append(p.lines, append(pts, pts[0]))
}

// arc appends a circular arc from a0 to a1 (radians, y down).
func (p *path) arc(cx, cy, r, a0, a1 float64) {
	p.lines = append(p.lines, arcPoints(cx, cy, r, r, 0, a0, a1))
}

func (p *path) circle(cx, cy, r float64) { p.arc(cx, cy, r, 0, 2*math.Pi) }

// ellipse appends a closed ellipse rotated by rot.
func (p *path) ellipse(cx, cy, rx, ry, rot float64) {
	p.lines = append(p.lines, arcPoints(cx, cy, rx, ry, rot, 0, 2*math.Pi))
}

// dot fills a small disc.
func (p *path) dot(cx, cy, r float64) {
	pts := arcPoints(cx, cy, r, r, 0, 0, 2*math.Pi)
	p.fills = append(p.fills, pts[:len(pts)-1])
}

func arcPoints(cx, cy, rx, ry, rot, a0, a1 float64) []pt {
	n := int(math.Ceil(math.Abs(a1-a0) / (2 * math.Pi) * 48))
	if n < 4 {
		n = 4
	}
	sr, cr := math.Sincos(rot)
	out := make([]pt, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		x, y := rx*math.Cos(a), ry*math.Sin(a)
		out = append(out, pt{cx + x*cr - y*sr, cy + x*sr + y*cr})
	}
	return out
}

// cubic samples a cubic Bézier, excluding its start point.
func cubic(p0, c1, c2, p3 pt) []pt {
	const n = 16
	out := make([]pt, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		out = append(out, pt{
			a*p0.X + b*c1.X + c*c2.X + d*p3.X,
			a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
		})
	}
	return out
}

// quad samples a quadratic Bézier, excluding its start point.
func quad(p0, c, p1 pt) []pt {
	const n = 8
	out := make([]pt, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		u := 1 - t
		out = append(out, pt{
			u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
			u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
		})
	}
	return out
}

// pen rasterizes paths onto the canvas. Geometry is authored on a
// refSize canvas and scaled by k.
type pen struct {
	dst *image.RGBA
	z   *vector.Rasterizer
	k   float64
	rng *rand.Rand
}

func newPen(dst *image.RGBA, rng *rand.Rand) *pen {
	return &pen{
		dst: dst,
		z:   vector.NewRasterizer(1, 1),
		k:   float64(dst.Bounds().Dx()) / refSize,
		rng: rng,
	}
}

// pencil strokes the path repeat times, each pass fainter and with a
// slightly jittered width, like a crayon going over the same line.
func (pn *pen) pencil(c color.RGBA, width, alpha float64, repeat int, build func(*path)) {
	var p path
	build(&p)
	for i := 0; i < repeat; i++ {
		a := alpha - float64(i)*0.14
		if a <= 0 {
			break
		}
		w := width + pn.rng.Float64()*1.8
		pn.render(&p, c, w, a)
	}
}

func (pn *pen) render(p *path, c color.RGBA, width, alpha float64) {
	hw := width * pn.k / 2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(pts []pt) {
		for _, q := range pts {
			x, y := q.X*pn.k, q.Y*pn.k
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	for _, l := range p.lines {
		grow(l)
	}
	for _, f := range p.fills {
		grow(f)
	}
	bounds := image.Rect(
		int(math.Floor(minX-hw-1)), int(math.Floor(minY-hw-1)),
		int(math.Ceil(maxX+hw+1)), int(math.Ceil(maxY+hw+1)),
	).Intersect(pn.dst.Bounds())
	if bounds.Empty() {
		return
	}

	pn.z.Reset(bounds.Dx(), bounds.Dy())
	pn.z.DrawOp = draw.Over
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	tx := func(q pt) (float32, float32) {
		return float32(q.X*pn.k - ox), float32(q.Y*pn.k - oy)
	}

	// Every shape is wound the same way so overlaps accumulate into a
	// union instead of cancelling.
	for _, l := range p.lines {
		for i := range l {
			x, y := tx(l[i])
			pn.disc(x, y, float32(hw))
			if i == 0 {
				continue
			}
			x0, y0 := tx(l[i-1])
			pn.segment(x0, y0, x, y, float32(hw))
		}
	}
	for _, f := range p.fills {
		pts := f
		if polygonArea(pts) < 0 {
			pts = reversed(pts)
		}
		x, y := tx(pts[0])
		pn.z.MoveTo(x, y)
		for _, q := range pts[1:] {
			x, y = tx(q)
			pn.z.LineTo(x, y)
		}
		pn.z.ClosePath()
	}

	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))})
	pn.z.Draw(pn.dst, bounds, src, image.Point{})
}

func (pn *pen) segment(x0, y0, x1, y1, hw float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	pn.z.MoveTo(x0-nx, y0-ny)
	pn.z.LineTo(x1-nx, y1-ny)
	pn.z.LineTo(x1+nx, y1+ny)
	pn.z.LineTo(x0+nx, y0+ny)
	pn.z.ClosePath()
}

// disc is a round cap or join.
func (pn *pen) disc(cx, cy, r float32) {
	const n = 12
	pn.z.MoveTo(cx+r, cy)
	for i := 1; i < n; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / n)
		pn.z.LineTo(cx+r*float32(c), cy+r*float32(s))
	}
	pn.z.ClosePath()
}

func polygonArea(pts []pt) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func reversed(pts []pt) []pt {
	out := make([]pt, len(pts))
	for i, q := range pts {
		out[len(pts)-1-i] = q
	}
	return out
}
