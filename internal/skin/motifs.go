package skin

import (
	"image/color"
	"math"
)

// refSize is the canvas size the motif coordinates are authored for.
const refSize = 1536

var (
	skinTone   = hex("#f1bf9a")
	stemGreen  = hex("#6f7e4f")
	dogBrown   = hex("#b27a40")
	fishGold   = hex("#f0b320")
	hairAuburn = hex("#844934")
	hairDark   = hex("#472e1f")
)

// painter draws the doodle motifs in one palette.
type painter struct {
	*pen
	p Palette
}

func (d painter) sun(x, y, r float64) {
	d.pencil(d.p.Sun, 10, 0.86, 4, func(p *path) { p.circle(x, y, r) })
	for i := 0; i < 12; i++ {
		a := 2 * math.Pi * float64(i) / 12
		c, s := math.Cos(a), math.Sin(a)
		d.pencil(d.p.Sun, 7, 0.85, 2, func(p *path) {
			p.line(pt{x + c*(r+8), y + s*(r+8)}, pt{x + c*(r+40), y + s*(r+40)})
		})
	}
	d.pencil(d.p.Ink, 5, 0.88, 2, func(p *path) {
		p.dot(x-16, y-8, 4)
		p.dot(x+15, y-8, 4)
		p.arc(x, y+10, 20, 0.2, math.Pi-0.2)
	})
}

func (d painter) rainbow(x, y, s float64) {
	bands := []struct {
		c color.RGBA
		r float64
	}{{d.p.Red, 70}, {d.p.Orange, 58}, {d.p.Purple, 46}}
	for _, b := range bands {
		r := b.r * s
		d.pencil(b.c, 9, 0.88, 3, func(p *path) { p.arc(x, y, r, math.Pi*1.1, math.Pi*1.95) })
	}
}

func (d painter) cloud(x, y, s float64) {
	d.pencil(d.p.Sky, 8, 0.9, 3, func(p *path) {
		start := pt{x - 52*s, y + 10*s}
		mid := pt{x + 12*s, y - 14*s}
		pts := []pt{start}
		pts = append(pts, cubic(start, pt{x - 64*s, y - 18*s}, pt{x - 12*s, y - 34*s}, mid)...)
		pts = append(pts, cubic(mid, pt{x + 24*s, y - 36*s}, pt{x + 64*s, y - 20*s}, pt{x + 52*s, y + 12*s})...)
		p.line(pts...)
	})
}

func (d painter) heart(x, y, s float64) {
	d.pencil(d.p.Red, 8, 0.85, 3, func(p *path) {
		tip := pt{x, y + 20*s}
		top := pt{x, y - 24*s}
		pts := []pt{tip}
		pts = append(pts, cubic(tip, pt{x - 40*s, y - 10*s}, pt{x - 22*s, y - 48*s}, top)...)
		pts = append(pts, cubic(top, pt{x + 22*s, y - 48*s}, pt{x + 40*s, y - 10*s}, tip)...)
		p.line(pts...)
	})
}

func (d painter) flower(x, y, s float64) {
	for i := 0; i < 5; i++ {
		a := 2 * math.Pi * float64(i) / 5
		px, py := x+math.Cos(a)*18*s, y+math.Sin(a)*18*s
		d.pencil(d.p.Grass, 5, 0.72, 2, func(p *path) { p.circle(px, py, 12*s) })
	}
}

func (d painter) kid(x, y float64, shirt, hair color.RGBA) {
	d.pencil(skinTone, 6, 0.9, 2, func(p *path) { p.circle(x, y-64, 28) })
	d.pencil(d.p.Ink, 4, 0.92, 1, func(p *path) {
		p.dot(x-8, y-70, 3)
		p.dot(x+8, y-70, 3)
		p.arc(x, y-58, 10, 0.2, math.Pi-0.2)
	})
	d.pencil(shirt, 7, 0.85, 2, func(p *path) {
		p.closed(pt{x - 22, y - 32}, pt{x + 22, y - 32}, pt{x + 14, y + 20}, pt{x - 14, y + 20})
	})
	d.pencil(d.p.Ink, 5, 0.8, 2, func(p *path) {
		p.line(pt{x - 10, y + 20}, pt{x - 8, y + 52})
		p.line(pt{x + 10, y + 20}, pt{x + 8, y + 52})
		p.line(pt{x - 26, y - 8}, pt{x - 44, y + 4})
		p.line(pt{x + 26, y - 8}, pt{x + 44, y + 4})
	})
	d.pencil(hair, 6, 0.92, 2, func(p *path) { p.arc(x, y-78, 24, math.Pi, 2*math.Pi) })
}

func (d painter) boat(x, y float64) {
	d.pencil(d.p.Red, 7, 0.82, 3, func(p *path) {
		p.closed(pt{x - 48, y + 18}, pt{x + 48, y + 18}, pt{x + 30, y + 34}, pt{x - 34, y + 34})
		p.line(pt{x, y - 52}, pt{x, y + 18})
		p.closed(pt{x, y - 50}, pt{x + 38, y - 10}, pt{x, y - 10})
	})
	d.pencil(d.p.Ink, 4, 0.75, 2, func(p *path) {
		p.closed(pt{x, y - 50}, pt{x - 28, y - 22}, pt{x, y - 22})
	})
}

func (d painter) wave(y float64) {
	d.pencil(d.p.Sky, 6, 0.84, 3, func(p *path) {
		pts := []pt{{0, y}}
		for x := 0.0; x <= refSize; x += 34 {
			pts = append(pts, quad(pt{x, y}, pt{x + 17, y - 16}, pt{x + 34, y})...)
		}
		p.line(pts...)
	})
}

func (d painter) star(x, y, s float64) {
	const spikes = 5
	outer, inner := 16*s, 7*s
	d.pencil(d.p.Orange, 5, 0.78, 2, func(p *path) {
		pts := make([]pt, 0, spikes*2)
		for i := 0; i < spikes*2; i++ {
			r := outer
			if i%2 == 1 {
				r = inner
			}
			a := -math.Pi/2 + math.Pi*float64(i)/spikes
			pts = append(pts, pt{x + math.Cos(a)*r, y + math.Sin(a)*r})
		}
		p.closed(pts...)
	})
}

func (d painter) house() {
	d.pencil(d.p.Red, 7, 0.8, 3, func(p *path) {
		p.closed(pt{125, 900}, pt{125, 810}, pt{180, 758}, pt{236, 810}, pt{236, 900})
	})
	d.pencil(d.p.Sun, 5, 0.8, 2, func(p *path) {
		p.closed(pt{156, 840}, pt{191, 840}, pt{191, 900}, pt{156, 900})
	})
	d.pencil(stemGreen, 6, 0.76, 2, func(p *path) {
		p.line(pt{68, 920}, pt{68, 846})
		p.line(append([]pt{{68, 862}}, quad(pt{68, 862}, pt{20, 882}, pt{38, 925})...)...)
		p.line(append([]pt{{68, 878}}, quad(pt{68, 878}, pt{108, 898}, pt{86, 935})...)...)
	})
}

func (d painter) dog() {
	d.pencil(dogBrown, 6, 0.84, 2, func(p *path) {
		p.ellipse(840, 1010, 44, 30, 0.4)
		p.line(append([]pt{{874, 1008}}, quad(pt{874, 1008}, pt{896, 994}, pt{900, 1018})...)...)
		p.dot(820, 1002, 3)
	})
}

func (d painter) fish() {
	d.pencil(fishGold, 6, 0.88, 2, func(p *path) {
		p.ellipse(820, 1210, 36, 18, -0.2)
		p.dot(798, 1208, 3)
	})
}

type placement struct{ x, y, s float64 }

var (
	miniFlowers = []placement{
		{108, 260, 0.64}, {264, 310, 0.58}, {960, 260, 0.62}, {1120, 338, 0.56},
		{1240, 870, 0.6}, {1360, 1020, 0.66}, {210, 1115, 0.62}, {305, 1188, 0.56},
	}
	miniHearts = []placement{
		{1080, 440, 0.5}, {1300, 640, 0.56}, {240, 690, 0.56}, {122, 1020, 0.46}, {1400, 390, 0.48},
	}
	miniClouds = []placement{
		{90, 520, 0.5}, {1320, 540, 0.56}, {1448, 760, 0.48}, {86, 760, 0.52},
	}
	miniRainbows = []placement{
		{320, 170, 0.56}, {1240, 200, 0.52}, {1380, 980, 0.48}, {150, 920, 0.46},
	}
	stars = []placement{
		{170, 420, 0.72}, {374, 640, 0.64}, {1180, 460, 0.6}, {1348, 560, 0.7},
		{1070, 920, 0.64}, {144, 1260, 0.58}, {1412, 1220, 0.56},
	}
)

// scene paints the full doodle sheet.
func (d painter) scene() {
	d.sun(268, 178, 74)
	d.rainbow(596, 236, 1.12)
	d.cloud(260, 470, 1.06)
	d.cloud(470, 500, 0.66)

	d.heart(890, 560, 1)
	d.flower(900, 780, 1.1)
	d.flower(750, 610, 1.06)

	d.house()
	d.kid(560, 1006, d.p.Red, hairAuburn)
	d.kid(690, 1008, d.p.Sky, hairDark)
	d.dog()
	d.boat(620, 1210)
	d.fish()
	d.wave(1270)
	d.wave(1310)

	for _, m := range miniFlowers {
		d.flower(m.x, m.y, m.s)
	}
	for _, m := range miniHearts {
		d.heart(m.x, m.y, m.s)
	}
	for _, m := range miniClouds {
		d.cloud(m.x, m.y, m.s)
	}
	for _, m := range miniRainbows {
		d.rainbow(m.x, m.y, m.s)
	}
	for _, m := range stars {
		d.star(m.x, m.y, m.s)
	}
}
