package view

import (
	"image"
	"image/color"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudScale is the integer upscale applied to HUD text.
const hudScale = 2

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const (
	hudLineH = 15
	hudCharW = 7
	hudPadX  = 6
	hudPadY  = 5
)

var (
	panelFill   = color.RGBA{R: 255, G: 255, B: 255, A: 215}
	panelStroke = color.RGBA{R: 59, G: 43, B: 36, A: 90}
	inkColor    = color.RGBA{R: 48, G: 40, B: 36, A: 255}
	glowColor   = color.RGBA{R: 255, G: 214, B: 102, A: 235}
)

// mix linearly blends a toward b by t.
func mix(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, s, hudFace, op)
}

// drawHUD renders the score panel, status banner and help line into buf at
// 1x. The caller blits buf at hudScale.
func drawHUD(buf *ebiten.Image, h game.HUD, lines []string, help string) {
	buf.Clear()
	bw, bh := buf.Bounds().Dx(), buf.Bounds().Dy()

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := float32(maxLen*hudCharW + 2*hudPadX)
	boxH := float32(len(lines)*hudLineH + 2*hudPadY)
	vector.FillRect(buf, 4, 4, boxW, boxH, panelFill, false)
	vector.StrokeRect(buf, 4, 4, boxW, boxH, 1, panelStroke, false)
	for i, l := range lines {
		drawText(buf, l, 4+hudPadX, float64(4+hudPadY+i*hudLineH), inkColor, text.AlignStart)
	}

	// Status banner, brightening as the score closes in on a match.
	sw := float32(len(h.Status)*hudCharW + 4*hudPadX)
	sx := (float32(bw) - sw) / 2
	sy := float32(bh) - 2*hudLineH - 12
	vector.FillRect(buf, sx, sy, sw, hudLineH+2*hudPadY, mix(panelFill, glowColor, h.Glow), false)
	vector.StrokeRect(buf, sx, sy, sw, hudLineH+2*hudPadY, 1, panelStroke, false)
	drawText(buf, h.Status, float64(bw)/2, float64(sy)+hudPadY, inkColor, text.AlignCenter)

	drawText(buf, help, float64(bw)/2, float64(bh-hudLineH-2), color.RGBA{R: 90, G: 84, B: 80, A: 220}, text.AlignCenter)
}

// drawRefPanel frames the reference inset on screen.
func drawRefPanel(screen *ebiten.Image, r image.Rectangle) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 255, G: 252, B: 244, A: 240}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, panelStroke, true)
}
