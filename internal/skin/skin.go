// Package skin paints the crayon-doodle texture wrapped around both eggs.
package skin

import (
	"image"
	"image/draw"
	"math/rand"
)

// DefaultSize is the texture edge length used by the front-ends.
const DefaultSize = 1024

// Generate paints a size×size skin in theme. Unknown themes fall back to
// DefaultTheme. The same rng seed gives the same image.
func Generate(theme string, size int, rng *rand.Rand) *image.RGBA {
	if size < 16 {
		size = 16
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) // #nosec G404 -- texture jitter
	}
	p, _ := PaletteFor(theme)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.BG), image.Point{}, draw.Src)

	painter{pen: newPen(img, rng), p: p}.scene()
	return img
}
