package skin

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of crayon colours one theme draws with.
type Palette struct {
	BG     color.RGBA
	Sun    color.RGBA
	Sky    color.RGBA
	Grass  color.RGBA
	Red    color.RGBA
	Orange color.RGBA
	Purple color.RGBA
	Ink    color.RGBA
}

// DefaultTheme is used for unknown theme names.
const DefaultTheme = "spring"

var themeOrder = []string{"spring", "night", "pastel"}

var palettes = map[string]Palette{
	"spring": {
		BG: hex("#fcfcfd"), Sun: hex("#f7cb18"), Sky: hex("#3a9de7"), Grass: hex("#4caf56"),
		Red: hex("#ef4a43"), Orange: hex("#ff9a38"), Purple: hex("#9f6bd8"), Ink: hex("#3b2b24"),
	},
	"night": {
		BG: hex("#f5f6fb"), Sun: hex("#ffd66d"), Sky: hex("#4285d4"), Grass: hex("#4c9659"),
		Red: hex("#ff6b72"), Orange: hex("#ffa657"), Purple: hex("#a084f5"), Ink: hex("#24262b"),
	},
	"pastel": {
		BG: hex("#fffdf8"), Sun: hex("#f4c762"), Sky: hex("#74bee6"), Grass: hex("#78be83"),
		Red: hex("#ee6f82"), Orange: hex("#f2a968"), Purple: hex("#b18cd9"), Ink: hex("#4e4540"),
	},
}

// Themes lists the theme names in cycling order.
func Themes() []string {
	return append([]string(nil), themeOrder...)
}

// PaletteFor returns the palette for theme, falling back to the default
// theme. ok reports whether theme was known.
func PaletteFor(theme string) (p Palette, ok bool) {
	p, ok = palettes[theme]
	if !ok {
		p = palettes[DefaultTheme]
	}
	return p, ok
}

// NextTheme returns the theme after cur in cycling order.
func NextTheme(cur string) string {
	for i, t := range themeOrder {
		if t == cur {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return DefaultTheme
}

// hex parses "#rrggbb". It panics on malformed input, which only happens
// for the literals above.
func hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("skin: bad colour %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
