package view

import (
	"fmt"
	"image"

	"github.com/Garsondee/Egg-Match/internal/game"
)

// screenLayout places the play canvas and the reference inset.
type screenLayout struct {
	canvas image.Rectangle
	ref    image.Rectangle
	feedX  int
}

const refMargin = 16

func computeLayout(w, h int, showFeed bool) screenLayout {
	l := screenLayout{canvas: image.Rect(0, 0, w, h), feedX: w}
	if showFeed && w > 2*feedPanelWidth {
		l.feedX = w - feedPanelWidth
		l.canvas.Max.X = l.feedX
	}
	cw, ch := l.canvas.Dx(), l.canvas.Dy()
	side := min(cw, ch) * 32 / 100
	side = max(120, min(side, 360))
	if side > cw-2*refMargin || side > ch-2*refMargin {
		side = max(0, min(cw, ch)-2*refMargin)
	}
	right := l.canvas.Max.X - refMargin
	l.ref = image.Rect(right-side, refMargin, right, refMargin+side)
	return l
}

// hudLines builds the score panel text.
func hudLines(h game.HUD, cfg game.Config, theme string, muted bool) []string {
	lines := []string{
		fmt.Sprintf("Match: %3d%%   Best: %3d%%", h.MatchPercent, h.BestPercent),
	}
	if h.TimerEnabled {
		lines = append(lines, fmt.Sprintf("Time:  %s   Matched: %d", h.Remaining, h.Rounds))
	} else {
		lines = append(lines, fmt.Sprintf("Matched: %d", h.Rounds))
	}
	if cfg.AllowManualModeToggle {
		lines = append(lines, fmt.Sprintf("Mode: %s  [1] rotate  [2] move", h.Mode))
	}
	sound := "on"
	if muted {
		sound = "off"
	}
	lines = append(lines, fmt.Sprintf("Skin: %s [T]   Sound: %s [M]", theme, sound))
	return lines
}

// helpLine lists the controls for the variant.
func helpLine(cfg game.Config) string {
	if cfg.AllowKeyboardInput {
		return "drag/arrows rotate  Z/X scale  N new  R reset  C copy  L feed"
	}
	return "drag rotate  shift/right-drag move  wheel scale  N new  R reset  C copy  L feed"
}
