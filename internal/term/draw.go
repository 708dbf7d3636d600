package term

import (
	"fmt"

	"github.com/Garsondee/Egg-Match/internal/render"
	"github.com/gdamore/tcell/v2"
)

// hudRows are reserved at the bottom of the screen.
const hudRows = 3

const (
	refMinCols = 16
	refMaxCols = 40
)

var (
	bgStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(236, 242, 248)).Foreground(tcell.NewRGBColor(48, 40, 36))
	hudStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 255, 255)).Foreground(tcell.NewRGBColor(48, 40, 36))
	glowStyle  = hudStyle.Background(tcell.NewRGBColor(255, 214, 102)).Bold(true)
	frameStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 252, 244)).Foreground(tcell.NewRGBColor(120, 100, 90))
)

func (a *App) draw() {
	s := a.screen
	w, h := s.Size()
	s.Fill(' ', bgStyle)

	rows := h - hudRows
	if rows > 0 && w > 0 {
		grid := render.Raycast(a.session.Player(), render.GameCamera, a.session.DropOffset(), w, rows, cellH/cellW, a.skin)
		blit(s, grid, 0, 0, bgStyle)

		if rc, rr, ok := refBox(w, rows); ok {
			x0 := w - rc - 1
			box(s, x0-1, 0, rc+2, rr+2, frameStyle)
			ref := render.Raycast(a.session.Target(), render.ReferenceCamera, 0, rc, rr, cellH/cellW, a.skin)
			blit(s, ref, x0, 1, frameStyle)
			putString(s, x0, 0, "TARGET", frameStyle)
		}
	}

	for i, line := range a.hudLines(w) {
		y := h - hudRows + i
		if y < 0 {
			continue
		}
		style := hudStyle
		if i == 1 && a.hud.Glow >= 0.5 {
			style = glowStyle
		}
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
		putString(s, 1, y, line, style)
	}
	s.Show()
}

// refBox sizes the reference inset in cells. Cells are twice as tall as
// wide, so the box is twice as many columns as rows.
func refBox(cols, rows int) (int, int, bool) {
	rc := min(refMaxCols, cols/4)
	if rc < refMinCols {
		return 0, 0, false
	}
	rr := rc / 2
	if rr+2 > rows/2 {
		rr = rows/2 - 2
		rc = rr * 2
	}
	if rc < refMinCols {
		return 0, 0, false
	}
	return rc, rr, true
}

func (a *App) hudLines(w int) []string {
	h := a.hud
	first := fmt.Sprintf("Match: %3d%%  Best: %3d%%", h.MatchPercent, h.BestPercent)
	if h.TimerEnabled {
		first += fmt.Sprintf("  Time: %s  Matched: %d", h.Remaining, h.Rounds)
	} else {
		first += fmt.Sprintf("  Mode: %s", h.Mode)
	}
	if a.status != "" {
		first += "  [" + a.status + "]"
	}
	help := "drag rotate  right/shift-drag move  wheel scale  arrows/zx  n r c t q"
	if !a.cfg.TimerEnabled {
		help = "drag rotate  right/shift-drag move  wheel scale  arrows/zx  1/2 mode  n r c t q"
	}
	return []string{clip(first, w-2), clip(h.Status, w-2), clip(help, w-2)}
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// blit copies hit cells onto the screen; misses keep the background.
func blit(s tcell.Screen, grid [][]render.Cell, x0, y0 int, bg tcell.Style) {
	for r, row := range grid {
		for c, cell := range row {
			if !cell.Hit {
				s.SetContent(x0+c, y0+r, ' ', nil, bg)
				continue
			}
			fg := tcell.NewRGBColor(int32(cell.R), int32(cell.G), int32(cell.B))
			s.SetContent(x0+c, y0+r, cell.Ch, nil, bg.Foreground(fg))
		}
	}
}

func box(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for r := y; r < y+h; r++ {
		for c := x; c < x+w; c++ {
			ch := ' '
			switch {
			case (r == y || r == y+h-1) && (c == x || c == x+w-1):
				ch = '+'
			case r == y || r == y+h-1:
				ch = '-'
			case c == x || c == x+w-1:
				ch = '|'
			}
			s.SetContent(c, r, ch, nil, style)
		}
	}
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, ch := range str {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
