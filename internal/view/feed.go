package view

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedEntry is one line in the round feed.
type FeedEntry struct {
	Tick     int
	Round    int
	Category string
	Message  string
}

// Feed is a ring buffer of recent session events shown in a side panel.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int

	// seen is how many SimLog entries have been copied in.
	seen int
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{entries: make([]FeedEntry, feedMaxEntries)}
}

// Add appends an entry, overwriting the oldest when full.
func (f *Feed) Add(e FeedEntry) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Sync copies journal entries added since the last call. Per-frame score
// samples are skipped.
func (f *Feed) Sync(sl *game.SimLog) {
	all := sl.Entries()
	if f.seen > len(all) {
		f.seen = 0
	}
	for _, e := range all[f.seen:] {
		if e.Category == "hud" {
			continue
		}
		f.Add(FeedEntry{Tick: e.Tick, Round: e.Round, Category: e.Category, Message: e.Key + " " + e.Value})
	}
	f.seen = len(all)
}

// Recent returns entries oldest first.
func (f *Feed) Recent() []FeedEntry {
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+feedMaxEntries)%feedMaxEntries]
	}
	return out
}

func feedColor(category string) color.RGBA {
	switch category {
	case "round":
		return color.RGBA{R: 236, G: 178, B: 40, A: 255}
	case "timer":
		return color.RGBA{R: 220, G: 80, B: 80, A: 255}
	case "target":
		return color.RGBA{R: 70, G: 140, B: 220, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 160, A: 255}
	}
}

// Draw renders the panel along the right edge of screen.
func (f *Feed) Draw(screen *ebiten.Image, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, feedPanelWidth, float32(panelH), color.RGBA{R: 24, G: 26, B: 34, A: 230}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1, color.RGBA{R: 70, G: 76, B: 96, A: 255}, false)
	vector.FillRect(screen, px, 0, feedPanelWidth, 18, color.RGBA{R: 36, G: 40, B: 54, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ROUND FEED", panelX+8, 2)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 22
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, px+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 44, G: 48, B: 64, A: 160}, false)
		}
		vector.FillRect(screen, px+5, float32(y+4), 3, 6, feedColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d R%02d %s", e.Tick, e.Round, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}
