package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/Garsondee/Egg-Match/internal/logging"
	"github.com/Garsondee/Egg-Match/internal/skin"
	"github.com/Garsondee/Egg-Match/internal/view"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	mode := flag.String("mode", "free", "variant: free or timed")
	theme := flag.String("theme", skin.DefaultTheme, "egg skin theme")
	seed := flag.Int64("seed", 0, "RNG seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "start with the match chime muted")
	volume := flag.Float64("volume", 0.6, "chime volume, 0..1")
	feed := flag.Bool("feed", false, "show the session log panel")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	variant, ok := game.ParseVariant(*mode)
	if !ok {
		log.Fatalf("unknown mode %q", *mode)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := view.New(game.ConfigFor(variant), view.Options{
		Theme:    *theme,
		Seed:     *seed,
		Muted:    *mute,
		Volume:   *volume,
		ShowFeed: *feed,
		Log:      logging.New(os.Stderr, logging.LevelFromString(*level)),
	})

	ebiten.SetWindowTitle("Egg Match")
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
