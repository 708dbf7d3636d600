package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Garsondee/Egg-Match/internal/game"
	"github.com/Garsondee/Egg-Match/internal/logging"
	"github.com/Garsondee/Egg-Match/internal/skin"
	"github.com/Garsondee/Egg-Match/internal/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	mode := flag.String("mode", "timed", "variant: free or timed")
	theme := flag.String("theme", skin.DefaultTheme, "egg skin theme")
	seed := flag.Int64("seed", 0, "RNG seed, 0 picks one from the clock")
	logFile := flag.String("log-file", "", "write diagnostics here (the screen is busy)")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	variant, ok := game.ParseVariant(*mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	logger := logging.Discard()
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = logging.New(f, logging.LevelFromString(*level))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	app := term.New(screen, game.ConfigFor(variant), term.Options{Theme: *theme, Seed: *seed, Log: logger})
	runErr := app.Run(ctx)
	stop()
	screen.Fini()

	hud := app.Session().HUD()
	fmt.Println(hud.ShareLine(variant))
	if runErr != nil && runErr != context.Canceled {
		logger.Errorf("run: %v", runErr)
	}
}
