package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Egg-Match/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	frames   int

	rounds       int
	targets      int
	celebrations int
	skipped      int
	bestPercent  int
	finalPercent int
	ended        bool

	firstMatchTick int
	matchTicks     []int // frames from target to celebration, per round
	maxStall       int
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var mode string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless autoplay runs")
	flag.IntVar(&frames, "frames", 60*60, "frames per run at 60 Hz")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&mode, "mode", "free", "variant: free or timed")
	flag.BoolVar(&verbose, "v", false, "print each run's session log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	variant, ok := game.ParseVariant(mode)
	if !ok {
		fmt.Printf("error: unsupported mode %q (supported: free, timed)\n", mode)
		return
	}

	fmt.Printf("=== Headless Egg Match Report ===\n")
	fmt.Printf("mode=%s runs=%d frames=%d seed_base=%d seed_step=%d\n\n", variant, runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, log := autoplay(i+1, seed, variant, frames)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(log)
			fmt.Println()
		}
	}

	printAggregate(all)
}

// autoplay drives one session with the greedy bot and collects its stats.
func autoplay(runIndex int, seed int64, v game.Variant, frames int) (runStats, string) {
	ts := game.NewTestSim(game.WithVariant(v), game.WithSimSeed(seed))
	bot := game.NewAutoplayer(ts.Session.Config())

	rs := runStats{runIndex: runIndex, seed: seed}
	rounds := ts.Session.Rounds()
	for i := 0; i < frames; i++ {
		ts.Send(bot.Plan(ts.Session)...)
		hud := ts.RunFrames(1)
		rs.maxStall = max(rs.maxStall, bot.Stalled())
		if r := ts.Session.Rounds(); r != rounds {
			rounds = r
			bot.Reset()
		}
		if hud.Ended {
			break
		}
	}

	hud := ts.Session.HUD()
	rs.frames = ts.Frames
	rs.rounds = ts.Session.Rounds()
	rs.bestPercent = hud.BestPercent
	rs.finalPercent = hud.MatchPercent
	rs.ended = hud.Ended
	rs.collect(ts.SimLog.Entries())
	return rs, ts.SimLog.Format()
}

// collect derives per-round timing from the session log.
func (rs *runStats) collect(entries []game.SimLogEntry) {
	rs.firstMatchTick = -1
	start := -1
	for _, e := range entries {
		switch {
		case e.Category == "target" && e.Key == "generated":
			rs.targets++
			start = e.Tick
		case e.Category == "round" && e.Key == "celebrate":
			rs.celebrations++
			if rs.firstMatchTick < 0 {
				rs.firstMatchTick = e.Tick
			}
			if start >= 0 {
				rs.matchTicks = append(rs.matchTicks, e.Tick-start)
				start = -1
			}
		case e.Category == "round" && e.Key == "advance_skipped":
			rs.skipped++
		}
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("frames=%d rounds=%d targets=%d celebrations=%d skipped_advances=%d ended=%v\n",
		rs.frames, rs.rounds, rs.targets, rs.celebrations, rs.skipped, rs.ended)
	fmt.Printf("score: best=%d%% final=%d%% first_match_tick=%d max_stall=%d\n",
		rs.bestPercent, rs.finalPercent, rs.firstMatchTick, rs.maxStall)
	fmt.Printf("ticks_to_match: %s\n", joinInts(rs.matchTicks))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalRounds := 0
	totalTargets := 0
	totalSkipped := 0
	bestSum := 0
	var firstTicks []int
	var matchTicks []int
	for _, rs := range all {
		totalRounds += rs.rounds
		totalTargets += rs.targets
		totalSkipped += rs.skipped
		bestSum += rs.bestPercent
		if rs.firstMatchTick >= 0 {
			firstTicks = append(firstTicks, rs.firstMatchTick)
		}
		matchTicks = append(matchTicks, rs.matchTicks...)
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: rounds=%.1f targets=%.1f skipped_advances=%.1f best_percent=%.1f\n",
		avg(totalRounds, len(all)), avg(totalTargets, len(all)), avg(totalSkipped, len(all)), avg(bestSum, len(all)))
	fmt.Printf("first_match_avg_tick=%s ticks_to_match_avg=%s median=%s\n",
		avgTickString(firstTicks), avgTickString(matchTicks), medianString(matchTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func medianString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	s := append([]int(nil), vals...)
	sort.Ints(s)
	n := len(s)
	if n%2 == 1 {
		return fmt.Sprintf("%d", s[n/2])
	}
	return fmt.Sprintf("%.1f", float64(s[n/2-1]+s[n/2])/2)
}

func joinInts(vals []int) string {
	if len(vals) == 0 {
		return "none"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}
