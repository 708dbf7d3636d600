package main

import (
	"testing"

	"github.com/Garsondee/Egg-Match/internal/game"
)

func TestCollect_RoundTiming(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 0, Round: 1, Category: "target", Key: "generated"},
		{Tick: 90, Round: 1, Category: "round", Key: "celebrate"},
		{Tick: 90, Round: 1, Category: "round", Key: "advance_scheduled"},
		{Tick: 150, Round: 2, Category: "target", Key: "generated"},
		{Tick: 400, Round: 2, Category: "round", Key: "celebrate"},
		{Tick: 460, Round: 2, Category: "round", Key: "advance_skipped"},
	}
	var rs runStats
	rs.collect(entries)

	if rs.targets != 2 || rs.celebrations != 2 || rs.skipped != 1 {
		t.Fatalf("counts: targets=%d celebrations=%d skipped=%d", rs.targets, rs.celebrations, rs.skipped)
	}
	if rs.firstMatchTick != 90 {
		t.Fatalf("firstMatchTick = %d, want 90", rs.firstMatchTick)
	}
	if len(rs.matchTicks) != 2 || rs.matchTicks[0] != 90 || rs.matchTicks[1] != 250 {
		t.Fatalf("matchTicks = %v, want [90 250]", rs.matchTicks)
	}
}

func TestCollect_NoMatch(t *testing.T) {
	var rs runStats
	rs.collect([]game.SimLogEntry{{Tick: 0, Category: "target", Key: "generated"}})
	if rs.firstMatchTick != -1 || len(rs.matchTicks) != 0 {
		t.Fatalf("unexpected match data: %+v", rs)
	}
}

func TestMedianString(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, "n/a"},
		{[]int{5}, "5"},
		{[]int{9, 1, 4}, "4"},
		{[]int{4, 1, 3, 2}, "2.5"},
	}
	for _, tt := range tests {
		if got := medianString(tt.in); got != tt.want {
			t.Errorf("medianString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAutoplay_FreePlayMatchesOnce(t *testing.T) {
	rs, _ := autoplay(1, 7, game.VariantFreePlay, 30*60)
	if rs.targets < 1 {
		t.Fatal("no target was generated")
	}
	if rs.bestPercent <= 0 {
		t.Fatalf("best percent = %d", rs.bestPercent)
	}
	if rs.frames != 30*60 {
		t.Fatalf("frames = %d, free play should run the full budget", rs.frames)
	}
}
