package game

import (
	"strings"
	"testing"
)

func TestSimLog_QueriesAndFormat(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, 1, "target", "generated", "angle=40.0deg", 1.01)
	sl.Add(12, 1, "round", "celebrate", "pct=83", 83)
	sl.Add(12, 1, "round", "advance_scheduled", "delay=700ms", 83)
	sl.Add(55, 2, "round", "advance", "rounds=1", 1)
	sl.AddVerbose(56, 2, "hud", "score", "pct=40", 0.4)

	if n := len(sl.Entries()); n != 4 {
		t.Fatalf("verbose entry recorded in quiet mode, have %d entries", n)
	}
	if n := sl.CountCategory("round", ""); n != 3 {
		t.Fatalf("expected 3 round entries, got %d", n)
	}
	if got := sl.FilterRound(2); len(got) != 1 || got[0].Key != "advance" {
		t.Fatalf("unexpected round-2 entries %v", got)
	}
	if got := sl.FilterTickRange(10, 20); len(got) != 2 {
		t.Fatalf("expected 2 entries in ticks 10..20, got %d", len(got))
	}
	if last, ok := sl.LastOf("round", "celebrate"); !ok || last.NumVal != 83 {
		t.Fatalf("LastOf returned %+v ok=%v", last, ok)
	}
	if !sl.HasEntry("", "", "delay=700") || sl.HasEntry("timer", "", "") {
		t.Fatal("HasEntry wildcard matching is off")
	}
	if got := sl.Recent(2); len(got) != 2 || got[1].Key != "advance" {
		t.Fatalf("Recent(2) returned %v", got)
	}

	line := sl.Entries()[1].String()
	if line != "[T=0012] R01 round    celebrate        pct=83" {
		t.Fatalf("unexpected line format %q", line)
	}
	if !strings.Contains(sl.Format(), "advance_scheduled") {
		t.Fatal("Format must include every entry")
	}
}

func TestSimLog_VerboseRecordsScores(t *testing.T) {
	ts := NewTestSim(WithVerbose(true), WithTargets(yawedTarget))
	ts.RunFrames(10)
	if n := ts.SimLog.CountCategory("hud", "score"); n != 10 {
		t.Fatalf("expected a score entry per frame, got %d", n)
	}
	sum := ts.SimLog.Summary(ts.Session.TickCount(), ts.Session.HUD())
	if !strings.Contains(sum, "Targets: 1") {
		t.Fatalf("unexpected summary:\n%s", sum)
	}
}
