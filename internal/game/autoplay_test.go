package game

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// tiltedTarget needs both yaw and pitch to match and sits at the origin.
func tiltedTarget(_ *rand.Rand) Transform {
	t := IdentityTransform()
	t.Orientation = mgl64.QuatRotate(0.9, mgl64.Vec3{0.6, 0.8, 0})
	return t
}

func runBot(ts *TestSim, bot *Autoplayer, frames int) {
	rounds := ts.Session.Rounds()
	for i := 0; i < frames; i++ {
		ts.Send(bot.Plan(ts.Session)...)
		ts.RunFrames(1)
		if r := ts.Session.Rounds(); r != rounds {
			rounds = r
			bot.Reset()
		}
	}
}

func TestAutoplayer_IdleDuringDropIn(t *testing.T) {
	ts := NewTestSim(WithTargets(tiltedTarget))
	bot := NewAutoplayer(ts.Session.Config())
	ts.RunFrames(1)
	if evs := bot.Plan(ts.Session); len(evs) != 0 {
		t.Fatalf("bot should stay quiet while input is locked, got %v", evs)
	}
}

func TestAutoplayer_MatchesFreePlayRound(t *testing.T) {
	ts := NewTestSim(WithVariant(VariantFreePlay), WithTargets(tiltedTarget))
	bot := NewAutoplayer(ts.Session.Config())
	runBot(ts, bot, 10*60)
	if ts.Session.Rounds() < 1 {
		t.Fatalf("bot failed to match in 10s, best=%d%%\n%s", ts.Session.HUD().BestPercent, ts.SimLog.Format())
	}
	if ts.SimLog.CountCategory("input", "") != 0 {
		t.Fatal("bot must play through raw input only")
	}
}

func TestAutoplayer_MatchesTimedRound(t *testing.T) {
	ts := NewTestSim(WithVariant(VariantTimed), WithTargets(tiltedTarget))
	bot := NewAutoplayer(ts.Session.Config())
	for i := 0; i < 10*60 && ts.Session.Rounds() == 0; i++ {
		evs := bot.Plan(ts.Session)
		for _, ev := range evs {
			if ev.Kind == EventPointerDown && ev.Button == ButtonSecondary {
				t.Fatal("timed bot must not try to translate")
			}
		}
		ts.Send(evs...)
		ts.RunFrames(1)
	}
	if ts.Session.Rounds() < 1 {
		t.Fatalf("timed bot failed to match in 10s, best=%d%%", ts.Session.HUD().BestPercent)
	}
}

func TestAutoplayer_CandidatesFollowVariant(t *testing.T) {
	count := func(cfg Config) (keys, moves int) {
		for _, c := range NewAutoplayer(cfg).candidates() {
			switch c.kind {
			case 3:
				keys++
			case 1:
				moves++
			}
		}
		return keys, moves
	}
	if keys, moves := count(TimedConfig()); keys == 0 || moves != 0 {
		t.Fatalf("timed bot: expected key candidates and no translate, got keys=%d moves=%d", keys, moves)
	}
	if keys, moves := count(FreePlayConfig()); keys != 0 || moves == 0 {
		t.Fatalf("free-play bot: expected translate candidates and no keys, got keys=%d moves=%d", keys, moves)
	}
}

func TestAutoplayer_ReleasesOnStall(t *testing.T) {
	ts := NewTestSim(WithTargets(yawedTarget))
	ts.WaitForInput()
	ts.Session.player = ts.Session.Target()
	bot := NewAutoplayer(ts.Session.Config())

	if evs := bot.Plan(ts.Session); len(evs) != 0 {
		t.Fatalf("nothing beats a perfect pose, expected no events, got %v", evs)
	}
	if bot.Stalled() != 1 || bot.step != autoMaxStep/2 {
		t.Fatalf("expected one stall and a halved step, stalled=%d step=%.1f", bot.Stalled(), bot.step)
	}
	bot.Reset()
	if bot.Stalled() != 0 || bot.step != autoMaxStep {
		t.Fatal("Reset must restore the coarse step")
	}
}
