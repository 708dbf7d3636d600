package game

import (
	"strings"
	"testing"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		pct        int
		celebrated bool
		ended      bool
		rounds     int
		want       string
	}{
		{10, false, false, 0, statusKeepGoing},
		{69, false, false, 0, statusKeepGoing},
		{70, false, false, 0, statusClose},
		{79, false, false, 0, statusClose},
		{20, true, false, 0, statusMatched},
		{95, true, true, 3, "Time's up! 3 poses matched."},
		{95, false, true, 1, "Time's up! 1 pose matched."},
	}
	for _, tc := range cases {
		if got := statusFor(tc.pct, tc.celebrated, tc.ended, tc.rounds); got != tc.want {
			t.Fatalf("statusFor(%d, %v, %v, %d) = %q, want %q", tc.pct, tc.celebrated, tc.ended, tc.rounds, got, tc.want)
		}
	}
}

func TestBannerGlow(t *testing.T) {
	if bannerGlow(50) != 0 || bannerGlow(70) != 0 {
		t.Fatal("no glow below the close threshold")
	}
	if g := bannerGlow(85); g != 0.5 {
		t.Fatalf("expected half glow at 85%%, got %.3f", g)
	}
	if bannerGlow(100) != 1 {
		t.Fatal("full glow at 100%")
	}
}

func TestShareLine(t *testing.T) {
	timed := HUD{TimerEnabled: true, Rounds: 7, BestPercent: 96}
	if got := timed.ShareLine(VariantTimed); !strings.Contains(got, "7 poses matched in 02:59") || !strings.Contains(got, "best 96%") {
		t.Fatalf("unexpected timed share line %q", got)
	}
	free := HUD{Rounds: 2, BestPercent: 88}
	if got := free.ShareLine(VariantFreePlay); got != "Egg Match (free): 2 poses matched, best 88%" {
		t.Fatalf("unexpected free-play share line %q", got)
	}
}

func TestParseVariant(t *testing.T) {
	if v, ok := ParseVariant("timed"); !ok || v != VariantTimed {
		t.Fatal("timed should parse")
	}
	if v, ok := ParseVariant("free"); !ok || v != VariantFreePlay {
		t.Fatal("free should parse")
	}
	if v, ok := ParseVariant("arcade"); ok || v != VariantFreePlay {
		t.Fatal("unknown variants fall back to free play with ok=false")
	}
	if ConfigFor(VariantTimed).Weights.Position != 0 {
		t.Fatal("timed preset must not score position")
	}
}
