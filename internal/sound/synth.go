// Package sound synthesizes the match chime and plays it through ebiten's
// audio context.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared by synthesis and playback.
const SampleRate = beep.SampleRate(44100)

// Chime timing.
const (
	noteDuration = 420 * time.Millisecond
	noteGap      = 110 * time.Millisecond
	noteAttack   = 6 * time.Millisecond
	noteRelease  = 360 * time.Millisecond
)

// Two rising notes, E6 then B6.
var chimeNotes = []float64{1318.51, 1975.53}

type sine struct {
	freq  float64
	phase float64
	left  int
	rate  beep.SampleRate
}

func newSine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{freq: freq, left: rate.N(d), rate: rate}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.left <= 0 {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0], samples[i][1] = v, v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.left--
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// envelope ramps in over attack and out over the last release of total.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func newEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(total)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if e.pos < e.attack {
			g = float64(e.pos) / float64(e.attack)
		}
		if rs := e.total - e.release; e.pos >= rs && e.release > 0 {
			g = math.Max(0, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a bell-ish tone: fundamental plus a quieter octave.
func note(freq float64, rate beep.SampleRate) beep.Streamer {
	fund := newEnvelope(newSine(freq, noteDuration, rate), noteDuration, noteAttack, noteRelease, rate)
	over := newEnvelope(newSine(freq*2, noteDuration, rate), noteDuration, noteAttack, noteRelease/2, rate)
	return beep.Mix(withVolume(fund, 0.7), withVolume(over, 0.25))
}

// Chime builds the celebration streamer at volume vol (0..1).
func Chime(vol float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(chimeNotes))
	for i, f := range chimeNotes {
		delay := SampleRate.N(time.Duration(i) * noteGap)
		parts = append(parts, beep.Seq(beep.Silence(delay), note(f, SampleRate)))
	}
	return withVolume(beep.Mix(parts...), vol)
}

// ChimeLength is the number of frames Chime produces.
func ChimeLength() int {
	return SampleRate.N(time.Duration(len(chimeNotes)-1)*noteGap + noteDuration)
}

// RenderPCM drains s into interleaved 16-bit little-endian stereo, at most
// maxFrames frames. Out-of-range samples are clipped.
func RenderPCM(s beep.Streamer, maxFrames int) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, maxFrames*4)
	for frames := 0; frames < maxFrames; {
		chunk := buf
		if rem := maxFrames - frames; rem < len(chunk) {
			chunk = chunk[:rem]
		}
		n, ok := s.Stream(chunk)
		for _, smp := range chunk[:n] {
			for c := 0; c < 2; c++ {
				v := int16(math.Round(math.Max(-1, math.Min(1, smp[c])) * math.MaxInt16))
				out = append(out, byte(v), byte(uint16(v)>>8))
			}
		}
		frames += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}
