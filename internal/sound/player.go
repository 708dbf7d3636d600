package sound

import (
	"github.com/Garsondee/Egg-Match/internal/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays the pre-rendered chime. The audio context is created on
// first use so a muted session never opens an audio device.
type Player struct {
	ctx    *audio.Context
	pcm    []byte
	cur    *audio.Player
	muted  bool
	volume float64
	log    *logging.Logger
}

// NewPlayer renders the chime at volume (0..1).
func NewPlayer(volume float64, muted bool, log *logging.Logger) *Player {
	if log == nil {
		log = logging.Discard()
	}
	return &Player{
		pcm:    RenderPCM(Chime(volume), ChimeLength()),
		muted:  muted,
		volume: volume,
		log:    log,
	}
}

// SetMuted toggles playback.
func (p *Player) SetMuted(m bool) {
	p.muted = m
	if m && p.cur != nil {
		p.cur.Pause()
	}
}

// Muted reports whether playback is off.
func (p *Player) Muted() bool { return p.muted }

// Celebrate starts the chime, cutting off any chime still playing.
func (p *Player) Celebrate() {
	if p.muted || len(p.pcm) == 0 {
		return
	}
	if p.ctx == nil {
		if c := audio.CurrentContext(); c != nil {
			if c.SampleRate() != int(SampleRate) {
				p.log.Warnf("audio context runs at %d Hz, chime disabled", c.SampleRate())
				p.muted = true
				return
			}
			p.ctx = c
		} else {
			p.ctx = audio.NewContext(int(SampleRate))
		}
	}
	if p.cur != nil {
		if err := p.cur.Close(); err != nil {
			p.log.Debugf("close chime player: %v", err)
		}
	}
	p.cur = p.ctx.NewPlayerFromBytes(p.pcm)
	p.cur.Play()
}
