// Package sound plays short cues for game events through the system speaker.
package sound

import (
	"time"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// Output receives finished cue streams.
type Output interface {
	Play(s beep.Streamer)
}

// speakerOutput feeds a mixer that is attached to the speaker once.
type speakerOutput struct {
	mixer *beep.Mixer
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Player turns controller events into cues. It implements app.Listener.
type Player struct {
	out     Output
	volume  float64
	rate    beep.SampleRate
	enabled bool
	log     zerolog.Logger
}

// New opens the speaker when sound is enabled. A speaker that cannot be
// opened leaves a silent player; it is logged but not returned as an error.
func New(cfg config.SoundConfig, log zerolog.Logger) *Player {
	p := &Player{
		volume: float64(cfg.Volume) / 100,
		rate:   SampleRate,
		log:    log,
	}
	if !cfg.Enabled {
		return p
	}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		log.Warn().Err(err).Msg("sound disabled: speaker unavailable")
		return p
	}
	out := &speakerOutput{mixer: &beep.Mixer{}}
	speaker.Play(out.mixer)

	p.out = out
	p.enabled = true
	return p
}

// NewWithOutput builds an enabled player on a caller-supplied output.
func NewWithOutput(out Output, volume int, log zerolog.Logger) *Player {
	return &Player{
		out:     out,
		volume:  float64(volume) / 100,
		rate:    SampleRate,
		enabled: out != nil,
		log:     log,
	}
}

func (p *Player) Enabled() bool {
	return p.enabled
}

func (p *Player) Play(c Cue) {
	if !p.enabled {
		return
	}
	s := streamFor(c, p.rate)
	if s == nil {
		return
	}
	p.log.Debug().Stringer("cue", c).Msg("play")
	p.out.Play(volume(s, p.volume))
}

func (p *Player) OnEvent(e app.Event) {
	switch e.Type {
	case app.EventStarted:
		p.Play(CueStart)
	case app.EventAte:
		p.Play(CueEat)
	case app.EventEnded:
		p.Play(CueGameOver)
	}
}

// Close detaches the speaker. The player is silent afterwards.
func (p *Player) Close() error {
	if !p.enabled {
		return nil
	}
	p.enabled = false
	if _, ok := p.out.(*speakerOutput); ok {
		speaker.Clear()
		speaker.Close()
	}
	return nil
}
