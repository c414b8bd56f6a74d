package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(44100)

// tone is a sine with a third harmonic, faded linearly over its last release
// samples.
type tone struct {
	freq    float64
	phase   float64
	pos     int
	total   int
	release int
	rate    beep.SampleRate
}

func newTone(freq float64, duration, release time.Duration, rate beep.SampleRate) *tone {
	total := rate.N(duration)
	rel := rate.N(release)
	if rel > total {
		rel = total
	}
	return &tone{freq: freq, total: total, release: rel, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		val := math.Sin(2*math.Pi*t.phase) + 0.25*math.Sin(6*math.Pi*t.phase)
		val *= 0.8

		if remaining := t.total - t.pos; t.release > 0 && remaining < t.release {
			val *= float64(remaining) / float64(t.release)
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// volume scales s by v in [0, 1]. Zero is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

type Cue int

const (
	CueStart Cue = iota
	CueEat
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game_over"
	}
	return "unknown"
}

// streamFor builds a fresh streamer for a cue; streamers are single use.
func streamFor(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueStart:
		return beep.Seq(
			newTone(523.25, 70*time.Millisecond, 20*time.Millisecond, rate),
			newTone(783.99, 90*time.Millisecond, 40*time.Millisecond, rate),
		)
	case CueEat:
		sine, err := generators.SineTone(rate, 1046.5)
		if err != nil {
			return newTone(1046.5, 60*time.Millisecond, 30*time.Millisecond, rate)
		}
		return beep.Take(rate.N(60*time.Millisecond), sine)
	case CueGameOver:
		return beep.Seq(
			newTone(392.0, 120*time.Millisecond, 30*time.Millisecond, rate),
			newTone(261.63, 120*time.Millisecond, 30*time.Millisecond, rate),
			newTone(196.0, 260*time.Millisecond, 160*time.Millisecond, rate),
		)
	}
	return nil
}
