package sound

import (
	"testing"
	"time"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/config"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

type recordingOutput struct {
	played []beep.Streamer
}

func (r *recordingOutput) Play(s beep.Streamer) {
	r.played = append(r.played, s)
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	tn := newTone(440, 100*time.Millisecond, 20*time.Millisecond, SampleRate)

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := tn.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %f out of range", buf[i][0])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("channels differ at %d", i)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := SampleRate.N(100 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if tn.Err() != nil {
		t.Errorf("unexpected error: %v", tn.Err())
	}
}

func TestToneFadesOut(t *testing.T) {
	tn := newTone(440, 10*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(10*time.Millisecond))
	n, _ := tn.Stream(buf)
	if n == 0 {
		t.Fatal("no samples")
	}
	last := buf[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("last sample %f, want near silence", last)
	}
}

func TestCuesAreFinite(t *testing.T) {
	for _, c := range []Cue{CueStart, CueEat, CueGameOver} {
		t.Run(c.String(), func(t *testing.T) {
			s := streamFor(c, SampleRate)
			if s == nil {
				t.Fatal("nil stream")
			}
			if n := drain(s); n == 0 {
				t.Error("cue produced no samples")
			}
		})
	}
}

func TestPlayerMapsEvents(t *testing.T) {
	out := &recordingOutput{}
	p := NewWithOutput(out, 50, zerolog.Nop())

	p.OnEvent(app.Event{Type: app.EventStarted})
	p.OnEvent(app.Event{Type: app.EventTicked})
	p.OnEvent(app.Event{Type: app.EventAte})
	p.OnEvent(app.Event{Type: app.EventPaused})
	p.OnEvent(app.Event{Type: app.EventEnded})

	if len(out.played) != 3 {
		t.Fatalf("played %d cues, want 3", len(out.played))
	}
}

func TestPlayerSilentAtZeroVolume(t *testing.T) {
	out := &recordingOutput{}
	p := NewWithOutput(out, 0, zerolog.Nop())
	p.Play(CueEat)

	if len(out.played) != 1 {
		t.Fatalf("played %d cues, want 1", len(out.played))
	}
	buf := make([][2]float64, 128)
	n, _ := out.played[0].Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %f, want 0", i, buf[i][0])
		}
	}
}

func TestDisabledPlayerIsNoop(t *testing.T) {
	p := New(config.SoundConfig{Enabled: false, Volume: 80}, zerolog.Nop())
	if p.Enabled() {
		t.Fatal("player should be disabled")
	}

	p.OnEvent(app.Event{Type: app.EventAte})
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestCloseSilences(t *testing.T) {
	out := &recordingOutput{}
	p := NewWithOutput(out, 50, zerolog.Nop())
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	p.Play(CueEat)
	if len(out.played) != 0 {
		t.Errorf("closed player played %d cues", len(out.played))
	}
}
