package game

import (
	"testing"

	"github.com/faiface/beep"

	"github.com/iburimskiy/cloth/internal/config"
)

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		if s[0] > m {
			m = s[0]
		}
		if -s[0] > m {
			m = -s[0]
		}
	}
	return m
}

func TestSnapSynthSilentUntilTriggered(t *testing.T) {
	s := newSnapSynth(beep.SampleRate(config.SampleRate))
	buf := make([][2]float64, 512)
	n, ok := s.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v; want %d, true", n, ok, len(buf))
	}
	if p := peak(buf); p != 0 {
		t.Fatalf("idle synth peak = %f, want 0", p)
	}
}

func TestSnapSynthClickDecays(t *testing.T) {
	s := newSnapSynth(beep.SampleRate(config.SampleRate))
	s.trigger()

	buf := make([][2]float64, 512)
	s.Stream(buf)
	if p := peak(buf); p <= 0.01 || p > config.SnapVolume {
		t.Fatalf("click peak = %f", p)
	}

	long := make([][2]float64, config.SampleRate)
	s.Stream(long)
	if s.active() != 0 {
		t.Fatalf("voices still active after a second: %d", s.active())
	}
	s.Stream(buf)
	if p := peak(buf); p != 0 {
		t.Fatalf("peak after decay = %f, want 0", p)
	}
}

func TestSnapSynthMute(t *testing.T) {
	s := newSnapSynth(beep.SampleRate(config.SampleRate))
	s.setMuted(true)
	s.trigger()

	buf := make([][2]float64, 512)
	s.Stream(buf)
	if p := peak(buf); p != 0 {
		t.Fatalf("muted peak = %f, want 0", p)
	}
}

func TestSnapSynthVoiceLimit(t *testing.T) {
	s := newSnapSynth(beep.SampleRate(config.SampleRate))
	for i := 0; i < config.MaxSnapVoice*3; i++ {
		s.trigger()
	}
	if s.active() != config.MaxSnapVoice {
		t.Fatalf("voices = %d, want %d", s.active(), config.MaxSnapVoice)
	}
}
