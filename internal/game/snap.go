package game

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/cloth/internal/config"
)

// snapSynth is an endless beep.Streamer that mixes a short decaying click
// for every torn link. The speaker pulls from it on its own goroutine.
type snapSynth struct {
	rate   beep.SampleRate
	voices []int // samples elapsed per voice
	muted  bool
	mu     sync.Mutex
}

func newSnapSynth(rate beep.SampleRate) *snapSynth {
	return &snapSynth{rate: rate}
}

// trigger starts a new click. Extra clicks beyond the voice limit are
// dropped; a tearing burst sounds the same either way.
func (s *snapSynth) trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.voices) < config.MaxSnapVoice {
		s.voices = append(s.voices, 0)
	}
}

func (s *snapSynth) setMuted(m bool) {
	s.mu.Lock()
	s.muted = m
	s.mu.Unlock()
}

func (s *snapSynth) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}

func (s *snapSynth) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rate := float64(s.rate)
	for i := range samples {
		var v float64
		for j := range s.voices {
			t := float64(s.voices[j]) / rate
			amp := config.SnapVolume * math.Exp(-t/config.SnapDecay)
			v += amp * math.Sin(2*math.Pi*config.SnapFreq*t)
			s.voices[j]++
		}
		if s.muted {
			v = 0
		}
		samples[i] = [2]float64{v, v}
	}

	// Drop voices that have decayed below audibility.
	limit := int(config.SnapDecay * 6 * rate)
	live := s.voices[:0]
	for _, n := range s.voices {
		if n < limit {
			live = append(live, n)
		}
	}
	s.voices = live
	return len(samples), true
}

func (s *snapSynth) Err() error { return nil }

// startAudio opens the speaker and plays the synth for the lifetime of the
// process.
func startAudio(s *snapSynth) error {
	if err := speaker.Init(s.rate, s.rate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}
