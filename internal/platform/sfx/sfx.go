// Package sfx plays short synthesized tones for simulation events.
package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Player plays a cue for an event kind.
type Player interface {
	Play(kind core.EventKind)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.EventKind) {}

// Close does nothing.
func (Nop) Close() {}

// Frequencies in Hz per event kind. Kinds not listed are silent.
var Frequencies = map[core.EventKind]float64{
	core.EventBounce:         440,
	core.EventBrickHit:       660,
	core.EventBrickDestroyed: 880,
	core.EventMultiBall:      1320,
	core.EventBallLost:       220,
}

// Speaker mixes tones into the system audio device.
type Speaker struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	mixer  *beep.Mixer
	length time.Duration
	volume float64
	closed bool
}

// NewSpeaker initializes the audio device. The speaker can only be
// initialized once per process.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("sfx: init speaker: %w", err)
	}

	s := &Speaker{
		sr:     sr,
		mixer:  &beep.Mixer{},
		length: time.Duration(cfg.ToneMillis) * time.Millisecond,
		volume: cfg.Volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the tone for kind.
func (s *Speaker) Play(kind core.EventKind) {
	freq, ok := Frequencies[kind]
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st, err := Tone(s.sr, freq, s.length, s.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences every queued tone and releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Tone returns a sine tone of the given length. volume is a base-2
// exponent as used by effects.Volume (0 leaves the level unchanged).
func Tone(sr beep.SampleRate, freq float64, length time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sfx: tone %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(length), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// PlayEvents plays one cue per distinct event kind, in first-seen order.
func PlayEvents(p Player, events []core.Event) {
	var seen [8]bool
	for _, e := range events {
		k := int(e.Kind)
		if k >= 0 && k < len(seen) {
			if seen[k] {
				continue
			}
			seen[k] = true
		}
		p.Play(e.Kind)
	}
}
