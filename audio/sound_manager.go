package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/grid-shooter/constants"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the game's cues through a single speaker mixer
// All Play methods are no-ops until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// 100ms buffer keeps latency below a few frames
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup drops every queued sound; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether output is suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayFire plays a short falling chirp
func (sm *SoundManager) PlayFire() {
	sm.play(beep.Take(
		sampleRate.N(constants.FireSoundDuration),
		NewChirpGenerator(sampleRate, constants.FireSoundFreq, constants.FireSoundFreq/2, constants.FireSoundDuration),
	))
}

// PlayHit plays a low decaying thud
func (sm *SoundManager) PlayHit() {
	sm.play(beep.Take(
		sampleRate.N(constants.HitSoundDuration),
		NewToneGenerator(sampleRate, constants.HitSoundFreq),
	))
}

// PlayWave plays a rising arpeggio announcing a new wave
func (sm *SoundManager) PlayWave() {
	notes := make([]beep.Streamer, 0, len(constants.WaveSoundNotes))
	for _, freq := range constants.WaveSoundNotes {
		notes = append(notes, beep.Take(
			sampleRate.N(constants.WaveSoundDuration),
			NewToneGenerator(sampleRate, freq),
		))
	}
	sm.play(beep.Seq(notes...))
}

// Pending returns the number of sounds still in the mixer
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
