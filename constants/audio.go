package constants

import "time"

// Sound Cue Timing
const (
	// FireSoundDuration is the length of the shot blip
	FireSoundDuration = 40 * time.Millisecond
	// FireSoundFreq is the shot blip pitch in Hz
	FireSoundFreq = 1320

	// HitSoundDuration is the length of the enemy hit crunch
	HitSoundDuration = 90 * time.Millisecond
	// HitSoundFreq is the base pitch of the hit crunch in Hz
	HitSoundFreq = 220

	// WaveSoundDuration is the length of each note of the new-wave chime
	WaveSoundDuration = 120 * time.Millisecond
)

// WaveSoundNotes is the ascending chime played when a wave spawns
var WaveSoundNotes = []float64{523.25, 659.25, 783.99}
