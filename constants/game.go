package constants

import "time"

// Game Defaults
const (
	// DefaultRows is the playfield height
	DefaultRows = 24

	// DefaultCols is the playfield width
	DefaultCols = 48

	// DefaultFramesPerSecond is the tick rate of the game loop
	DefaultFramesPerSecond = 30

	// MaxBehindTicks is how many tick intervals the scheduler may lag before it resynchronises
	MaxBehindTicks = 2
)

// FrameInterval converts a frame rate into the tick interval
func FrameInterval(framesPerSecond int) time.Duration {
	if framesPerSecond <= 0 {
		framesPerSecond = DefaultFramesPerSecond
	}
	return time.Second / time.Duration(framesPerSecond)
}

// --- Waves ---
const (
	// WaveSize is the number of enemies in every wave
	WaveSize = 8

	// WaveRow is the playfield row enemies spawn on
	WaveRow = 1

	// WaveFirstCol is the column of the leftmost enemy
	WaveFirstCol = 1

	// WaveSpacing is the column distance between neighbouring enemies
	WaveSpacing = 6
)

// --- Firing ---
const (
	// BurstKillStep adds one projectile to every burst per this many kills
	BurstKillStep = 4

	// BurstSpreadStep shifts the burst one column left per this many kills
	BurstSpreadStep = 8
)
