package constants

// Instruction lines printed before the game starts
const (
	InstructionShoot = "Press [Spacebar] to shoot."
	InstructionStart = "Press any key to start the game."
)

// StatusFormat is the status line shown above the playfield: kills, wave, live projectiles
const StatusFormat = " Kills: %d  Wave: %d  Shots: %d"
