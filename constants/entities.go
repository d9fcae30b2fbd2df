package constants

// --- Player ---
const (
	// PlayerHitPoints is the starting hit point count of the player
	PlayerHitPoints = 5
)

// --- Enemy ---
const (
	// EnemyHitPoints is the starting hit point count of every enemy
	EnemyHitPoints = 1
)

// --- Projectile ---
const (
	// ProjectileChar is the glyph of a projectile
	ProjectileChar = '|'
)
