package constants

import "time"

// Player
const (
	// PlayerSpeed is the per-tick displacement for each held direction
	PlayerSpeed = 5.0

	// PlayerSize is the side of the player square, in world units
	PlayerSize = 20.0

	// PlayerHealth is the health restored on every start
	PlayerHealth = 3
)

// Bullets
const (
	// BulletSpeed is the per-tick travel distance along the bullet angle
	BulletSpeed = 10.0

	// BulletSize is the side of a bullet square
	BulletSize = 5.0

	// BulletCooldown is the minimum wall-clock gap between two shots
	BulletCooldown = 200 * time.Millisecond
)

// Enemies
const (
	// EnemySpawnInterval is the wall-clock gap between two spawns
	EnemySpawnInterval = 2000 * time.Millisecond

	// EnemySpeed is the per-tick homing displacement
	EnemySpeed = 1.5

	// EnemySize is the side of an enemy square
	EnemySize = 20.0

	// EnemyHealth is the number of hits an enemy absorbs
	EnemyHealth = 2

	// MeleeRange is the center-to-center distance at which an enemy damages the player
	MeleeRange = 15.0
)

// Scoring
const (
	// KillScore is awarded per destroyed enemy
	KillScore = 10
)
