package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/square-shooter/constants"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds the tuning values of the simulation.
// Speeds are in world units per tick, sizes in world units.
type Config struct {
	PlayerSpeed  float64
	PlayerSize   float64
	PlayerHealth int

	BulletSpeed    float64
	BulletSize     float64
	BulletCooldown time.Duration

	SpawnInterval time.Duration
	EnemySpeed    float64
	EnemySize     float64
	EnemyHealth   int

	MeleeRange float64
	KillScore  int
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		PlayerSpeed:    constants.PlayerSpeed,
		PlayerSize:     constants.PlayerSize,
		PlayerHealth:   constants.PlayerHealth,
		BulletSpeed:    constants.BulletSpeed,
		BulletSize:     constants.BulletSize,
		BulletCooldown: constants.BulletCooldown,
		SpawnInterval:  constants.EnemySpawnInterval,
		EnemySpeed:     constants.EnemySpeed,
		EnemySize:      constants.EnemySize,
		EnemyHealth:    constants.EnemyHealth,
		MeleeRange:     constants.MeleeRange,
		KillScore:      constants.KillScore,
	}
}

// Validate rejects values the step loop cannot work with
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"player speed", c.PlayerSpeed >= 0},
		{"player size", c.PlayerSize > 0},
		{"player health", c.PlayerHealth > 0},
		{"bullet speed", c.BulletSpeed > 0},
		{"bullet size", c.BulletSize > 0},
		{"bullet cooldown", c.BulletCooldown >= 0},
		{"spawn interval", c.SpawnInterval > 0},
		{"enemy speed", c.EnemySpeed >= 0},
		{"enemy size", c.EnemySize > 0},
		{"enemy health", c.EnemyHealth > 0},
		{"melee range", c.MeleeRange >= 0},
		{"kill score", c.KillScore >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, chk.name)
		}
	}
	return nil
}

// Rules toggles the increments that separate the game variants
type Rules struct {
	// Lifecycle enables health, score, melee damage and the menu/playing/gameover states
	Lifecycle bool
	// ClampToArena keeps the player inside the current arena bounds
	ClampToArena bool
	// AllowRestart permits gameover -> menu
	AllowRestart bool
}

// Variant presets
var (
	RulesClassic = Rules{}
	RulesArcade  = Rules{Lifecycle: true}
	RulesMobile  = Rules{ClampToArena: true}
	RulesFull    = Rules{Lifecycle: true, ClampToArena: true}
)
