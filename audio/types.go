package audio

import (
	"errors"
	"fmt"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot     SoundType = iota // Bullet fired
	SoundHit                       // Bullet struck an enemy
	SoundKill                      // Enemy destroyed
	SoundSpawn                     // Enemy entered the arena
	SoundDamage                    // Enemy reached the player
	SoundGameOver                  // Health ran out
	SoundStart                     // Round started
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:     "shot",
	SoundHit:      "hit",
	SoundKill:     "kill",
	SoundSpawn:    "spawn",
	SoundDamage:   "damage",
	SoundGameOver: "gameover",
	SoundStart:    "start",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return fmt.Sprintf("sound(%d)", int(s))
	}
	return soundNames[s]
}

// ParseSoundType maps a config key such as "shot" to its SoundType
func ParseSoundType(name string) (SoundType, error) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSound, name)
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
