package sim

import (
	"fmt"
	"time"
)

// World owns every entity and timer of one game.
// It is not safe for concurrent use; the driver calls it from one goroutine.
type World struct {
	cfg   Config
	rules Rules
	arena Arena
	rng   Rand

	player  Player
	enemies []Enemy
	state   State
	score   int

	lastFired time.Time
	lastSpawn time.Time

	pending []Event
}

// NewWorld builds a world centered in arena.
// With lifecycle rules the world starts in the menu, otherwise it is playing at once.
// The first shot is available immediately; the first spawn is one interval after now.
func NewWorld(cfg Config, rules Rules, arena Arena, rng Rand, now time.Time) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("%w: arena %vx%v", ErrInvalidConfig, arena.Width, arena.Height)
	}
	if rng == nil {
		rng = NewRand(uint64(now.UnixNano()))
	}

	w := &World{
		cfg:       cfg,
		rules:     rules,
		arena:     arena,
		rng:       rng,
		state:     StatePlaying,
		lastSpawn: now,
	}
	if rules.Lifecycle {
		w.state = StateMenu
	}
	w.resetPlayer()
	return w, nil
}

func (w *World) resetPlayer() {
	w.player = Player{
		Pos:    w.arena.Center(),
		Size:   w.cfg.PlayerSize,
		Angle:  w.player.Angle,
		Speed:  w.cfg.PlayerSpeed,
		Health: w.cfg.PlayerHealth,
	}
	if w.rules.ClampToArena {
		w.player.Pos = w.arena.ClampCenter(w.player.Pos, w.player.Size/2)
	}
}

// Start moves the menu into play: score, health and position are reset and the
// field is cleared. Timers keep running.
func (w *World) Start() []Event {
	if !w.transition(StatePlaying) {
		return nil
	}
	w.score = 0
	w.enemies = nil
	w.resetPlayer()
	return []Event{{Kind: EventStarted, Pos: w.player.Pos}}
}

// Restart returns a finished game to the menu when the rules allow it
func (w *World) Restart() bool {
	return w.transition(StateMenu)
}

// Resize replaces the arena bounds. Under clamping rules the player is pulled back
// inside the new bounds immediately.
func (w *World) Resize(a Arena) {
	if a.Width <= 0 || a.Height <= 0 {
		return
	}
	w.arena = a
	if w.rules.ClampToArena {
		w.player.Pos = w.arena.ClampCenter(w.player.Pos, w.player.Size/2)
	}
}

// State returns the current lifecycle state
func (w *World) State() State { return w.state }

// Score returns the accumulated score
func (w *World) Score() int { return w.score }

// Arena returns the current bounds
func (w *World) Arena() Arena { return w.arena }

// Rules returns the variant rules in effect
func (w *World) Rules() Rules { return w.rules }

// PlayerPos returns the player center
func (w *World) PlayerPos() Vec { return w.player.Pos }
