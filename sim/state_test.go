package sim

import (
	"errors"
	"testing"
)

// TestInitialState verifies lifecycle worlds open in the menu and others start playing
func TestInitialState(t *testing.T) {
	tests := []struct {
		name     string
		rules    Rules
		expected State
	}{
		{name: "Classic", rules: RulesClassic, expected: StatePlaying},
		{name: "Arcade", rules: RulesArcade, expected: StateMenu},
		{name: "Mobile", rules: RulesMobile, expected: StatePlaying},
		{name: "Full", rules: RulesFull, expected: StateMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, DefaultConfig(), tt.rules)
			if w.State() != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, w.State())
			}
		})
	}
}

// TestStepIsNoOpInMenu verifies nothing moves, fires or spawns before the start trigger
func TestStepIsNoOpInMenu(t *testing.T) {
	w := newTestWorld(t, DefaultConfig(), RulesArcade)
	start := w.player.Pos

	events := w.Step(at(10000), Input{Right: true, Shooting: true})

	if events != nil {
		t.Errorf("Expected no events in menu, got %v", events)
	}
	if w.player.Pos != start {
		t.Errorf("Expected player to stay at %v, got %v", start, w.player.Pos)
	}
	if len(w.enemies) != 0 || len(w.player.Bullets) != 0 {
		t.Errorf("Expected empty field, got %d enemies %d bullets", len(w.enemies), len(w.player.Bullets))
	}
}

// TestStartResetsRound verifies start clears the field and restores health and score
func TestStartResetsRound(t *testing.T) {
	w := newTestWorld(t, DefaultConfig(), RulesArcade)
	w.score = 50
	w.player.Health = 1
	w.player.Pos = Vec{X: 10, Y: 10}
	w.enemies = []Enemy{{Pos: Vec{X: 1, Y: 1}, Size: 20, Health: 2}}
	w.player.Bullets = []Bullet{{Pos: Vec{X: 5, Y: 5}, Size: 5}}

	events := w.Start()

	if len(events) != 1 || events[0].Kind != EventStarted {
		t.Fatalf("Expected a single started event, got %v", events)
	}
	if w.State() != StatePlaying {
		t.Errorf("Expected playing, got %v", w.State())
	}
	if w.Score() != 0 {
		t.Errorf("Expected score 0, got %d", w.Score())
	}
	if w.player.Health != 3 {
		t.Errorf("Expected health 3, got %d", w.player.Health)
	}
	if w.player.Pos != (Vec{X: 400, Y: 300}) {
		t.Errorf("Expected player centered, got %v", w.player.Pos)
	}
	if len(w.enemies) != 0 || len(w.player.Bullets) != 0 {
		t.Errorf("Expected empty field, got %d enemies %d bullets", len(w.enemies), len(w.player.Bullets))
	}

	if again := w.Start(); again != nil {
		t.Errorf("Expected second start to be rejected, got %v", again)
	}
}

// TestMeleeDamage verifies an enemy in melee range costs one health and is removed
func TestMeleeDamage(t *testing.T) {
	w := newTestWorld(t, stillConfig(), RulesArcade)
	w.Start()
	p := w.player.Pos
	w.enemies = []Enemy{
		{Pos: Vec{X: p.X - 10, Y: p.Y - 10}, Size: 20, Health: 2},
		{Pos: Vec{X: 0, Y: 0}, Size: 20, Health: 2},
	}

	events := w.Step(at(1), Input{})

	if w.player.Health != 2 {
		t.Errorf("Expected health 2, got %d", w.player.Health)
	}
	if len(w.enemies) != 1 || w.enemies[0].Pos != (Vec{X: 0, Y: 0}) {
		t.Errorf("Expected only the distant enemy to remain, got %+v", w.enemies)
	}
	if countEvents(events, EventPlayerDamaged) != 1 {
		t.Errorf("Expected 1 damage event, got %d", countEvents(events, EventPlayerDamaged))
	}
	if w.State() != StatePlaying {
		t.Errorf("Expected still playing, got %v", w.State())
	}
}

// TestMeleeRangeIsStrict verifies an enemy exactly at melee range does no damage
func TestMeleeRangeIsStrict(t *testing.T) {
	w := newTestWorld(t, stillConfig(), RulesArcade)
	w.Start()
	p := w.player.Pos
	// enemy center 15 units right of the player
	w.enemies = []Enemy{{Pos: Vec{X: p.X + 5, Y: p.Y - 10}, Size: 20, Health: 2}}

	w.Step(at(1), Input{})

	if w.player.Health != 3 {
		t.Errorf("Expected health 3, got %d", w.player.Health)
	}
	if len(w.enemies) != 1 {
		t.Errorf("Expected enemy to remain, got %d", len(w.enemies))
	}
}

// TestMeleeDisabledInClassic verifies classic enemies overlap the player harmlessly
func TestMeleeDisabledInClassic(t *testing.T) {
	w := newTestWorld(t, stillConfig(), RulesClassic)
	p := w.player.Pos
	w.enemies = []Enemy{{Pos: Vec{X: p.X - 10, Y: p.Y - 10}, Size: 20, Health: 2}}

	w.Step(at(1), Input{})

	if w.player.Health != 3 || len(w.enemies) != 1 {
		t.Errorf("Expected no melee in classic, got health %d enemies %d", w.player.Health, len(w.enemies))
	}
}

// TestGameOverAtZeroHealth verifies the transition happens exactly at zero and freezes the world
func TestGameOverAtZeroHealth(t *testing.T) {
	w := newTestWorld(t, stillConfig(), RulesArcade)
	w.Start()
	w.player.Health = 1
	p := w.player.Pos
	w.enemies = []Enemy{
		{Pos: Vec{X: p.X - 10, Y: p.Y - 10}, Size: 20, Health: 2},
		{Pos: Vec{X: p.X - 9, Y: p.Y - 9}, Size: 20, Health: 2},
	}

	events := w.Step(at(1), Input{})

	if w.State() != StateGameOver {
		t.Fatalf("Expected gameover, got %v", w.State())
	}
	if w.player.Health != 0 {
		t.Errorf("Expected health 0, got %d", w.player.Health)
	}
	if countEvents(events, EventGameOver) != 1 {
		t.Errorf("Expected 1 gameover event, got %d", countEvents(events, EventGameOver))
	}
	if countEvents(events, EventPlayerDamaged) != 1 {
		t.Errorf("Expected damage applied once, got %d", countEvents(events, EventPlayerDamaged))
	}

	before := w.Snapshot()
	if after := w.Step(at(60000), Input{Shooting: true, Left: true}); after != nil {
		t.Errorf("Expected no events after gameover, got %v", after)
	}
	now := w.Snapshot()
	if now.Player.Pos != before.Player.Pos || len(now.Enemies) != len(before.Enemies) {
		t.Error("Expected world frozen after gameover")
	}
}

// TestRestartRequiresRule verifies gameover only returns to the menu when allowed
func TestRestartRequiresRule(t *testing.T) {
	tests := []struct {
		name     string
		rules    Rules
		expected State
	}{
		{name: "Stranded", rules: RulesArcade, expected: StateGameOver},
		{name: "Allowed", rules: Rules{Lifecycle: true, AllowRestart: true}, expected: StateMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, DefaultConfig(), tt.rules)
			w.Start()
			w.state = StateGameOver

			w.Restart()
			if w.State() != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, w.State())
			}
		})
	}
}

// TestInvalidTransitions verifies the transition table rejects skipped phases
func TestInvalidTransitions(t *testing.T) {
	w := newTestWorld(t, DefaultConfig(), Rules{Lifecycle: true, AllowRestart: true})

	if w.CanTransition(StateGameOver) {
		t.Error("Expected menu -> gameover to be rejected")
	}
	if w.Restart() {
		t.Error("Expected menu -> menu to be rejected")
	}
	w.Start()
	if w.CanTransition(StateMenu) {
		t.Error("Expected playing -> menu to be rejected")
	}
}

// TestNewWorldRejectsInvalidConfig verifies configuration errors wrap ErrInvalidConfig
func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyHealth = 0
	if _, err := NewWorld(cfg, RulesClassic, Arena{Width: 100, Height: 100}, nil, testStart); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for enemy health, got %v", err)
	}

	if _, err := NewWorld(DefaultConfig(), RulesClassic, Arena{}, nil, testStart); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for empty arena, got %v", err)
	}
}
