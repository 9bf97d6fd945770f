package sim

// PlayerView is the renderer's copy of the player
type PlayerView struct {
	Pos     Vec
	Size    float64
	Angle   float64
	Health  int
	Bullets []Bullet
}

// Snapshot is a read-only copy of the world after a step
type Snapshot struct {
	State     State
	Lifecycle bool
	// Restartable reports whether game over can return to the menu
	Restartable bool
	Score       int
	Arena       Arena
	Player      PlayerView
	Enemies     []Enemy
	MaxHealth   int
	// EnemyHealth is the health a fresh enemy spawns with
	EnemyHealth int
}

// Snapshot copies the current state; later steps do not mutate the result
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		State:       w.state,
		Lifecycle:   w.rules.Lifecycle,
		Restartable: w.rules.AllowRestart,
		Score:       w.score,
		Arena:       w.arena,
		Player: PlayerView{
			Pos:     w.player.Pos,
			Size:    w.player.Size,
			Angle:   w.player.Angle,
			Health:  w.player.Health,
			Bullets: append([]Bullet(nil), w.player.Bullets...),
		},
		Enemies:     append([]Enemy(nil), w.enemies...),
		MaxHealth:   w.cfg.PlayerHealth,
		EnemyHealth: w.cfg.EnemyHealth,
	}
}
