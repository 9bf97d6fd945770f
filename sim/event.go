package sim

// EventKind identifies something that happened during a step
type EventKind int

const (
	EventBulletFired EventKind = iota
	EventEnemyHit
	EventEnemyKilled
	EventEnemySpawned
	EventPlayerDamaged
	EventGameOver
	EventStarted
)

func (k EventKind) String() string {
	switch k {
	case EventBulletFired:
		return "bullet_fired"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventPlayerDamaged:
		return "player_damaged"
	case EventGameOver:
		return "game_over"
	case EventStarted:
		return "started"
	default:
		return "unknown"
	}
}

// Event is an effect of a step, positioned where it happened
type Event struct {
	Kind EventKind
	Pos  Vec
}
