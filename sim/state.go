package sim

// State is the lifecycle phase of a world
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

var validTransitions = map[State][]State{
	StateMenu:     {StatePlaying},
	StatePlaying:  {StateGameOver},
	StateGameOver: {StateMenu},
}

// CanTransition reports whether the world may move from its current state to `to`
func (w *World) CanTransition(to State) bool {
	if !w.rules.Lifecycle {
		return false
	}
	if w.state == StateGameOver && !w.rules.AllowRestart {
		return false
	}
	for _, s := range validTransitions[w.state] {
		if s == to {
			return true
		}
	}
	return false
}

func (w *World) transition(to State) bool {
	if !w.CanTransition(to) {
		return false
	}
	w.state = to
	return true
}
