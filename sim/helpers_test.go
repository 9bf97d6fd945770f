package sim

import (
	"testing"
	"time"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// fixedRand always returns the same value
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestWorld(t *testing.T, cfg Config, rules Rules) *World {
	t.Helper()
	w, err := NewWorld(cfg, rules, Arena{Width: 800, Height: 600}, fixedRand(0.5), testStart)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

// stillConfig returns the default tuning with stationary enemies
func stillConfig() Config {
	cfg := DefaultConfig()
	cfg.EnemySpeed = 0
	return cfg
}

func at(ms int) time.Time {
	return testStart.Add(time.Duration(ms) * time.Millisecond)
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
