package constants

import (
	"testing"
	"time"
)

// TestKeyHoldWindowCoversFrames verifies a held key survives at least one frame gap
func TestKeyHoldWindowCoversFrames(t *testing.T) {
	if KeyHoldWindow <= FrameUpdateInterval {
		t.Errorf("Expected KeyHoldWindow > FrameUpdateInterval, got %v <= %v", KeyHoldWindow, FrameUpdateInterval)
	}
}

// TestCooldownWithinSpawnInterval verifies several shots fit between two spawns
func TestCooldownWithinSpawnInterval(t *testing.T) {
	tests := []struct {
		name     string
		window   time.Duration
		expected int
	}{
		{name: "One spawn interval", window: EnemySpawnInterval, expected: 10},
		{name: "Five seconds", window: 5 * time.Second, expected: 25},
		{name: "One second", window: time.Second, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shots := int(tt.window / BulletCooldown)
			if shots != tt.expected {
				t.Errorf("Expected %d shots per %v, got %d", tt.expected, tt.window, shots)
			}
		})
	}
}

// TestEnemyFitsArenaCell verifies an enemy spans at least one terminal cell on both axes
func TestEnemyFitsArenaCell(t *testing.T) {
	if EnemySize < CellWidth {
		t.Errorf("Expected EnemySize >= CellWidth, got %v < %v", EnemySize, CellWidth)
	}
	if EnemySize < CellHeight {
		t.Errorf("Expected EnemySize >= CellHeight, got %v < %v", EnemySize, CellHeight)
	}
}
