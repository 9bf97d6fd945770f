package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering and simulation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameRate and MaxFrameRate bound the configurable frame rate
	MinFrameRate = 10
	MaxFrameRate = 240
)

// Event Pump
const (
	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)
