package engine

//go:generate go tool mockgen -destination=./mocks/mock_interfaces.go -package=mocks . SoundPlayer,FrameRenderer

import (
	"github.com/lixenwraith/square-shooter/audio"
	"github.com/lixenwraith/square-shooter/render"
)

// SoundPlayer plays effects for simulation events
type SoundPlayer interface {
	Play(st audio.SoundType)
	ToggleMute() bool
	Muted() bool
}

// FrameRenderer draws one frame
type FrameRenderer interface {
	Draw(f render.Frame)
}
