package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPlayer     = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPlayerHead = tcell.NewRGBColor(140, 190, 255) // Bright Blue
	RgbBullet     = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbHealthBar  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbOverlay    = tcell.NewRGBColor(255, 255, 255) // White
	RgbOverlayDim = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	// Status bar
	RgbStatusBar        = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText       = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStateMenuBg      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatePlayingBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStateGameOverBg  = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbHealthFull       = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbAudioMuted       = tcell.NewRGBColor(255, 0, 0)     // Bright red
	RgbAudioUnmuted     = tcell.NewRGBColor(0, 255, 0)     // Bright green
	RgbStatusBackground = tcell.NewRGBColor(40, 42, 54)    // Slightly lifted background
)

// Enemy shading endpoints in linear blend space
var (
	enemyFull = colorful.Color{R: 1.0, G: 0.31, B: 0.31}  // Normal Red
	enemyWeak = colorful.Color{R: 0.40, G: 0.26, B: 0.13} // Dark brown
)

// EnemyColor shades an enemy by remaining health ratio in [0, 1]
func EnemyColor(ratio float64) tcell.Color {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	c := enemyWeak.BlendLab(enemyFull, ratio).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
