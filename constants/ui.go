package constants

import "time"

// Viewport Layout
const (
	// CellWidth is the number of world units covered by one terminal column
	CellWidth = 10.0

	// CellHeight is the number of world units covered by one terminal row.
	// Terminal cells are roughly twice as tall as wide.
	CellHeight = 20.0

	// HUDRows is the number of rows reserved for the status line
	HUDRows = 1
)

// Input Timing
const (
	// KeyHoldWindow is how long a key press counts as held.
	// Terminals report no key release, so repeats refresh the window.
	KeyHoldWindow = 200 * time.Millisecond
)

// HUD Text
const (
	StateTextMenu     = " MENU "
	StateTextPlaying  = " PLAY "
	StateTextGameOver = " OVER "

	MenuTitle    = "SQUARE SHOOTER"
	MenuPrompt   = "press ENTER or click to start"
	MenuControls = "WASD/arrows move  mouse aims  click/space fires  q quits"

	GameOverTitle        = "GAME OVER"
	GameOverRestartHint  = "press r to return to the menu"
	GameOverTerminalHint = "press q to quit"
)

// HUD Labels
const (
	HUDScoreFormat   = " SCORE %d "
	HUDHealthGlyph   = '♥'
	HUDHealthEmpty   = '♡'
	HUDCountsFormat  = " enemies %d  bullets %d "
	HUDFPSFormat     = " %d fps "
	HUDAudioStr      = " ♪ "
	GameOverScoreFmt = "final score %d"
)

// Glyphs
const (
	// PlayerArrows lists the heading glyphs clockwise from +X in 45 degree steps.
	// Screen Y grows downward, so pi/2 points down.
	PlayerArrows = "→↘↓↙←↖↑↗"

	PlayerBodyGlyph = '▓'
	EnemyGlyph      = '█'
	BulletGlyph     = '•'
	HealthBarGlyph  = '▄'
)
