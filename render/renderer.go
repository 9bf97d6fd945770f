package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/square-shooter/constants"
	"github.com/lixenwraith/square-shooter/sim"
	"github.com/mattn/go-runewidth"
)

// Frame is everything drawn in one pass
type Frame struct {
	sim.Snapshot
	Muted bool
	Now   time.Time
}

// Renderer draws frames to a tcell screen
type Renderer struct {
	screen tcell.Screen
	view   *Viewport
	color  bool

	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewRenderer creates a renderer; color false draws with terminal defaults only
func NewRenderer(screen tcell.Screen, view *Viewport, color bool) *Renderer {
	return &Renderer{
		screen: screen,
		view:   view,
		color:  color,
	}
}

// Viewport returns the cell mapping used for drawing
func (r *Renderer) Viewport() *Viewport {
	return r.view
}

// style returns base with fg/bg applied in color mode
func (r *Renderer) style(fg, bg tcell.Color) tcell.Style {
	if !r.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(f Frame) {
	r.trackFPS(f.Now)

	r.screen.Fill(' ', r.style(tcell.ColorDefault, RgbBackground))

	for _, e := range f.Enemies {
		r.drawEnemy(e, f.EnemyHealth)
	}
	for _, b := range f.Player.Bullets {
		r.drawBullet(b)
	}
	r.drawPlayer(f.Player)
	r.drawStatusBar(f)

	if f.Lifecycle {
		switch f.State {
		case sim.StateMenu:
			r.drawMenu()
		case sim.StateGameOver:
			r.drawGameOver(f.Score, f.Restartable)
		}
	}

	r.screen.Show()
}

func (r *Renderer) trackFPS(now time.Time) {
	r.frameCount++
	if r.lastFpsUpdate.IsZero() {
		r.lastFpsUpdate = now
		return
	}
	if now.Sub(r.lastFpsUpdate) >= time.Second {
		r.currentFps = r.frameCount
		r.frameCount = 0
		r.lastFpsUpdate = now
	}
}

func (r *Renderer) set(col, row int, ch rune, st tcell.Style) {
	if !r.view.InArena(col, row) {
		return
	}
	r.screen.SetContent(col, row, ch, nil, st)
}

func (r *Renderer) drawEnemy(e sim.Enemy, maxHealth int) {
	ratio := 1.0
	if maxHealth > 0 {
		ratio = float64(e.Health) / float64(maxHealth)
	}
	st := r.style(EnemyColor(ratio), RgbBackground)

	c0, r0, c1, r1 := r.view.RectCells(e.Bounds())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.set(col, row, constants.EnemyGlyph, st)
		}
	}

	// Bar above, falling back below when the row above is outside the arena
	barRow := r0 - 1
	if !r.view.InArena(c0, barRow) {
		barRow = r1 + 1
	}
	width := c1 - c0 + 1
	filled := int(math.Ceil(float64(width) * ratio))
	barStyle := r.style(RgbHealthBar, RgbBackground)
	for i := 0; i < filled; i++ {
		r.set(c0+i, barRow, constants.HealthBarGlyph, barStyle)
	}
}

func (r *Renderer) drawBullet(b sim.Bullet) {
	col, row := r.view.WorldToCell(sim.Vec{X: b.Pos.X + b.Size/2, Y: b.Pos.Y + b.Size/2})
	r.set(col, row, constants.BulletGlyph, r.style(RgbBullet, RgbBackground))
}

func (r *Renderer) drawPlayer(p sim.PlayerView) {
	half := p.Size / 2
	body := r.style(RgbPlayer, RgbBackground)
	c0, r0, c1, r1 := r.view.RectCells(sim.Rect{X: p.Pos.X - half, Y: p.Pos.Y - half, W: p.Size, H: p.Size})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.set(col, row, constants.PlayerBodyGlyph, body)
		}
	}

	col, row := r.view.WorldToCell(p.Pos)
	head := r.style(RgbBackground, RgbPlayerHead)
	if !r.color {
		head = tcell.StyleDefault.Reverse(true)
	}
	r.set(col, row, ArrowGlyph(p.Angle), head)
}

// ArrowGlyph returns the arrow closest to angle, in radians with +Y down
func ArrowGlyph(angle float64) rune {
	arrows := []rune(constants.PlayerArrows)
	n := len(arrows)
	idx := int(math.Round(angle/(2*math.Pi/float64(n)))) % n
	if idx < 0 {
		idx += n
	}
	return arrows[idx]
}

// drawText writes s starting at x and returns the column after it
func (r *Renderer) drawText(x, y int, s string, st tcell.Style) int {
	cols, _ := r.view.Size()
	for _, ch := range s {
		if x >= cols {
			break
		}
		r.screen.SetContent(x, y, ch, nil, st)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (r *Renderer) drawStatusBar(f Frame) {
	cols, rows := r.view.Size()
	if rows < constants.HUDRows {
		return
	}
	defaultStyle := r.style(RgbStatusBar, RgbStatusBackground)
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, 0, ' ', nil, defaultStyle)
	}

	// Audio indicator always visible
	audioBg := RgbAudioUnmuted
	if f.Muted {
		audioBg = RgbAudioMuted
	}
	x := r.drawText(0, 0, constants.HUDAudioStr, r.style(RgbStatusText, audioBg))

	if f.Lifecycle {
		var stateText string
		var stateBg tcell.Color
		switch f.State {
		case sim.StateMenu:
			stateText, stateBg = constants.StateTextMenu, RgbStateMenuBg
		case sim.StatePlaying:
			stateText, stateBg = constants.StateTextPlaying, RgbStatePlayingBg
		default:
			stateText, stateBg = constants.StateTextGameOver, RgbStateGameOverBg
		}
		x = r.drawText(x, 0, stateText, r.style(RgbStatusText, stateBg))
		x = r.drawText(x, 0, fmt.Sprintf(constants.HUDScoreFormat, f.Score), defaultStyle)

		heartStyle := r.style(RgbHealthFull, RgbStatusBackground)
		for i := 0; i < f.MaxHealth; i++ {
			glyph := constants.HUDHealthGlyph
			if i >= f.Player.Health {
				glyph = constants.HUDHealthEmpty
			}
			x = r.drawText(x, 0, string(glyph), heartStyle)
		}
	}

	x = r.drawText(x, 0, fmt.Sprintf(constants.HUDCountsFormat, len(f.Enemies), len(f.Player.Bullets)), defaultStyle)

	// FPS right aligned when it fits
	fps := fmt.Sprintf(constants.HUDFPSFormat, r.currentFps)
	if start := cols - runewidth.StringWidth(fps); start >= x {
		r.drawText(start, 0, fps, defaultStyle)
	}
}

// drawCentered writes s centered on row y
func (r *Renderer) drawCentered(y int, s string, st tcell.Style) {
	cols, rows := r.view.Size()
	if y < constants.HUDRows || y >= rows {
		return
	}
	x := (cols - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, s, st)
}

func (r *Renderer) overlayTop(lines int) int {
	_, rows := r.view.Size()
	arenaRows := rows - constants.HUDRows
	return constants.HUDRows + (arenaRows-lines)/2
}

func (r *Renderer) drawMenu() {
	title := r.style(RgbOverlay, RgbBackground).Bold(r.color)
	dim := r.style(RgbOverlayDim, RgbBackground)

	y := r.overlayTop(4)
	r.drawCentered(y, constants.MenuTitle, title)
	r.drawCentered(y+2, constants.MenuPrompt, dim)
	r.drawCentered(y+3, constants.MenuControls, dim)
}

func (r *Renderer) drawGameOver(score int, restartable bool) {
	title := r.style(RgbStateGameOverBg, RgbBackground).Bold(r.color)
	dim := r.style(RgbOverlayDim, RgbBackground)

	hint := constants.GameOverTerminalHint
	if restartable {
		hint = constants.GameOverRestartHint
	}

	y := r.overlayTop(4)
	r.drawCentered(y, constants.GameOverTitle, title)
	r.drawCentered(y+1, fmt.Sprintf(constants.GameOverScoreFmt, score), r.style(RgbOverlay, RgbBackground))
	r.drawCentered(y+3, hint, dim)
}
