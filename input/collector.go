package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/square-shooter/sim"
)

// Projector maps a terminal cell to the world point at its center
type Projector interface {
	CellToWorld(col, row int) sim.Vec
}

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

var opposite = [dirCount]direction{dirDown, dirUp, dirRight, dirLeft}

// source records which device last wrote a shared field
type source int

const (
	sourceNone source = iota
	sourceKeys
	sourcePointer
)

// Collector accumulates terminal events into the per-tick input snapshot.
// Terminals report no key release, so a key counts as held for the hold window
// after its last press or repeat.
// Not safe for concurrent use; the frame goroutine owns it.
type Collector struct {
	proj     Projector
	bindings Bindings
	hold     time.Duration

	pressed     [dirCount]time.Time
	firePressed time.Time

	pointer     sim.Vec
	hasPointer  bool
	pointerDown bool

	// Keyboard and pointer share shooting and aim; last writer wins
	shootSource source
	aimSource   source
	keyAim      float64
	lastAim     float64
}

// NewCollector creates a collector; nil bindings select the defaults
func NewCollector(proj Projector, bindings Bindings, hold time.Duration) *Collector {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Collector{
		proj:     proj,
		bindings: bindings,
		hold:     hold,
	}
}

// HandleEvent applies one terminal event and returns the action it maps to
func (c *Collector) HandleEvent(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev, now)
	case *tcell.EventMouse:
		return c.handleMouse(ev)
	}
	return ActionNone
}

func (c *Collector) handleKey(ev *tcell.EventKey, now time.Time) Action {
	var a Action
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionStart
	case tcell.KeyUp:
		a = ActionUp
	case tcell.KeyDown:
		a = ActionDown
	case tcell.KeyLeft:
		a = ActionLeft
	case tcell.KeyRight:
		a = ActionRight
	case tcell.KeyRune:
		a = c.bindings[unicode.ToLower(ev.Rune())]
	default:
		return ActionNone
	}

	switch a {
	case ActionUp:
		c.press(dirUp, now)
	case ActionDown:
		c.press(dirDown, now)
	case ActionLeft:
		c.press(dirLeft, now)
	case ActionRight:
		c.press(dirRight, now)
	case ActionFire:
		c.firePressed = now
		c.shootSource = sourceKeys
	}
	return a
}

func (c *Collector) press(d direction, now time.Time) {
	c.pressed[d] = now
	c.pressed[opposite[d]] = time.Time{}

	var dx, dy float64
	if c.held(dirLeft, now) {
		dx--
	}
	if c.held(dirRight, now) {
		dx++
	}
	if c.held(dirUp, now) {
		dy--
	}
	if c.held(dirDown, now) {
		dy++
	}
	c.keyAim = sim.Vec{X: dx, Y: dy}.Angle()
	c.aimSource = sourceKeys
}

func (c *Collector) handleMouse(ev *tcell.EventMouse) Action {
	x, y := ev.Position()
	c.pointer = c.proj.CellToWorld(x, y)
	c.hasPointer = true
	c.aimSource = sourcePointer

	down := ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0
	if down == c.pointerDown {
		return ActionNone
	}
	c.pointerDown = down
	c.shootSource = sourcePointer
	if down {
		return ActionStart
	}
	return ActionNone
}

func (c *Collector) held(d direction, now time.Time) bool {
	t := c.pressed[d]
	return !t.IsZero() && now.Sub(t) < c.hold
}

// Snapshot reports the input for the tick at now.
// Pointer aim is recomputed against the current player position every call.
func (c *Collector) Snapshot(now time.Time, player sim.Vec) sim.Input {
	in := sim.Input{
		Up:    c.held(dirUp, now),
		Down:  c.held(dirDown, now),
		Left:  c.held(dirLeft, now),
		Right: c.held(dirRight, now),
	}

	switch c.aimSource {
	case sourcePointer:
		c.lastAim = c.pointer.Sub(player).Angle()
	case sourceKeys:
		c.lastAim = c.keyAim
	}
	in.Aim = c.lastAim

	switch c.shootSource {
	case sourcePointer:
		in.Shooting = c.pointerDown
	case sourceKeys:
		in.Shooting = !c.firePressed.IsZero() && now.Sub(c.firePressed) < c.hold
	}
	return in
}

// Pointer returns the last pointer position in world units
func (c *Collector) Pointer() (sim.Vec, bool) {
	return c.pointer, c.hasPointer
}
