package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/square-shooter/audio"
	"github.com/lixenwraith/square-shooter/constants"
	"github.com/lixenwraith/square-shooter/input"
	"github.com/lixenwraith/square-shooter/render"
	"github.com/lixenwraith/square-shooter/sim"
	"golang.org/x/sync/errgroup"
)

// ErrMissingDependency is returned by NewGame when a required option is nil
var ErrMissingDependency = errors.New("missing game dependency")

// eventSounds maps simulation events to their effects
var eventSounds = map[sim.EventKind]audio.SoundType{
	sim.EventBulletFired:   audio.SoundShot,
	sim.EventEnemyHit:      audio.SoundHit,
	sim.EventEnemyKilled:   audio.SoundKill,
	sim.EventEnemySpawned:  audio.SoundSpawn,
	sim.EventPlayerDamaged: audio.SoundDamage,
	sim.EventGameOver:      audio.SoundGameOver,
	sim.EventStarted:       audio.SoundStart,
}

// Options wires a Game; Sound, Clock, FrameInterval, Logger and CrashHandler are optional
type Options struct {
	Screen   tcell.Screen
	World    *sim.World
	Viewport *render.Viewport
	Renderer FrameRenderer
	Input    *input.Collector

	Sound         SoundPlayer
	Clock         Clock
	FrameInterval time.Duration
	Logger        *log.Logger

	// CrashHandler receives panics from the frame and event goroutines.
	// It must restore the terminal; the default re-panics.
	CrashHandler func(r any)
}

// Game drives the per-frame Input, Step, effects and Render sequence.
// World, Collector and Viewport are touched only from the frame goroutine.
type Game struct {
	id       uuid.UUID
	screen   tcell.Screen
	world    *sim.World
	view     *render.Viewport
	renderer FrameRenderer
	input    *input.Collector
	sound    SoundPlayer
	clock    Clock
	interval time.Duration
	logger   *log.Logger
	crash    func(r any)

	lastState sim.State
	frames    uint64
}

// NewGame validates options and applies defaults
func NewGame(opts Options) (*Game, error) {
	switch {
	case opts.Screen == nil:
		return nil, fmt.Errorf("%w: screen", ErrMissingDependency)
	case opts.World == nil:
		return nil, fmt.Errorf("%w: world", ErrMissingDependency)
	case opts.Viewport == nil:
		return nil, fmt.Errorf("%w: viewport", ErrMissingDependency)
	case opts.Renderer == nil:
		return nil, fmt.Errorf("%w: renderer", ErrMissingDependency)
	case opts.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingDependency)
	}

	g := &Game{
		id:        uuid.New(),
		screen:    opts.Screen,
		world:     opts.World,
		view:      opts.Viewport,
		renderer:  opts.Renderer,
		input:     opts.Input,
		sound:     opts.Sound,
		clock:     opts.Clock,
		interval:  opts.FrameInterval,
		crash:     opts.CrashHandler,
		lastState: opts.World.State(),
	}
	if g.clock == nil {
		g.clock = NewTimeProvider()
	}
	if g.interval <= 0 {
		g.interval = constants.FrameUpdateInterval
	}
	if g.crash == nil {
		g.crash = func(r any) { panic(r) }
	}

	prefix := fmt.Sprintf("[%s] ", g.id.String()[:8])
	if opts.Logger != nil {
		g.logger = log.New(opts.Logger.Writer(), prefix, opts.Logger.Flags())
	} else {
		g.logger = log.New(log.Writer(), prefix, log.Flags())
	}
	return g, nil
}

// ID returns the run identifier carried on every log line
func (g *Game) ID() uuid.UUID {
	return g.id
}

// HandleEvent applies one terminal event; false means quit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.handleResize(ev.Size())
		return true
	case *tcell.EventInterrupt:
		return true
	}

	switch g.input.HandleEvent(ev, g.clock.Now()) {
	case input.ActionQuit:
		g.logger.Printf("quit requested")
		return false
	case input.ActionStart:
		if g.world.State() == sim.StateMenu {
			g.dispatch(g.world.Start())
			g.logTransition()
		}
	case input.ActionRestart:
		if g.world.Restart() {
			g.logTransition()
		}
	case input.ActionToggleMute:
		if g.sound != nil {
			g.logger.Printf("audio muted=%v", g.sound.ToggleMute())
		}
	}
	return true
}

func (g *Game) handleResize(cols, rows int) {
	g.view.Resize(cols, rows)
	arena := g.view.Arena()
	g.world.Resize(arena)
	g.screen.Sync()
	g.logger.Printf("resize %dx%d cells, arena %.0fx%.0f", cols, rows, arena.Width, arena.Height)
}

// Tick advances one frame: snapshot input, step, dispatch effects, draw
func (g *Game) Tick() {
	now := g.clock.Now()
	g.frames++

	in := g.input.Snapshot(now, g.world.PlayerPos())
	g.dispatch(g.world.Step(now, in))
	g.logTransition()

	muted := true
	if g.sound != nil {
		muted = g.sound.Muted()
	}
	g.renderer.Draw(render.Frame{
		Snapshot: g.world.Snapshot(),
		Muted:    muted,
		Now:      now,
	})
}

// Frames returns the number of ticks run
func (g *Game) Frames() uint64 {
	return g.frames
}

func (g *Game) dispatch(events []sim.Event) {
	for _, ev := range events {
		if ev.Kind == sim.EventGameOver {
			g.logger.Printf("game over score=%d", g.world.Score())
		}
		if g.sound == nil {
			continue
		}
		if st, ok := eventSounds[ev.Kind]; ok {
			g.sound.Play(st)
		}
	}
}

func (g *Game) logTransition() {
	if s := g.world.State(); s != g.lastState {
		g.logger.Printf("state %s -> %s", g.lastState, s)
		g.lastState = s
	}
}

// Run pumps terminal events and ticks frames until quit or ctx is done
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, constants.EventQueueSize)
	grp, gctx := errgroup.WithContext(ctx)

	// Event pump: PollEvent blocks, so shutdown posts an interrupt to wake it
	grp.Go(func() error {
		defer g.recoverCrash()
		for {
			ev := g.screen.PollEvent()
			if ev == nil || gctx.Err() != nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	grp.Go(func() error {
		defer g.recoverCrash()
		defer func() {
			cancel()
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()

		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()

		g.logger.Printf("run started, frame interval %v", g.interval)
		g.Tick()
		for {
			select {
			case <-gctx.Done():
				g.logger.Printf("run stopped after %d frames", g.frames)
				return nil
			case ev := <-events:
				if !g.HandleEvent(ev) {
					g.logger.Printf("run stopped after %d frames", g.frames)
					return nil
				}
			case <-ticker.C:
				g.Tick()
			}
		}
	})

	return grp.Wait()
}

func (g *Game) recoverCrash() {
	if r := recover(); r != nil {
		g.crash(r)
	}
}
