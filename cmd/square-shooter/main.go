package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/square-shooter/audio"
	"github.com/lixenwraith/square-shooter/config"
	"github.com/lixenwraith/square-shooter/engine"
	"github.com/lixenwraith/square-shooter/input"
	"github.com/lixenwraith/square-shooter/render"
	"github.com/lixenwraith/square-shooter/sim"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "square-shooter: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		return err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing so the trace stays readable
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mSQUARE-SHOOTER CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	view := render.NewViewport(cols, rows, cfg.Render.CellWidth, cfg.Render.CellHeight)
	clock := engine.NewTimeProvider()

	world, err := sim.NewWorld(cfg.SimConfig(), rules, view.Arena(), sim.NewRand(seed), clock.Now())
	if err != nil {
		return fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
	}

	// Audio degrades to silent mode
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	if opts.mute && !sound.Muted() {
		sound.ToggleMute()
	}

	game, err := engine.NewGame(engine.Options{
		Screen:        screen,
		World:         world,
		Viewport:      view,
		Renderer:      render.NewRenderer(screen, view, cfg.Render.Color),
		Input:         input.NewCollector(view, bindings, cfg.HoldWindow()),
		Sound:         sound,
		Clock:         clock,
		FrameInterval: cfg.FrameInterval(),
		CrashHandler:  crash,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("run %s variant=%s seed=%d arena=%.0fx%.0f", game.ID(), cfg.Game.Variant, seed, view.Arena().Width, view.Arena().Height)
	return game.Run(ctx)
}
