package main

import (
	"flag"
	"io"

	"github.com/lixenwraith/square-shooter/config"
)

// options holds command-line flags; only flags the user set override the config
type options struct {
	configPath string
	envFile    string
	variant    string
	seed       uint64
	debug      bool
	mute       bool
	restart    bool

	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("square-shooter", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.configPath, "config", "", "Path to TOML config file")
	fs.StringVar(&o.envFile, "env", ".env", "Path to .env file, ignored when missing")
	fs.StringVar(&o.variant, "variant", "", "Game variant: classic, arcade, mobile, full")
	fs.Uint64Var(&o.seed, "seed", 0, "Enemy placement seed, 0 for time based")
	fs.BoolVar(&o.debug, "debug", false, "Write debug log to logs/")
	fs.BoolVar(&o.mute, "mute", false, "Start with audio muted")
	fs.BoolVar(&o.restart, "restart", false, "Allow returning to the menu after game over")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides cfg with the flags that were given
func (o *options) apply(cfg *config.Config) {
	if o.set["variant"] {
		cfg.Game.Variant = o.variant
	}
	if o.set["seed"] {
		cfg.Game.Seed = o.seed
	}
	if o.set["debug"] {
		cfg.Debug = o.debug
	}
	if o.set["restart"] {
		cfg.Game.AllowRestart = o.restart
	}
}
