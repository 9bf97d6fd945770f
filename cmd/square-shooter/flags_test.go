package main

import (
	"io"
	"testing"

	"github.com/lixenwraith/square-shooter/config"
)

func TestParseFlags_OnlySetFlagsOverride(t *testing.T) {
	opts, err := parseFlags([]string{"--variant", "classic", "--seed", "7"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}

	cfg := config.Default()
	cfg.Game.AllowRestart = true
	cfg.Debug = true
	opts.apply(cfg)

	if cfg.Game.Variant != "classic" || cfg.Game.Seed != 7 {
		t.Errorf("Expected variant classic seed 7, got %q %d", cfg.Game.Variant, cfg.Game.Seed)
	}
	if !cfg.Game.AllowRestart || !cfg.Debug {
		t.Error("Expected unset flags to leave config values alone")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if opts.envFile != ".env" || opts.configPath != "" || opts.mute {
		t.Errorf("Unexpected defaults: %+v", opts)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	if _, err := parseFlags([]string{"--seed", "-1"}, io.Discard); err == nil {
		t.Error("Expected error for negative seed")
	}
	if _, err := parseFlags([]string{"--bogus"}, io.Discard); err == nil {
		t.Error("Expected error for unknown flag")
	}
}
