// Package config loads game settings from an optional TOML file, a .env file
// and SQUARE_SHOOTER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/square-shooter/audio"
	"github.com/lixenwraith/square-shooter/constants"
	"github.com/lixenwraith/square-shooter/input"
	"github.com/lixenwraith/square-shooter/sim"
)

// Sentinel errors
var (
	ErrUnknownKey     = errors.New("unknown config key")
	ErrInvalidValue   = errors.New("invalid config value")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Variant names accepted by [game].variant
const (
	VariantClassic = "classic"
	VariantArcade  = "arcade"
	VariantMobile  = "mobile"
	VariantFull    = "full"
)

// Config is the decoded settings tree
type Config struct {
	Game   GameConfig        `toml:"game"`
	Input  InputConfig       `toml:"input"`
	Render RenderConfig      `toml:"render"`
	Audio  AudioSection      `toml:"audio"`
	Keys   map[string]string `toml:"keys"`
	Debug  bool              `toml:"debug"`
}

// GameConfig selects the variant and tunes the simulation.
// Durations are in milliseconds, distances in world units.
type GameConfig struct {
	Variant      string `toml:"variant"`
	AllowRestart bool   `toml:"allow_restart"`
	// Seed drives enemy placement; 0 picks a time-based seed
	Seed uint64 `toml:"seed"`

	PlayerSpeed  float64 `toml:"player_speed"`
	PlayerSize   float64 `toml:"player_size"`
	PlayerHealth int     `toml:"player_health"`

	BulletSpeed      float64 `toml:"bullet_speed"`
	BulletSize       float64 `toml:"bullet_size"`
	BulletCooldownMS int     `toml:"bullet_cooldown_ms"`

	SpawnIntervalMS int     `toml:"spawn_interval_ms"`
	EnemySpeed      float64 `toml:"enemy_speed"`
	EnemySize       float64 `toml:"enemy_size"`
	EnemyHealth     int     `toml:"enemy_health"`

	MeleeRange float64 `toml:"melee_range"`
	KillScore  int     `toml:"kill_score"`
}

// InputConfig tunes keyboard hold emulation
type InputConfig struct {
	HoldMS int `toml:"hold_ms"`
}

// RenderConfig controls frame rate and the cell to world mapping
type RenderConfig struct {
	FPS        int     `toml:"fps"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	Color      bool    `toml:"color"`
}

// AudioSection mirrors audio.AudioConfig with volumes keyed by sound name
type AudioSection struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// Default returns the stock settings
func Default() *Config {
	sc := sim.DefaultConfig()
	ac := audio.DefaultAudioConfig()

	volumes := make(map[string]float64, len(ac.EffectVolumes))
	for st, v := range ac.EffectVolumes {
		volumes[st.String()] = v
	}

	return &Config{
		Game: GameConfig{
			Variant:          VariantFull,
			PlayerSpeed:      sc.PlayerSpeed,
			PlayerSize:       sc.PlayerSize,
			PlayerHealth:     sc.PlayerHealth,
			BulletSpeed:      sc.BulletSpeed,
			BulletSize:       sc.BulletSize,
			BulletCooldownMS: int(sc.BulletCooldown / time.Millisecond),
			SpawnIntervalMS:  int(sc.SpawnInterval / time.Millisecond),
			EnemySpeed:       sc.EnemySpeed,
			EnemySize:        sc.EnemySize,
			EnemyHealth:      sc.EnemyHealth,
			MeleeRange:       sc.MeleeRange,
			KillScore:        sc.KillScore,
		},
		Input: InputConfig{
			HoldMS: int(constants.KeyHoldWindow / time.Millisecond),
		},
		Render: RenderConfig{
			FPS:        int(time.Second / constants.FrameUpdateInterval),
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
			Color:      true,
		},
		Audio: AudioSection{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
			Volumes:      volumes,
		},
	}
}

// Load builds the settings from defaults, the TOML file at path (skipped when
// empty), the .env file at envFile (a missing file is fine) and the environment.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides game, input and render settings from the environment.
// Audio variables are applied by AudioConfig.
func (c *Config) applyEnv() error {
	if v := os.Getenv("SQUARE_SHOOTER_VARIANT"); v != "" {
		c.Game.Variant = strings.ToLower(v)
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"SQUARE_SHOOTER_FPS", &c.Render.FPS},
		{"SQUARE_SHOOTER_HOLD_MS", &c.Input.HoldMS},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, e.name, v)
		}
		*e.dst = n
	}

	if v := os.Getenv("SQUARE_SHOOTER_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SQUARE_SHOOTER_SEED=%q", ErrInvalidValue, v)
		}
		c.Game.Seed = n
	}

	if v := os.Getenv("SQUARE_SHOOTER_ALLOW_RESTART"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: SQUARE_SHOOTER_ALLOW_RESTART=%q", ErrInvalidValue, v)
		}
		c.Game.AllowRestart = b
	}
	return nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if _, err := ParseVariant(c.Game.Variant); err != nil {
		return err
	}
	if err := c.SimConfig().Validate(); err != nil {
		return err
	}
	if c.Render.FPS < constants.MinFrameRate || c.Render.FPS > constants.MaxFrameRate {
		return fmt.Errorf("%w: render.fps %d outside [%d, %d]",
			ErrInvalidValue, c.Render.FPS, constants.MinFrameRate, constants.MaxFrameRate)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return fmt.Errorf("%w: render cell size must be positive", ErrInvalidValue)
	}
	if c.Input.HoldMS <= 0 {
		return fmt.Errorf("%w: input.hold_ms must be positive", ErrInvalidValue)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be in [0, 1]", ErrInvalidValue)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalidValue)
	}
	for name, v := range c.Audio.Volumes {
		if _, err := audio.ParseSoundType(name); err != nil {
			return fmt.Errorf("audio.volumes: %w", err)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: audio.volumes.%s must be in [0, 1]", ErrInvalidValue, name)
		}
	}
	if _, err := input.ParseBindings(c.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// ParseVariant maps a variant name to its rule preset
func ParseVariant(name string) (sim.Rules, error) {
	switch name {
	case VariantClassic:
		return sim.RulesClassic, nil
	case VariantArcade:
		return sim.RulesArcade, nil
	case VariantMobile:
		return sim.RulesMobile, nil
	case VariantFull, "":
		return sim.RulesFull, nil
	}
	return sim.Rules{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Rules returns the variant preset with the restart option applied
func (c *Config) Rules() (sim.Rules, error) {
	r, err := ParseVariant(c.Game.Variant)
	if err != nil {
		return r, err
	}
	r.AllowRestart = c.Game.AllowRestart
	return r, nil
}

// SimConfig converts the [game] section to simulation tuning
func (c *Config) SimConfig() sim.Config {
	g := c.Game
	return sim.Config{
		PlayerSpeed:    g.PlayerSpeed,
		PlayerSize:     g.PlayerSize,
		PlayerHealth:   g.PlayerHealth,
		BulletSpeed:    g.BulletSpeed,
		BulletSize:     g.BulletSize,
		BulletCooldown: time.Duration(g.BulletCooldownMS) * time.Millisecond,
		SpawnInterval:  time.Duration(g.SpawnIntervalMS) * time.Millisecond,
		EnemySpeed:     g.EnemySpeed,
		EnemySize:      g.EnemySize,
		EnemyHealth:    g.EnemyHealth,
		MeleeRange:     g.MeleeRange,
		KillScore:      g.KillScore,
	}
}

// AudioConfig converts the [audio] section and applies audio environment overrides
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		if st, err := audio.ParseSoundType(name); err == nil {
			ac.EffectVolumes[st] = v
		}
	}
	audio.ApplyEnv(ac)
	return ac
}

// Bindings resolves the [keys] section over the default layout
func (c *Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Keys)
}

// FrameInterval is the ticker period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}

// HoldWindow is how long a key press counts as held
func (c *Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}
