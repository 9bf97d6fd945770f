package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/square-shooter/constants"
)

// AudioConfig controls output format and per-effect loudness
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundShot:     0.4,
			SoundHit:      0.6,
			SoundKill:     0.8,
			SoundSpawn:    0.3,
			SoundDamage:   0.9,
			SoundGameOver: 1.0,
			SoundStart:    0.7,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// ApplyEnv overrides cfg from SQUARE_SHOOTER_* environment variables.
// Malformed values are ignored.
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("SQUARE_SHOOTER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume as 0-100
	if volume := os.Getenv("SQUARE_SHOOTER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON object keyed by sound name
	if effectVols := os.Getenv("SQUARE_SHOOTER_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, err := ParseSoundType(name); err == nil {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("SQUARE_SHOOTER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
