package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/square-shooter/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear pitch slide
type oscillator struct {
	freq     float64
	slide    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSlideOscillator(freq, 0, duration, wave, rate)
}

// NewSlideOscillator creates an oscillator whose pitch moves by slide Hz per second
func NewSlideOscillator(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// Sound effect generators

// CreateShotSound generates a short downward square blip
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSlideOscillator(1200.0, -8000.0, constants.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundShot)*0.5)
}

// CreateHitSound generates a brief sine tick at A5
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, 880)
	if err != nil {
		sine = NewOscillator(880, constants.HitSoundDuration, WaveSine, rate)
	}
	tone := beep.Take(rate.N(constants.HitSoundDuration), sine)
	shaped := NewEnvelope(tone, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundHit))
}

// CreateKillSound generates a two-note chime, B5 then E6
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(987.77, constants.KillSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.KillSoundNote1Duration, constants.KillSoundAttack, constants.KillSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.KillSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.KillSoundNote2Duration, constants.KillSoundAttack, constants.KillSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundKill)*0.5)
}

// CreateSpawnSound generates a soft noise swell
func CreateSpawnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.SpawnSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.SpawnSoundDuration, constants.SpawnSoundAttack, constants.SpawnSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundSpawn)*0.3)
}

// CreateDamageSound generates a harsh low saw buzz
func CreateDamageSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, constants.DamageSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.DamageSoundDuration, constants.DamageSoundAttack, constants.DamageSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundDamage))
}

// CreateGameOverSound generates a long falling tone with a rumble underneath
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fall := NewSlideOscillator(440.0, -300.0, constants.GameOverSoundDuration, WaveSaw, rate)
	fallShaped := NewEnvelope(fall, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	rumble := NewOscillator(60.0, constants.GameOverSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fallShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, effectVolume(cfg, SoundGameOver))
}

// CreateStartSound generates a rising sine sweep
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSlideOscillator(330.0, 1200.0, constants.StartSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.StartSoundDuration, constants.StartSoundAttack, constants.StartSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundStart))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundSpawn:
		return CreateSpawnSound(cfg)
	case SoundDamage:
		return CreateDamageSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundStart:
		return CreateStartSound(cfg)
	default:
		return nil
	}
}
