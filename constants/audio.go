package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Shot Sound Timing
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 50 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 30 * time.Millisecond
)

// Kill Sound Timing
const (
	KillSoundNote1Duration = 70 * time.Millisecond
	KillSoundNote2Duration = 180 * time.Millisecond
	KillSoundAttack        = 5 * time.Millisecond
	KillSoundNote1Release  = 30 * time.Millisecond
	KillSoundNote2Release  = 140 * time.Millisecond
)

// Spawn Sound Timing
const (
	SpawnSoundDuration = 200 * time.Millisecond
	SpawnSoundAttack   = 100 * time.Millisecond
	SpawnSoundRelease  = 100 * time.Millisecond
)

// Damage Sound Timing
const (
	DamageSoundDuration = 150 * time.Millisecond
	DamageSoundAttack   = 5 * time.Millisecond
	DamageSoundRelease  = 60 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 700 * time.Millisecond
)

// Start Sound Timing
const (
	StartSoundDuration = 400 * time.Millisecond
	StartSoundAttack   = 5 * time.Millisecond
	StartSoundRelease  = 300 * time.Millisecond
)
