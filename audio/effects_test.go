package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count, failing past limit
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
				t.Fatalf("Sample %d out of range: %f", total-n+i, buf[i][0])
			}
		}
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("Stream exceeded %d samples", limit)
		}
	}
}

// TestOscillatorSine verifies sine wave generation stays in range and fills the buffer
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != samples[i][1] {
			t.Errorf("Expected mono sample %d, got %f/%f", i, samples[i][0], samples[i][1])
		}
	}
}

// TestOscillatorLength verifies an oscillator ends after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		got := drain(t, NewOscillator(440, duration, wave, rate), rate.N(time.Second))
		if got != rate.N(duration) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(duration), got)
		}
	}
}

// TestSlideOscillatorNeverNegative verifies a steep downward slide clamps at 0 Hz
func TestSlideOscillatorNeverNegative(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewSlideOscillator(100, -10000, 100*time.Millisecond, WaveSine, rate)

	got := drain(t, osc, rate.N(time.Second))
	if got != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), got)
	}
}

// TestEnvelopeShaping verifies attack starts silent and release ends near silent
func TestEnvelopeShaping(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] > 0.2 {
		t.Errorf("Expected faded last sample, got %f", samples[99][0])
	}
}

// TestGetSoundEffectAllTypes verifies every sound type yields a finite streamer
func TestGetSoundEffectAllTypes(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000

	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Errorf("Expected streamer for %v", st)
			continue
		}
		if n := drain(t, s, 8000*2); n == 0 {
			t.Errorf("Expected samples for %v", st)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

// TestZeroVolumeIsSilent verifies a muted effect volume produces silence
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	cfg.EffectVolumes[SoundDamage] = 0

	s := CreateDamageSound(cfg)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", buf[i][0], i)
		}
	}
}
