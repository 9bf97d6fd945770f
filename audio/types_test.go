package audio

import (
	"errors"
	"testing"
)

// TestSoundTypeNames verifies every sound type has a config name
func TestSoundTypeNames(t *testing.T) {
	want := map[SoundType]string{
		SoundShot:     "shot",
		SoundHit:      "hit",
		SoundKill:     "kill",
		SoundSpawn:    "spawn",
		SoundDamage:   "damage",
		SoundGameOver: "gameover",
		SoundStart:    "start",
	}
	for st, name := range want {
		if st.String() != name {
			t.Errorf("Expected %q, got %q", name, st.String())
		}
	}
	if got := SoundType(99).String(); got != "sound(99)" {
		t.Errorf("Expected fallback name, got %q", got)
	}
}

// TestParseSoundType verifies names round-trip and unknown names fail
func TestParseSoundType(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, err := ParseSoundType(st.String())
		if err != nil || got != st {
			t.Errorf("Expected %v, got %v (%v)", st, got, err)
		}
	}
	if _, err := ParseSoundType("explosion"); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
}
