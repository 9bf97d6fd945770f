package engine

import (
	"testing"
	"time"
)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(16 * time.Millisecond)
	mock.Advance(16 * time.Millisecond)
	if now := mock.Now(); !now.Equal(startTime.Add(32 * time.Millisecond)) {
		t.Errorf("Expected time after two frames, got %v", now)
	}
}
