package core

import (
	"testing"
	"time"
)

func TestCoarseNow(t *testing.T) {
	StartCoarseClock()

	// Allow the ticker to fire at least once
	time.Sleep(2 * time.Millisecond)

	diff := time.Since(CoarseNow())
	if diff < 0 {
		diff = -diff
	}

	// The cached time should be within 50ms of real time
	if diff > 50*time.Millisecond {
		t.Errorf("CoarseNow() drifted %v from time.Now()", diff)
	}
}

func TestCoarseNowStartsClock(t *testing.T) {
	if got := CoarseNow(); got.IsZero() {
		t.Error("CoarseNow() returned zero time")
	}
	StartCoarseClock()
	StartCoarseClock()
}
