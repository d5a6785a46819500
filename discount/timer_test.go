package discount

import (
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timeout waiting for condition")
}

func TestTimerTicksDownAndStopsAtZero(t *testing.T) {
	tm := NewTimer(3)
	tm.interval = 5 * time.Millisecond
	tm.Start()

	waitFor(t, time.Second, func() bool { return tm.Remaining() == 0 })

	if got := tm.Display(); got != "00:00:00" {
		t.Errorf("expected frozen %q, got %q", "00:00:00", got)
	}

	// Expired loop has exited; a further wait must not change anything.
	time.Sleep(20 * time.Millisecond)
	if tm.Remaining() != 0 {
		t.Errorf("expected remaining 0, got %d", tm.Remaining())
	}
	tm.Stop()
}

func TestTimerStopIsDeterministic(t *testing.T) {
	tm := NewTimer(1000)
	tm.interval = 5 * time.Millisecond
	tm.Start()

	waitFor(t, time.Second, func() bool { return tm.Remaining() < 1000 })
	tm.Stop()

	frozen := tm.Remaining()
	time.Sleep(25 * time.Millisecond)
	if tm.Remaining() != frozen {
		t.Error("timer kept ticking after Stop")
	}

	// Stop twice is fine.
	tm.Stop()
}

func TestTimerReseedDiscardsPreviousTick(t *testing.T) {
	tm := NewTimer(1000)
	tm.interval = 5 * time.Millisecond
	tm.Start()
	waitFor(t, time.Second, func() bool { return tm.Remaining() < 1000 })

	tm.Reseed(90000)
	if tm.Remaining() > 90000 || tm.Remaining() < 89990 {
		t.Fatalf("expected counter restarted near 90000, got %d", tm.Remaining())
	}
	waitFor(t, time.Second, func() bool { return tm.Remaining() < 90000 })
	tm.Stop()
}

func TestTimerInactiveSeedNeverStarts(t *testing.T) {
	tm := NewTimer(0)
	tm.interval = time.Millisecond
	tm.Start()
	time.Sleep(10 * time.Millisecond)
	if tm.Display() != "" {
		t.Errorf("expected no display, got %q", tm.Display())
	}
	tm.Stop()
}
