package discount

import (
	"sync"
	"time"
)

// Timer drives a Countdown with a once-per-second tick. One timer belongs
// to one displayed product card; it is stopped when the card goes away and
// reseeded when a fresh fetch changes the product's remaining seconds.
// The tick loop exits on its own once the countdown expires.
type Timer struct {
	mu       sync.Mutex
	c        *Countdown
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewTimer seeds a timer without starting it.
func NewTimer(seed int64) *Timer {
	return &Timer{
		c:        NewCountdown(seed),
		interval: time.Second,
	}
}

// Start launches the tick loop. Starting an already running or inactive
// timer is a no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startLocked()
}

func (t *Timer) startLocked() {
	if t.stop != nil || !t.c.Active() || t.c.Expired() {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.stop, t.done)
}

func (t *Timer) run(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			t.c.Tick()
			expired := t.c.Expired()
			if expired && t.stop != nil {
				t.stop = nil
			}
			t.mu.Unlock()
			if expired {
				return
			}
		}
	}
}

// Stop cancels the tick loop and waits for it to exit. Idempotent.
func (t *Timer) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop = nil
	t.done = nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Reseed discards the running tick and restarts from the new seed.
func (t *Timer) Reseed(seed int64) {
	t.Stop()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.Reset(seed)
	t.startLocked()
}

// Display renders the current countdown state.
func (t *Timer) Display() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.c.Display()
}

// Remaining reports the current counter value.
func (t *Timer) Remaining() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.c.Remaining()
}
