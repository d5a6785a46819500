package discount

import "fmt"

// SecondsPerDay is the days/clock display threshold.
const SecondsPerDay = 86400

// Mode is the countdown display mode.
type Mode int

const (
	// ModeInactive means there is no discount window to show.
	ModeInactive Mode = iota
	// ModeDays renders a whole-day figure while more than a day remains.
	ModeDays
	// ModeClock renders HH:MM:SS. Once entered it is never left.
	ModeClock
)

// Countdown tracks the remaining seconds of a discount window. The numeric
// counter is the single source of truth; the display string is derived from
// it on demand and never parsed back. A seed of more than one day starts in
// days mode; exactly one day or less starts in clock mode. Ticking past the
// one-day mark latches into clock mode, and reaching zero freezes the
// display at 00:00:00.
type Countdown struct {
	remaining int64
	mode      Mode
}

// NewCountdown seeds a countdown. Seeds of zero or below yield an inactive
// countdown with no display.
func NewCountdown(seed int64) *Countdown {
	c := &Countdown{}
	c.Reset(seed)
	return c
}

// Reset reseeds the countdown, recomputing the initial mode.
func (c *Countdown) Reset(seed int64) {
	if seed <= 0 {
		c.remaining = 0
		c.mode = ModeInactive
		return
	}
	c.remaining = seed
	if seed > SecondsPerDay {
		c.mode = ModeDays
	} else {
		c.mode = ModeClock
	}
}

// Tick decrements the counter by one second. At zero it is a no-op, so the
// countdown never goes negative. Crossing the one-day mark switches days
// mode to clock mode for good.
func (c *Countdown) Tick() {
	if c.mode == ModeInactive || c.remaining <= 0 {
		return
	}
	c.remaining--
	if c.mode == ModeDays && c.remaining <= SecondsPerDay {
		c.mode = ModeClock
	}
}

// Remaining reports the current counter value.
func (c *Countdown) Remaining() int64 { return c.remaining }

// Mode reports the current display mode.
func (c *Countdown) Mode() Mode { return c.mode }

// Active reports whether there is anything to display.
func (c *Countdown) Active() bool { return c.mode != ModeInactive }

// Expired reports whether the countdown has run out.
func (c *Countdown) Expired() bool {
	return c.mode == ModeClock && c.remaining == 0
}

// Display renders the countdown. Days mode rounds up, so 90000 seconds
// shows "2 days left". Clock mode is zero-padded HH:MM:SS; a seed of
// exactly one day shows "24:00:00". Inactive countdowns render empty.
func (c *Countdown) Display() string {
	switch c.mode {
	case ModeInactive:
		return ""
	case ModeDays:
		days := (c.remaining + SecondsPerDay - 1) / SecondsPerDay
		return fmt.Sprintf("%d days left", days)
	default:
		h := c.remaining / 3600
		m := (c.remaining % 3600) / 60
		s := c.remaining % 60
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
}
