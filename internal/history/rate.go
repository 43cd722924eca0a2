package history

import "time"

// RateCounter derives bytes-per-second rates from cumulative counter
// readings. It is the single place counter wraps, interface replacements,
// and host restarts are absorbed; nothing negative or implausibly large
// ever leaves it.
type RateCounter struct {
	prev     uint64
	prevTime time.Time
	primed   bool
}

// Observe folds one cumulative reading into the counter and returns the
// rate since the previous reading. The first reading only establishes the
// baseline and reports zero. A reading lower than the previous one means
// the counter wrapped or was reset; the baseline moves to the new value and
// the tick reports zero rather than a negative or spurious rate. A
// non-positive elapsed interval also reports zero.
func (c *RateCounter) Observe(cum uint64, now time.Time) float64 {
	if !c.primed {
		c.prev, c.prevTime, c.primed = cum, now, true
		return 0
	}
	prev, prevTime := c.prev, c.prevTime
	c.prev, c.prevTime = cum, now
	if cum < prev {
		return 0
	}
	dt := now.Sub(prevTime).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(cum-prev) / dt
}

// Reset clears the baseline so the next reading primes afresh.
func (c *RateCounter) Reset() {
	c.prev, c.prevTime, c.primed = 0, time.Time{}, false
}
