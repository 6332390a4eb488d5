package assessment

import (
	"fmt"
	"sync/atomic"
	"time"
)

// UrgentThreshold is the remaining time at or below which a countdown is
// displayed as urgent.
const UrgentThreshold = 10 * time.Second

var countdownGen atomic.Uint64

// Countdown is a per-question timer advanced by one-second ticks. Reaching
// zero only stops it; nothing is auto-submitted.
type Countdown struct {
	gen       uint64
	limit     time.Duration
	remaining time.Duration
	running   bool
}

// NewCountdown returns a running countdown from limit. Every countdown gets
// a distinct generation so ticks scheduled for a replaced timer can be
// recognised and dropped.
func NewCountdown(limit time.Duration) *Countdown {
	return &Countdown{
		gen:       countdownGen.Add(1),
		limit:     limit,
		remaining: limit,
		running:   limit > 0,
	}
}

// Gen identifies this countdown instance.
func (c *Countdown) Gen() uint64 {
	return c.gen
}

// Tick removes one second. It reports whether another tick should be
// scheduled.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}
	c.remaining -= time.Second
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
	}
	return c.running
}

// Stop halts the countdown without resetting it.
func (c *Countdown) Stop() {
	c.running = false
}

func (c *Countdown) Limit() time.Duration     { return c.limit }
func (c *Countdown) Remaining() time.Duration { return c.remaining }
func (c *Countdown) Running() bool            { return c.running }
func (c *Countdown) Expired() bool            { return c.remaining == 0 }

// Urgent reports whether the remaining time is at or under UrgentThreshold.
func (c *Countdown) Urgent() bool {
	return c.remaining <= UrgentThreshold
}

// String renders the remaining time as m:ss.
func (c *Countdown) String() string {
	secs := int(c.remaining / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
