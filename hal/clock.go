package hal

import "time"

// MonoClock measures wall time between ticks. The first tick returns 0.
type MonoClock struct {
	now  func() time.Time
	last time.Time
}

func NewMonoClock() *MonoClock {
	return &MonoClock{now: time.Now}
}

func (c *MonoClock) Tick() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}
