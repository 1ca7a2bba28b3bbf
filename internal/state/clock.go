package state

import (
	"sync"
	"time"
)

// Clock hands out shape ids. Ids are millisecond timestamps bumped forward
// whenever two placements land in the same millisecond, so they are strictly
// increasing and never reused.
type Clock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Next returns a fresh id.
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// Observe moves the clock past an id it did not hand out, e.g. one read
// from an imported file.
func (c *Clock) Observe(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id > c.last {
		c.last = id
	}
}
