package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockIsStrictlyIncreasing(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	c := &Clock{now: func() time.Time { return fixed }}

	assert.Equal(t, int64(1_700_000_000_000), c.Next())
	assert.Equal(t, int64(1_700_000_000_001), c.Next())
	assert.Equal(t, int64(1_700_000_000_002), c.Next())
}

func TestClockFollowsWallTime(t *testing.T) {
	now := time.UnixMilli(1000)
	c := &Clock{now: func() time.Time { return now }}
	c.Next()
	now = time.UnixMilli(5000)
	assert.Equal(t, int64(5000), c.Next())
}

func TestClockObserve(t *testing.T) {
	c := &Clock{now: func() time.Time { return time.UnixMilli(10) }}
	c.Observe(100)
	assert.Equal(t, int64(101), c.Next())
	c.Observe(50)
	assert.Equal(t, int64(102), c.Next())
}
