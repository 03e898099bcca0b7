package clock

import (
	"time"

	"github.com/julien-sobczak/nt-bulk/pkg/resync"
)

var (
	// Lazy-load
	clockOnce      resync.Once
	clockSingleton Clock
)

type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c DefaultClock) Now() time.Time {
	return time.Now()
}

// TestClock is a clock that only moves when asked to.
type TestClock struct {
	now time.Time
}

func NewTestClockAt(date time.Time) *TestClock {
	return &TestClock{
		now: date,
	}
}

func (c *TestClock) FastForward(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func (c *TestClock) Now() time.Time {
	return c.now
}

func CurrentClock() Clock {
	if clockSingleton != nil {
		return clockSingleton
	}
	clockOnce.Do(func() {
		clockSingleton = DefaultClock{}
	})
	return clockSingleton
}

// Now is the same as time.Now() but can be frozen from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

// FreezeAt stops the time at the given date until Unfreeze is called.
func FreezeAt(now time.Time) *TestClock {
	testClock := NewTestClockAt(now)
	clockSingleton = testClock
	return testClock
}

func Unfreeze() {
	clockSingleton = nil
	clockOnce.Reset()
}
