/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */
package scheduler

import (
	"sync"
	"time"
)

// Clock is the scheduler's only notion of time. Sleep is the single way the
// card blocks: intro marquee, mode switch pause and the snake score screen.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// ManualClock only moves when told to. Sleep advances it, so blocking
// pauses take no real time in tests and replays.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *ManualClock) Sleep(d time.Duration) {
	c.Advance(d)
}
