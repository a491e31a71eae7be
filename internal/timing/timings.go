// Package timing provides scoped timers, an interval guard, and a shared
// duration log built on the ring cache.
package timing

import (
	"sync"
	"time"

	"github.com/burntnail/pulse/internal/ring"
)

// Timings is a mutex-guarded log of the most recent durations. It wraps an
// unsynchronized ring.Cache so that multiple goroutines can record into the
// same history; this is the only sharing point the ring cache gets.
type Timings struct {
	mu   sync.Mutex
	log  *ring.Cache[time.Duration]
	gate *Interval
}

// NewTimings creates a Timings retaining the last capacity durations.
func NewTimings(capacity int) (*Timings, error) {
	c, err := ring.New[time.Duration](capacity)
	if err != nil {
		return nil, err
	}
	return &Timings{log: c}, nil
}

// NewThrottledTimings creates a Timings that records at most one duration
// per every; calls to Record in between are dropped.
func NewThrottledTimings(capacity int, every time.Duration) (*Timings, error) {
	t, err := NewTimings(capacity)
	if err != nil {
		return nil, err
	}
	t.gate = NewInterval(every)
	return t, nil
}

// Record appends d to the log, evicting the oldest entry when full.
// On a throttled Timings the value is dropped if the interval has not
// elapsed since the last recorded value.
func (t *Timings) Record(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gate != nil && !t.gate.Ready() {
		return
	}
	t.log.Push(d)
}

// Snapshot returns the recorded durations, oldest first.
func (t *Timings) Snapshot() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.log.All()
}

// Last returns the most recently recorded duration.
func (t *Timings) Last() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.log.Last()
}

// Len returns the number of recorded durations.
func (t *Timings) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.log.Len()
}

// Average returns the mean of the recorded durations, or zero if empty.
func (t *Timings) Average() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.log.Len()
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for d := range t.log.Values() {
		sum += d
	}
	return sum / time.Duration(n)
}
