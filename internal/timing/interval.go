package timing

import "time"

// Interval gates an action to happen at most once per period.
//
// In the default mode Ready marks the interval as used when it returns
// true. A manual Interval only checks; the caller decides when to Mark,
// which lets the gap be measured from the end of the action rather than
// its start.
type Interval struct {
	every  time.Duration
	last   time.Time
	manual bool
}

// NewInterval creates an Interval that self-marks on Ready.
// The first call to Ready reports true.
func NewInterval(every time.Duration) *Interval {
	return &Interval{every: every}
}

// NewManualInterval creates an Interval that only advances when Mark is
// called.
func NewManualInterval(every time.Duration) *Interval {
	return &Interval{every: every, manual: true}
}

// Ready reports whether the period has elapsed since the last mark.
func (i *Interval) Ready() bool {
	ok := i.last.IsZero() || time.Since(i.last) >= i.every
	if ok && !i.manual {
		i.last = time.Now()
	}
	return ok
}

// Mark records now as the start of a new period.
func (i *Interval) Mark() {
	i.last = time.Now()
}
