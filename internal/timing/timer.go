package timing

import (
	"log"
	"time"
)

// Stopwatch times a scope and logs the elapsed duration when stopped.
// Typical use: defer timing.NewStopwatch("poll cycle").Stop().
type Stopwatch struct {
	label string
	start time.Time
	done  bool
}

// NewStopwatch starts a Stopwatch with the given label.
func NewStopwatch(label string) *Stopwatch {
	return &Stopwatch{label: label, start: time.Now()}
}

// Elapsed returns the time since the Stopwatch was started.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Stop logs the elapsed time once. Further calls are no-ops.
func (s *Stopwatch) Stop() {
	if s.done {
		return
	}
	s.done = true
	log.Printf("%s took %s", s.label, time.Since(s.start))
}

// Recorder times a scope and records the elapsed duration into a Timings
// when stopped: defer timing.NewRecorder(t).Stop().
type Recorder struct {
	sink    *Timings
	start   time.Time
	elapsed time.Duration
	done    bool
}

// NewRecorder starts a Recorder that will record into sink.
func NewRecorder(sink *Timings) *Recorder {
	return &Recorder{sink: sink, start: time.Now()}
}

// Stop records the elapsed time once and returns it. Further calls return
// the originally recorded duration without recording again.
func (r *Recorder) Stop() time.Duration {
	if r.done {
		return r.elapsed
	}
	r.done = true
	r.elapsed = time.Since(r.start)
	r.sink.Record(r.elapsed)
	return r.elapsed
}
