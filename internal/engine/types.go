package engine

import "time"

// Sample is one probe measurement. Failed probes are recorded too, with
// OK false, so loss shows up in the history alongside latency.
type Sample struct {
	Timestamp time.Time
	RTT       time.Duration
	OK        bool
}

// TargetStats holds the current state and metrics for a single probe
// target. Samples is a copy of the target's history ring, oldest first,
// taken when the snapshot was built; it is safe to read from any
// goroutine.
type TargetStats struct {
	Kind      string
	Address   string
	Label     string
	LastRTT   time.Duration
	Up        bool
	Summary   Summary
	Samples   []Sample
	ProbeErr  error
	LastProbe time.Time
}

// BoardSnapshot is a point-in-time view of all targets on a board.
type BoardSnapshot struct {
	Name      string
	Groups    []GroupSnapshot
	LastPoll  time.Time
	PollCount int
	CycleTime time.Duration // average duration of a full poll cycle
}

// GroupSnapshot is a point-in-time view of a target group.
type GroupSnapshot struct {
	Name    string
	Targets []TargetStats
}

// EngineState represents the lifecycle state of a polling engine.
type EngineState int

const (
	EngineStopped EngineState = iota
	EngineRunning
	EngineError
)

// EngineInfo provides summary information about a running engine.
type EngineInfo struct {
	Name       string
	State      EngineState
	LastPoll   time.Time
	PollCount  int
	ErrorCount int
}

// EngineEvent is emitted to subscribers after each poll cycle.
type EngineEvent struct {
	BoardName string
	Snapshot  *BoardSnapshot
}
