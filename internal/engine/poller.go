package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/identity"
	"github.com/burntnail/pulse/internal/probe"
	"github.com/burntnail/pulse/internal/ring"
	"github.com/burntnail/pulse/internal/timing"
)

// cycleTimeWindow is how many recent poll-cycle durations are kept for the
// status display.
const cycleTimeWindow = 32

// targetState is the poller's live record for one target. The history
// ring is single-owner state mutated only under the poller's lock; it is
// never handed out, snapshots copy it.
type targetState struct {
	stats   TargetStats
	history *ring.Cache[Sample]
}

// Poller runs the probe loop for a single board, measuring every target at
// the board's configured interval and recording each round trip into the
// target's history ring.
type Poller struct {
	mu          sync.RWMutex
	board       *board.Board
	provider    identity.Provider
	probers     map[string]probe.Prober
	data        map[string]*targetState
	cycleTimes  *timing.Timings
	subscribers []chan EngineEvent
	stopCh      chan struct{}
	pollCount   int
	errorCount  int
	lastPoll    time.Time
}

// NewPoller creates a Poller for the given board and identity provider.
func NewPoller(b *board.Board, provider identity.Provider) (*Poller, error) {
	cycles, err := timing.NewTimings(cycleTimeWindow)
	if err != nil {
		return nil, err
	}
	return &Poller{
		board:      b,
		provider:   provider,
		probers:    make(map[string]probe.Prober),
		data:       make(map[string]*targetState),
		cycleTimes: cycles,
		stopCh:     make(chan struct{}),
	}, nil
}

// targetKey identifies a target within a board. Addresses may repeat
// across groups, so the group name is part of the key.
func targetKey(groupName string, t board.Target) string {
	return groupName + "\x00" + t.Address
}

// initTargetStats pre-populates empty stats for all configured targets
// without probing anything, so the UI can render immediately while the
// first poll runs asynchronously.
func (p *Poller) initTargetStats() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, group := range p.board.Groups {
		for _, t := range group.Targets {
			history, err := ring.New[Sample](p.board.MaxHistory)
			if err != nil {
				// MaxHistory is defaulted at load time; this only
				// fires on a hand-built board.
				p.errorCount++
				continue
			}
			p.data[targetKey(group.Name, t)] = &targetState{
				stats: TargetStats{
					Kind:    t.Kind,
					Address: t.Address,
					Label:   t.DisplayLabel(),
				},
				history: history,
			}
		}
	}
	p.notify()
}

// Run starts the probe loop. It blocks until Stop is called.
func (p *Poller) Run() {
	p.initTargetStats()

	ticker := time.NewTicker(p.board.Interval)
	defer ticker.Stop()

	go p.poll()

	for {
		select {
		case <-ticker.C:
			p.poll()
		case <-p.stopCh:
			return
		}
	}
}

// outcome carries one probe result back to the collector.
type outcome struct {
	key    string
	sample Sample
	err    error
}

// poll executes a single cycle: all targets probed concurrently, results
// folded into the stats under the lock.
func (p *Poller) poll() {
	defer timing.NewRecorder(p.cycleTimes).Stop()

	results := make(chan outcome)
	var wg sync.WaitGroup

	for _, group := range p.board.Groups {
		for _, t := range group.Targets {
			wg.Add(1)
			go func(groupName string, t board.Target) {
				defer wg.Done()
				results <- p.probeTarget(groupName, t)
			}(group.Name, t)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	p.collect(results)
}

// probeTarget runs one measured probe against a target.
func (p *Poller) probeTarget(groupName string, t board.Target) outcome {
	key := targetKey(groupName, t)

	prober, err := p.getOrCreateProber(key, t)
	if err != nil {
		return outcome{key: key, err: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.Timeout)
	defer cancel()

	start := time.Now()
	probeErr := prober.Probe(ctx)
	rtt := time.Since(start)

	return outcome{
		key:    key,
		sample: Sample{Timestamp: start, RTT: rtt, OK: probeErr == nil},
		err:    probeErr,
	}
}

// getOrCreateProber returns a cached Prober for the target, building one
// (and resolving its identity) on first use.
func (p *Poller) getOrCreateProber(key string, t board.Target) (probe.Prober, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pr, ok := p.probers[key]; ok {
		return pr, nil
	}

	var id *identity.Identity
	if t.Identity != "" {
		if p.provider == nil {
			return nil, fmt.Errorf("target %q needs identity %q but no identity store is open", t.Address, t.Identity)
		}
		var err error
		id, err = p.provider.Get(t.Identity)
		if err != nil {
			return nil, err
		}
	}

	pr, err := probe.New(t, id)
	if err != nil {
		return nil, err
	}
	p.probers[key] = pr
	return pr, nil
}

// collect folds probe outcomes into the stats and notifies subscribers.
// It drains the channel before taking the lock: probers still running may
// need the lock themselves to resolve identities.
func (p *Poller) collect(results <-chan outcome) {
	var outs []outcome
	for out := range results {
		outs = append(outs, out)
	}
	now := time.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, out := range outs {
		st, ok := p.data[out.key]
		if !ok {
			continue
		}
		if out.sample.Timestamp.IsZero() {
			// Prober construction failed; no measurement happened.
			st.stats.ProbeErr = out.err
			st.stats.Up = false
			p.errorCount++
			continue
		}

		st.history.Push(out.sample)
		st.stats.LastRTT = out.sample.RTT
		st.stats.Up = out.sample.OK
		st.stats.ProbeErr = out.err
		st.stats.LastProbe = out.sample.Timestamp
		st.stats.Summary = Summarize(st.history.All())
		if out.err != nil {
			p.errorCount++
		}
	}

	p.pollCount++
	p.lastPoll = now
	p.notify()
}

// Snapshot returns a point-in-time copy of all board data.
// Safe to call from any goroutine.
func (p *Poller) Snapshot() *BoardSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

// snapshotLocked builds a BoardSnapshot; the caller must hold at least a
// read lock on p.mu.
func (p *Poller) snapshotLocked() *BoardSnapshot {
	snap := &BoardSnapshot{
		Name:      p.board.Name,
		LastPoll:  p.lastPoll,
		PollCount: p.pollCount,
		CycleTime: p.cycleTimes.Average(),
	}

	for _, group := range p.board.Groups {
		gs := GroupSnapshot{Name: group.Name}
		for _, t := range group.Targets {
			if st, ok := p.data[targetKey(group.Name, t)]; ok {
				ts := st.stats
				ts.Samples = st.history.All()
				gs.Targets = append(gs.Targets, ts)
			}
		}
		snap.Groups = append(snap.Groups, gs)
	}
	return snap
}

// Subscribe returns a channel that receives an event after each poll cycle.
func (p *Poller) Subscribe() <-chan EngineEvent {
	ch := make(chan EngineEvent, 1)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, ch)
	return ch
}

// notify sends the current snapshot to all subscribers (non-blocking).
// Must be called while holding the write lock on p.mu.
func (p *Poller) notify() {
	snap := p.snapshotLocked()
	event := EngineEvent{BoardName: p.board.Name, Snapshot: snap}
	for _, ch := range p.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Info returns summary information about this engine.
func (p *Poller) Info() EngineInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return EngineInfo{
		Name:       p.board.Name,
		State:      EngineRunning,
		LastPoll:   p.lastPoll,
		PollCount:  p.pollCount,
		ErrorCount: p.errorCount,
	}
}

// Stop signals the probe loop to exit.
func (p *Poller) Stop() {
	close(p.stopCh)
}
