package timing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/burntnail/pulse/internal/ring"
)

func TestTimingsInvalidCapacity(t *testing.T) {
	if _, err := NewTimings(0); !errors.Is(err, ring.ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestTimingsRecordEvicts(t *testing.T) {
	tm, err := NewTimings(3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 5; i++ {
		tm.Record(time.Duration(i) * time.Millisecond)
	}
	snap := tm.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Snapshot() len=%d, want 3", len(snap))
	}
	if snap[0] != 3*time.Millisecond || snap[2] != 5*time.Millisecond {
		t.Errorf("Snapshot()=%v, want [3ms 4ms 5ms]", snap)
	}
	last, ok := tm.Last()
	if !ok || last != 5*time.Millisecond {
		t.Errorf("Last()=%v,%v, want 5ms,true", last, ok)
	}
}

func TestTimingsAverage(t *testing.T) {
	tm, _ := NewTimings(10)
	if avg := tm.Average(); avg != 0 {
		t.Errorf("Average() on empty = %v, want 0", avg)
	}
	tm.Record(10 * time.Millisecond)
	tm.Record(20 * time.Millisecond)
	tm.Record(30 * time.Millisecond)
	if avg := tm.Average(); avg != 20*time.Millisecond {
		t.Errorf("Average()=%v, want 20ms", avg)
	}
}

func TestTimingsConcurrentRecord(t *testing.T) {
	tm, _ := NewTimings(64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tm.Record(time.Microsecond)
			}
		}()
	}
	wg.Wait()
	if tm.Len() != 64 {
		t.Errorf("Len()=%d after 800 concurrent records, want 64", tm.Len())
	}
}

func TestThrottledTimingsDrops(t *testing.T) {
	tm, err := NewThrottledTimings(10, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	tm.Record(time.Millisecond)
	tm.Record(2 * time.Millisecond)
	tm.Record(3 * time.Millisecond)
	if tm.Len() != 1 {
		t.Errorf("Len()=%d with hour throttle, want 1", tm.Len())
	}
	last, _ := tm.Last()
	if last != time.Millisecond {
		t.Errorf("Last()=%v, want 1ms", last)
	}
}

func TestRecorderRecordsOnce(t *testing.T) {
	tm, _ := NewTimings(4)
	r := NewRecorder(tm)
	first := r.Stop()
	second := r.Stop()
	if first != second {
		t.Errorf("second Stop() returned %v, want %v", second, first)
	}
	if tm.Len() != 1 {
		t.Errorf("Len()=%d after double Stop, want 1", tm.Len())
	}
}

func TestRecorderDefer(t *testing.T) {
	tm, _ := NewTimings(4)
	func() {
		defer NewRecorder(tm).Stop()
		time.Sleep(time.Millisecond)
	}()
	d, ok := tm.Last()
	if !ok {
		t.Fatal("no duration recorded")
	}
	if d < time.Millisecond {
		t.Errorf("recorded %v, want >= 1ms", d)
	}
}

func TestIntervalAutoMark(t *testing.T) {
	iv := NewInterval(time.Hour)
	if !iv.Ready() {
		t.Fatal("first Ready() should be true")
	}
	if iv.Ready() {
		t.Error("second Ready() within the period should be false")
	}
}

func TestIntervalElapses(t *testing.T) {
	iv := NewInterval(5 * time.Millisecond)
	if !iv.Ready() {
		t.Fatal("first Ready() should be true")
	}
	time.Sleep(10 * time.Millisecond)
	if !iv.Ready() {
		t.Error("Ready() after the period should be true")
	}
}

func TestManualInterval(t *testing.T) {
	iv := NewManualInterval(time.Hour)
	if !iv.Ready() {
		t.Fatal("first Ready() should be true")
	}
	if !iv.Ready() {
		t.Error("manual interval should stay ready until Mark")
	}
	iv.Mark()
	if iv.Ready() {
		t.Error("Ready() right after Mark should be false")
	}
}

func TestStopwatchElapsed(t *testing.T) {
	sw := NewStopwatch("test")
	time.Sleep(time.Millisecond)
	if sw.Elapsed() < time.Millisecond {
		t.Errorf("Elapsed()=%v, want >= 1ms", sw.Elapsed())
	}
	sw.Stop()
	sw.Stop() // no-op
}
