package engine

import (
	"sort"
	"time"
)

// Summary aggregates the retained samples of one target.
type Summary struct {
	Min    time.Duration
	Avg    time.Duration
	Max    time.Duration
	P95    time.Duration
	Jitter time.Duration
	Loss   float64 // percent of failed probes
}

// Summarize computes latency statistics over samples, oldest first.
// Failed samples count toward Loss and are excluded from the latency
// figures.
func Summarize(samples []Sample) Summary {
	var s Summary
	if len(samples) == 0 {
		return s
	}

	rtts := make([]time.Duration, 0, len(samples))
	failed := 0
	for _, sm := range samples {
		if !sm.OK {
			failed++
			continue
		}
		rtts = append(rtts, sm.RTT)
	}
	s.Loss = float64(failed) / float64(len(samples)) * 100

	if len(rtts) == 0 {
		return s
	}

	var sum time.Duration
	s.Min = rtts[0]
	for _, r := range rtts {
		sum += r
		if r < s.Min {
			s.Min = r
		}
		if r > s.Max {
			s.Max = r
		}
	}
	s.Avg = sum / time.Duration(len(rtts))
	s.P95 = percentile(rtts, 95)
	s.Jitter = jitter(rtts)
	return s
}

// percentile returns the p-th percentile of rtts using nearest-rank on a
// sorted copy.
func percentile(rtts []time.Duration, p int) time.Duration {
	sorted := make([]time.Duration, len(rtts))
	copy(sorted, rtts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rank := (len(sorted)*p + 99) / 100 // ceil(n*p/100)
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// jitter is the mean absolute difference between consecutive round trips,
// over successful samples in arrival order.
func jitter(rtts []time.Duration) time.Duration {
	if len(rtts) < 2 {
		return 0
	}
	var sum time.Duration
	for i := 1; i < len(rtts); i++ {
		d := rtts[i] - rtts[i-1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / time.Duration(len(rtts)-1)
}
