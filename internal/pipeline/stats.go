package pipeline

import (
	"fmt"
	"time"
)

// Stats accumulates the counters for one run. Reset on every Run call,
// never persisted.
type Stats struct {
	Completed int
	Errored   int
	Skipped   int
	Elapsed   time.Duration

	totalLatency time.Duration
}

// Throughput is completed+errored items per second of wall-clock time.
func (s Stats) Throughput() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Completed+s.Errored) / s.Elapsed.Seconds()
}

// MeanLatency is the average per-item stage duration.
func (s Stats) MeanLatency() time.Duration {
	n := s.Completed + s.Errored
	if n == 0 {
		return 0
	}
	return s.totalLatency / time.Duration(n)
}

func progress(done, total int) string {
	return fmt.Sprintf("%d/%d", done, total)
}

// formatETA humanizes a seconds estimate. Zero means unknown.
func formatETA(seconds float64) string {
	switch {
	case seconds <= 0:
		return "unknown"
	case seconds > 3600:
		return fmt.Sprintf("%.1fh", seconds/3600)
	case seconds > 60:
		return fmt.Sprintf("%.0fm", seconds/60)
	default:
		return fmt.Sprintf("%.0fs", seconds)
	}
}
