package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stat is the accumulated cost of one named operation
type Stat struct {
	Name  string
	Calls int
	Total time.Duration
}

// Mean is the average duration per call
func (s Stat) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

var (
	mu    sync.Mutex
	stats = make(map[string]*Stat)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("droptable.Commit")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		st, ok := stats[name]
		if !ok {
			st = &Stat{Name: name}
			stats[name] = st
		}
		st.Calls++
		st.Total += d
		mu.Unlock()
	}
}

// Reset clears everything recorded so far
func Reset() {
	mu.Lock()
	clear(stats)
	mu.Unlock()
}

// Snapshot returns the stats sorted by total time, most expensive first
func Snapshot() []Stat {
	mu.Lock()
	out := make([]Stat, 0, len(stats))
	for _, st := range stats {
		out = append(out, *st)
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Name < out[j].Name
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// TopN formats the n most expensive operations.
// Example: "droptable.Commit:4.2ms/3, hud.Redraw:2.1ms/40"
func TopN(n int) string {
	ss := Snapshot()
	n = min(n, len(ss))

	parts := make([]string, 0, n)
	for _, st := range ss[:n] {
		parts = append(parts, fmt.Sprintf("%s:%s/%d", st.Name, formatMs(st.Total), st.Calls))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strings.TrimSuffix(fmt.Sprintf("%.1f", ms), ".0") + "ms"
}
