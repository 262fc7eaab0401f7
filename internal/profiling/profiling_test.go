package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	defer Reset()

	for range 3 {
		Track("a")()
	}
	Track("b")()

	ss := Snapshot()
	if len(ss) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(ss))
	}

	calls := map[string]int{}
	for _, st := range ss {
		calls[st.Name] = st.Calls
	}
	if calls["a"] != 3 || calls["b"] != 1 {
		t.Fatalf("unexpected call counts %v", calls)
	}
}

func TestSnapshotOrder(t *testing.T) {
	Reset()
	defer Reset()

	mu.Lock()
	stats["slow"] = &Stat{Name: "slow", Calls: 1, Total: 5 * time.Millisecond}
	stats["fast"] = &Stat{Name: "fast", Calls: 4, Total: time.Millisecond}
	mu.Unlock()

	ss := Snapshot()
	if ss[0].Name != "slow" || ss[1].Name != "fast" {
		t.Fatalf("wrong order: %v", ss)
	}
	if got := ss[1].Mean(); got != 250*time.Microsecond {
		t.Fatalf("mean = %v", got)
	}

	top := TopN(5)
	if top != "slow:5ms/1, fast:1ms/4" {
		t.Fatalf("TopN = %q", top)
	}
	if !strings.HasPrefix(TopN(1), "slow") || strings.Contains(TopN(1), "fast") {
		t.Fatalf("TopN(1) = %q", TopN(1))
	}
}

func TestFormatMs(t *testing.T) {
	if got := formatMs(4200 * time.Microsecond); got != "4.2ms" {
		t.Fatalf("formatMs = %q", got)
	}
	if got := formatMs(0); got != "0ms" {
		t.Fatalf("formatMs = %q", got)
	}
}
