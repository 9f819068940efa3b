package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight wall-clock profiler for per-frame and one-shot timings.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the
// given name. Usage: defer profiling.Track("noise.Rasterize")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Reset clears the accumulated totals. The viewer calls this at the
// start of each frame.
func Reset() {
	mu.Lock()
	for k := range totals {
		delete(totals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest accumulated durations, largest first.
// Example: "render.Frame:4.2ms, noise.Rasterize:2.1ms"
func TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	snap := Snapshot()
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000))
	}
	return strings.Join(parts, ", ")
}
