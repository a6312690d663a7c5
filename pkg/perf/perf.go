// Package perf provides lightweight call tracking for hot paths.
// Functions record themselves with `defer perf.Track(nil, "pkg.Func")()`;
// the collected counts and timings can be inspected with Snapshot.
package perf

import (
	"sort"
	"sync"
	"time"

	"github.com/cargoship-ci/cargoship/pkg/schema"
)

// Stat holds accumulated metrics for a single tracked function.
type Stat struct {
	Name  string
	Count int64
	Total time.Duration
	Max   time.Duration
}

var (
	mu      sync.Mutex
	stats   = make(map[string]*Stat)
	enabled = true
)

// SetEnabled toggles tracking globally. Disabled tracking makes Track a no-op.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// Track records a call to the named function. The typical usage is
// `defer perf.Track(nil, "resolver.Resolve")()`. The configuration argument
// is accepted for call sites that want per-invocation overrides; nil uses
// the global enable flag.
func Track(cfg *schema.Configuration, name string) func() {
	mu.Lock()
	on := enabled
	mu.Unlock()

	if cfg != nil && !cfg.Perf.Enabled {
		on = false
	}
	if !on {
		return func() {}
	}

	start := time.Now()
	return func() {
		elapsed := time.Since(start)

		mu.Lock()
		defer mu.Unlock()

		s, ok := stats[name]
		if !ok {
			s = &Stat{Name: name}
			stats[name] = s
		}
		s.Count++
		s.Total += elapsed
		if elapsed > s.Max {
			s.Max = elapsed
		}
	}
}

// Snapshot returns a copy of the accumulated stats sorted by total time,
// largest first.
func Snapshot() []Stat {
	mu.Lock()
	defer mu.Unlock()

	out := make([]Stat, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Reset clears all accumulated stats.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	stats = make(map[string]*Stat)
}
