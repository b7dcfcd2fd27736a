package adapter

import (
	"log/slog"
	"sort"
	"sync"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

// StopRegistry tracks which checker roots have a background server that
// should be stopped when the process exits. Each distinct root is stopped
// exactly once, regardless of how many calls registered it or from how many
// goroutines.
type StopRegistry struct {
	runner CheckerRunnerAdapter

	mu    sync.Mutex
	roots map[m.Path]bool
	fired bool
}

// NewStopRegistry constructs a StopRegistry backed by the provided runner.
func NewStopRegistry(runner CheckerRunnerAdapter) *StopRegistry {
	return &StopRegistry{
		runner: runner,
		roots:  make(map[m.Path]bool),
	}
}

// Register schedules a stop for root at process exit. Idempotent per root.
func (r *StopRegistry) Register(root m.Path) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roots[root] {
		return
	}

	r.roots[root] = true
	slog.Debug("registered checker stop", "root", root)
}

// Roots returns the registered roots in sorted order.
func (r *StopRegistry) Roots() []m.Path {
	r.mu.Lock()
	defer r.mu.Unlock()

	roots := make([]m.Path, 0, len(r.roots))
	for root := range r.roots {
		roots = append(roots, root)
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	return roots
}

// StopAll stops the checker server for every registered root. It runs at
// most once per registry; later calls are no-ops.
func (r *StopRegistry) StopAll() {
	r.mu.Lock()
	if r.fired {
		r.mu.Unlock()
		return
	}

	r.fired = true

	roots := make([]m.Path, 0, len(r.roots))
	for root := range r.roots {
		roots = append(roots, root)
	}
	r.mu.Unlock()

	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	for _, root := range roots {
		if err := r.runner.Stop(root); err != nil {
			slog.Warn("failed to stop checker server", "root", root, "error", err)
		}
	}
}
