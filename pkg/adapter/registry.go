package adapter

import (
	"sort"
	"sync"
)

var defaultRegistry = &Registry{}

// Registry manages registered adapters. Read-only after initialization;
// safe for concurrent lookups.
type Registry struct {
	mu       sync.RWMutex
	adapters []Adapter
}

// NewRegistry creates a new empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the global default registry. Adapters
// self-register into it via init() when their package is imported
// (typically through the adapters/all package).
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds an adapter to the default registry.
func Register(a Adapter) {
	defaultRegistry.Register(a)
}

// Register adds an adapter to the registry.
func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters = append(r.adapters, a)
	sort.Slice(r.adapters, func(i, j int) bool {
		return r.adapters[i].Metadata().Name < r.adapters[j].Metadata().Name
	})
}

// All returns a copy of all registered adapters, sorted by name.
func (r *Registry) All() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Adapter, len(r.adapters))
	copy(result, r.adapters)
	return result
}

// Find returns the adapter with the given framework name, or nil.
func (r *Registry) Find(name string) Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.adapters {
		if a.Metadata().Name == name {
			return a
		}
	}
	return nil
}

// Clear removes all registered adapters.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters = nil
}

// Candidate is one framework's detection score for a source file.
type Candidate struct {
	Framework string
	Paradigm  Paradigm
	Score     int
}

// DetectAll scores source against every registered adapter and returns
// the non-zero candidates sorted by score descending (name ascending on
// ties). Ambiguity is the caller's to resolve: a close second candidate
// is surfaced, not swallowed.
func (r *Registry) DetectAll(source string) []Candidate {
	var candidates []Candidate
	for _, a := range r.All() {
		meta := a.Metadata()
		score := a.Detect(source)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Framework: meta.Name,
			Paradigm:  meta.Paradigm,
			Score:     score,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Framework < candidates[j].Framework
	})

	return candidates
}

// BestMatch returns the highest scoring candidate, or a zero Candidate
// when nothing matched.
func (r *Registry) BestMatch(source string) Candidate {
	candidates := r.DetectAll(source)
	if len(candidates) == 0 {
		return Candidate{}
	}
	return candidates[0]
}
