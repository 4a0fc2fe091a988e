package store

import (
	"sync"

	"portview/internal/domain"
	"portview/internal/importer"
)

// Store is the shared portfolio state for one process session. It is an
// explicit dependency handed to consumers, not an ambient global, and it
// is the sole mutation surface: callers never touch entity collections
// directly. All writes serialize behind one lock so merge order stays
// deterministic under concurrent HTTP handlers.
type Store struct {
	mu       sync.RWMutex
	current  domain.Portfolio
	baseline domain.Portfolio
}

// New builds a store whose reset target is a snapshot of baseline taken
// now; later mutation of the caller's value cannot leak in.
func New(baseline domain.Portfolio) *Store {
	return &Store{
		current:  clonePortfolio(baseline),
		baseline: clonePortfolio(baseline),
	}
}

// Current returns a deep copy of the portfolio; entities are immutable
// once created, so readers get a stable view they cannot corrupt.
func (s *Store) Current() domain.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePortfolio(s.current)
}

// MergeImported appends each batch collection to the corresponding
// portfolio collection in insertion order. No dedup and no id-collision
// check: ids are freshly generated UUIDs at import time.
func (s *Store) MergeImported(batch importer.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Actions = append(s.current.Actions, batch.Actions...)
	s.current.Actors = append(s.current.Actors, batch.Actors...)
	s.current.Assets = append(s.current.Assets, batch.Assets...)
	s.current.Connections = append(s.current.Connections, batch.Connections...)
}

// ResetToBaseline discards everything merged since construction and
// restores the seed snapshot wholesale. This is a full overwrite, not a
// selective rollback.
func (s *Store) ResetToBaseline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = clonePortfolio(s.baseline)
}

// Replace overwrites the portfolio unconditionally.
func (s *Store) Replace(p domain.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = clonePortfolio(p)
}

func clonePortfolio(p domain.Portfolio) domain.Portfolio {
	out := p
	out.Actions = make([]domain.Action, len(p.Actions))
	for i, a := range p.Actions {
		out.Actions[i] = cloneAction(a)
	}
	out.Actors = make([]domain.Actor, len(p.Actors))
	copy(out.Actors, p.Actors)
	out.Assets = make([]domain.Asset, len(p.Assets))
	copy(out.Assets, p.Assets)
	out.Connections = make([]domain.Connection, len(p.Connections))
	copy(out.Connections, p.Connections)
	out.Impacts = make([]domain.Impact, len(p.Impacts))
	for i, im := range p.Impacts {
		out.Impacts[i] = cloneImpact(im)
	}
	out.Metadata.Tags = append([]string(nil), p.Metadata.Tags...)
	return out
}

func cloneAction(a domain.Action) domain.Action {
	out := a
	out.TargetOutcomes = append([]string(nil), a.TargetOutcomes...)
	out.Timeline.Milestones = make([]domain.Milestone, len(a.Timeline.Milestones))
	for i, m := range a.Timeline.Milestones {
		m.Dependencies = append([]string(nil), m.Dependencies...)
		out.Timeline.Milestones[i] = m
	}
	return out
}

func cloneImpact(im domain.Impact) domain.Impact {
	out := im
	if im.Metrics != nil {
		out.Metrics = make(map[string]float64, len(im.Metrics))
		for k, v := range im.Metrics {
			out.Metrics[k] = v
		}
	}
	return out
}
