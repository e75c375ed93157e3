// Package screens holds the per-user view models behind each console screen.
// A view keeps the last filter and snapshot for its screen; refreshes are
// sequenced so that an older load can never overwrite a newer one.
package screens

import (
	"context"
	"sync"
)

// Sequencer hands out refresh tickets. Beginning a new refresh cancels the
// context of the previous one and makes its ticket stale.
type Sequencer struct {
	mu      sync.Mutex
	current uint64
	cancel  context.CancelFunc
}

// Begin starts a refresh derived from parent and returns its context and ticket.
func (s *Sequencer) Begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.current++
	s.cancel = cancel
	return ctx, s.current
}

// IsCurrent reports whether ticket belongs to the latest refresh.
func (s *Sequencer) IsCurrent(ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ticket == s.current
}

// End releases the context of ticket once its refresh has finished.
func (s *Sequencer) End(ticket uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket == s.current && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Invalidate cancels any refresh in flight and makes every issued ticket stale.
func (s *Sequencer) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.current++
}
