package screens

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/platform/metrics"
)

// Loader fetches a fresh snapshot for filter.
type Loader[F, S any] func(ctx context.Context, filter F) (S, error)

// View is the state of one screen for one user: the filter last asked for and
// the snapshot last loaded with it.
type View[F, S any] struct {
	name string
	seq  Sequencer

	mu       sync.RWMutex
	filter   F
	snapshot *S
	loadedAt time.Time
	now      func() time.Time
}

// NewView creates an empty view. name labels the view in metrics.
func NewView[F, S any](name string) *View[F, S] {
	return &View[F, S]{name: name, now: time.Now}
}

// Name returns the screen name.
func (v *View[F, S]) Name() string {
	return v.name
}

// Refresh reloads the view with its current filter.
func (v *View[F, S]) Refresh(ctx context.Context, load Loader[F, S]) (S, error) {
	return v.RefreshWith(ctx, v.Filter(), load)
}

// RefreshWith sets the filter and reloads. If a newer refresh starts before this
// one finishes, this one is cancelled and returns apperrors.ErrSuperseded
// without touching the stored snapshot.
func (v *View[F, S]) RefreshWith(ctx context.Context, filter F, load Loader[F, S]) (S, error) {
	var zero S

	v.mu.Lock()
	v.filter = filter
	runCtx, ticket := v.seq.Begin(ctx)
	v.mu.Unlock()
	defer v.seq.End(ticket)

	snap, err := load(runCtx, filter)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seq.IsCurrent(ticket) {
		metrics.StaleRefreshesTotal.WithLabelValues(v.name).Inc()
		return zero, apperrors.ErrSuperseded
	}
	if err != nil {
		return zero, err
	}
	v.snapshot = &snap
	v.loadedAt = v.now()
	return snap, nil
}

// Filter returns the filter the view was last refreshed with.
func (v *View[F, S]) Filter() F {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.filter
}

// Snapshot returns the last committed snapshot and when it was loaded.
// ok is false until a refresh has succeeded.
func (v *View[F, S]) Snapshot() (snap S, loadedAt time.Time, ok bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.snapshot == nil {
		return snap, time.Time{}, false
	}
	return *v.snapshot, v.loadedAt, true
}

// Reset clears filter and snapshot and cancels any refresh in flight.
func (v *View[F, S]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq.Invalidate()
	var zero F
	v.filter = zero
	v.snapshot = nil
	v.loadedAt = time.Time{}
}
