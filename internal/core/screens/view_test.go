package screens_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/SscSPs/resale_backoffice/internal/core/screens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_StaleRefreshIsDiscarded(t *testing.T) {
	view := screens.NewView[domain.OrderFilter, []string]("orders")

	started := make(chan struct{})
	release := make(chan struct{})
	slowDone := make(chan error, 1)

	go func() {
		_, err := view.RefreshWith(context.Background(), domain.OrderFilter{Brand: "old"},
			func(ctx context.Context, _ domain.OrderFilter) ([]string, error) {
				close(started)
				<-release
				return []string{"stale"}, nil
			})
		slowDone <- err
	}()
	<-started

	got, err := view.RefreshWith(context.Background(), domain.OrderFilter{Brand: "new"},
		func(ctx context.Context, _ domain.OrderFilter) ([]string, error) {
			return []string{"fresh"}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)

	close(release)
	select {
	case err := <-slowDone:
		assert.ErrorIs(t, err, apperrors.ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("stale refresh did not return")
	}

	snap, _, ok := view.Snapshot()
	require.True(t, ok)
	assert.Equal(t, []string{"fresh"}, snap)
	assert.Equal(t, "new", view.Filter().Brand)
}

func TestView_NewRefreshCancelsPrevious(t *testing.T) {
	view := screens.NewView[struct{}, int]("dashboard")

	started := make(chan struct{})
	slowErr := make(chan error, 1)
	go func() {
		_, err := view.Refresh(context.Background(), func(ctx context.Context, _ struct{}) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		slowErr <- err
	}()
	<-started

	_, err := view.Refresh(context.Background(), func(context.Context, struct{}) (int, error) { return 2, nil })
	require.NoError(t, err)

	select {
	case err := <-slowErr:
		assert.ErrorIs(t, err, apperrors.ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("previous refresh was not cancelled")
	}
}

func TestView_FailedRefreshKeepsSnapshot(t *testing.T) {
	view := screens.NewView[struct{}, int]("dashboard")
	_, err := view.Refresh(context.Background(), func(context.Context, struct{}) (int, error) { return 1, nil })
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = view.Refresh(context.Background(), func(context.Context, struct{}) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	snap, _, ok := view.Snapshot()
	require.True(t, ok)
	assert.Equal(t, 1, snap)
}

func TestView_Reset(t *testing.T) {
	view := screens.NewView[domain.SaleFilter, int]("sales")
	_, err := view.RefreshWith(context.Background(), domain.SaleFilter{Status: domain.SalePending},
		func(context.Context, domain.SaleFilter) (int, error) { return 5, nil })
	require.NoError(t, err)

	view.Reset()

	_, _, ok := view.Snapshot()
	assert.False(t, ok)
	assert.Equal(t, domain.SaleFilter{}, view.Filter())
}

func TestWorkspaces_PerUserAndBounded(t *testing.T) {
	store, err := screens.NewWorkspaces(2)
	require.NoError(t, err)

	alice := store.For("1")
	assert.Same(t, alice, store.For("1"))
	assert.NotSame(t, alice, store.For("2"))

	_, err = alice.Dashboard.Refresh(context.Background(), func(context.Context, struct{}) (domain.DashboardStats, error) {
		return domain.DashboardStats(`{}`), nil
	})
	require.NoError(t, err)

	// "1" is the least recently used once "2" and "3" are touched.
	store.For("2")
	store.For("3")
	assert.Equal(t, 2, store.Len())

	_, _, ok := alice.Dashboard.Snapshot()
	assert.False(t, ok, "evicted workspace should be closed")
	assert.NotSame(t, alice, store.For("1"))
}

func TestWorkspaces_InvalidSize(t *testing.T) {
	_, err := screens.NewWorkspaces(0)
	assert.Error(t, err)
}

func TestWorkspace_ResetScreen(t *testing.T) {
	ws := screens.NewWorkspace()
	_, err := ws.Sales.RefreshWith(context.Background(), domain.SaleFilter{Status: domain.SalePending},
		func(ctx context.Context, _ domain.SaleFilter) (domain.SaleSnapshot, error) {
			return domain.SaleSnapshot{Total: 3}, nil
		})
	require.NoError(t, err)

	assert.True(t, ws.ResetScreen("sales"))
	_, _, ok := ws.Sales.Snapshot()
	assert.False(t, ok)
	assert.Equal(t, domain.SaleFilter{}, ws.Sales.Filter())

	assert.False(t, ws.ResetScreen("nope"))
}
