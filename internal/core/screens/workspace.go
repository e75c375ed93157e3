package screens

import (
	"fmt"
	"sync"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/SscSPs/resale_backoffice/internal/platform/metrics"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Workspace is the set of screens one user has open.
type Workspace struct {
	Finance   *View[domain.FinanceFilter, domain.FinanceSnapshot]
	Balance   *View[domain.BalanceTransactionFilter, domain.BalanceSnapshot]
	Orders    *View[domain.OrderFilter, domain.OrderSnapshot]
	Sales     *View[domain.SaleFilter, domain.SaleSnapshot]
	Returns   *View[domain.ReturnFilter, domain.ReturnSnapshot]
	Packages  *View[struct{}, domain.PackageSnapshot]
	Products  *View[domain.ProductFilter, []domain.Product]
	Inventory *View[domain.InventoryFilter, []domain.InventoryItem]
	Customers *View[domain.CustomerFilter, []domain.Customer]
	Workers   *View[struct{}, []domain.Worker]
	AuditLogs *View[domain.AuditLogFilter, []domain.AuditLog]
	Dashboard *View[struct{}, domain.DashboardStats]
}

// NewWorkspace creates a workspace with every screen empty.
func NewWorkspace() *Workspace {
	return &Workspace{
		Finance:   NewView[domain.FinanceFilter, domain.FinanceSnapshot]("finance"),
		Balance:   NewView[domain.BalanceTransactionFilter, domain.BalanceSnapshot]("balance"),
		Orders:    NewView[domain.OrderFilter, domain.OrderSnapshot]("orders"),
		Sales:     NewView[domain.SaleFilter, domain.SaleSnapshot]("sales"),
		Returns:   NewView[domain.ReturnFilter, domain.ReturnSnapshot]("returns"),
		Packages:  NewView[struct{}, domain.PackageSnapshot]("packages"),
		Products:  NewView[domain.ProductFilter, []domain.Product]("products"),
		Inventory: NewView[domain.InventoryFilter, []domain.InventoryItem]("inventory"),
		Customers: NewView[domain.CustomerFilter, []domain.Customer]("customers"),
		Workers:   NewView[struct{}, []domain.Worker]("workers"),
		AuditLogs: NewView[domain.AuditLogFilter, []domain.AuditLog]("audit_logs"),
		Dashboard: NewView[struct{}, domain.DashboardStats]("dashboard"),
	}
}

type resetter interface {
	Name() string
	Reset()
}

func (w *Workspace) views() []resetter {
	return []resetter{
		w.Finance, w.Balance, w.Orders, w.Sales, w.Returns, w.Packages,
		w.Products, w.Inventory, w.Customers, w.Workers, w.AuditLogs, w.Dashboard,
	}
}

// Close resets every screen, cancelling refreshes still in flight.
func (w *Workspace) Close() {
	for _, v := range w.views() {
		v.Reset()
	}
}

// ResetScreen resets the screen called name. It reports false for an unknown name.
func (w *Workspace) ResetScreen(name string) bool {
	for _, v := range w.views() {
		if v.Name() == name {
			v.Reset()
			return true
		}
	}
	return false
}

// Workspaces keeps one workspace per user, dropping the least recently used
// one when the bound is reached.
type Workspaces struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Workspace]
}

// NewWorkspaces creates a store holding at most size workspaces.
func NewWorkspaces(size int) (*Workspaces, error) {
	cache, err := lru.NewWithEvict[string, *Workspace](size, func(_ string, ws *Workspace) {
		ws.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace cache: %w", err)
	}
	return &Workspaces{cache: cache}, nil
}

// For returns the workspace of userID, creating it on first use.
func (w *Workspaces) For(userID string) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ws, ok := w.cache.Get(userID); ok {
		return ws
	}
	ws := NewWorkspace()
	w.cache.Add(userID, ws)
	metrics.ActiveWorkspaces.Set(float64(w.cache.Len()))
	return ws
}

// Drop closes and forgets the workspace of userID.
func (w *Workspaces) Drop(userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cache.Remove(userID)
	metrics.ActiveWorkspaces.Set(float64(w.cache.Len()))
}

// Len returns the number of workspaces held.
func (w *Workspaces) Len() int {
	return w.cache.Len()
}
