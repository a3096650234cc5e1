package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	"github.com/polkiloo/orderdesk/internal/store"
)

// Workspace holds the view-models owned by a single staff session.
type Workspace struct {
	Orders   *store.OrderList
	Creator  *store.OrderCreator
	Settings *store.Settings

	ordersOnce sync.Once
}

// ensureOrders loads the order list the first time the workspace shows it.
func (w *Workspace) ensureOrders(ctx context.Context) {
	w.ordersOnce.Do(func() {
		w.Orders.Load(ctx)
	})
}

// skipInitialLoad stops ensureOrders from replacing results the session already requested.
func (w *Workspace) skipInitialLoad() {
	w.ordersOnce.Do(func() {})
}

// Workspaces creates and tracks per-staff view-models over the shared reference stores.
type Workspaces struct {
	client     backend.Client
	ordersPath string
	categories *store.ReferenceStore
	statuses   *store.ReferenceStore
	logger     *slog.Logger

	mu      sync.Mutex
	byStaff map[int64]*Workspace
}

// NewWorkspaces constructs an empty registry.
func NewWorkspaces(client backend.Client, ordersPath string, categories, statuses *store.ReferenceStore, logger *slog.Logger) *Workspaces {
	return &Workspaces{
		client:     client,
		ordersPath: ordersPath,
		categories: categories,
		statuses:   statuses,
		logger:     logger,
		byStaff:    make(map[int64]*Workspace),
	}
}

// For returns the workspace of staffID, creating it on first use.
func (w *Workspaces) For(staffID int64) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ws, ok := w.byStaff[staffID]; ok {
		return ws
	}
	logger := w.logger.With(slog.Int64("staff_id", staffID))
	ws := &Workspace{
		Orders:   store.NewOrderList(w.client, w.ordersPath, w.categories, w.statuses, logger),
		Creator:  store.NewOrderCreator(w.client, w.ordersPath, w.categories, w.statuses, logger),
		Settings: store.NewSettings(w.categories, w.statuses),
	}
	w.byStaff[staffID] = ws
	return ws
}

// Drop forgets the workspace of staffID.
func (w *Workspaces) Drop(staffID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.byStaff, staffID)
}

// Len reports the number of open workspaces.
func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.byStaff)
}

// Categories returns the shared category store.
func (w *Workspaces) Categories() *store.ReferenceStore {
	return w.categories
}

// Statuses returns the shared status store.
func (w *Workspaces) Statuses() *store.ReferenceStore {
	return w.statuses
}
