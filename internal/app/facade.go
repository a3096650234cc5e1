package app

import (
	"context"
	"errors"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/store"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// ConsoleFacade is the single entry point the HTTP layer and workers use.
type ConsoleFacade struct {
	staff      *usecase.StaffUseCase
	workspaces *Workspaces
	client     backend.Client
	healthPath string
	revoked    *revocations
}

// NewConsoleFacade wires the facade.
func NewConsoleFacade(staff *usecase.StaffUseCase, workspaces *Workspaces, client backend.Client, healthPath string) *ConsoleFacade {
	return &ConsoleFacade{
		staff:      staff,
		workspaces: workspaces,
		client:     client,
		healthPath: healthPath,
		revoked:    newRevocations(),
	}
}

// Login authenticates a staff member and issues a session token.
func (f *ConsoleFacade) Login(ctx context.Context, login, password string) (string, pkgAuth.Session, error) {
	_, token, session, err := f.staff.Authenticate(ctx, login, password)
	return token, session, err
}

// Logout revokes token for the rest of its lifetime and discards the workspace of staffID.
// Revocations live in memory and do not survive a restart.
func (f *ConsoleFacade) Logout(staffID int64, token string) {
	if session, err := f.staff.ParseToken(token); err == nil {
		f.revoked.revoke(token, session.ExpiresAt)
	}
	f.workspaces.Drop(staffID)
}

// ParseToken resolves a session token to a staff identifier.
func (f *ConsoleFacade) ParseToken(token string) (int64, error) {
	if f.revoked.revoked(token) {
		return 0, pkgAuth.ErrInvalidToken
	}
	session, err := f.staff.ParseToken(token)
	if err != nil {
		return 0, err
	}
	return session.StaffID, nil
}

// Orders returns the order list, loading it on first access.
func (f *ConsoleFacade) Orders(ctx context.Context, staffID int64) store.OrderListState {
	ws := f.workspaces.For(staffID)
	ws.ensureOrders(ctx)
	return ws.Orders.Snapshot()
}

// ReloadOrders refetches orders and both reference collections.
func (f *ConsoleFacade) ReloadOrders(ctx context.Context, staffID int64) store.OrderListState {
	ws := f.workspaces.For(staffID)
	ws.skipInitialLoad()
	ws.Orders.Load(ctx)
	return ws.Orders.Snapshot()
}

// ApplyFilters stores filters and refetches the matching orders.
func (f *ConsoleFacade) ApplyFilters(ctx context.Context, staffID int64, filters model.FilterCriteria) store.OrderListState {
	ws := f.workspaces.For(staffID)
	ws.skipInitialLoad()
	list := ws.Orders
	list.SetFilters(filters)
	list.ApplyFilters(ctx)
	return list.Snapshot()
}

// ResetFilters clears filters and refetches all orders.
func (f *ConsoleFacade) ResetFilters(ctx context.Context, staffID int64) store.OrderListState {
	ws := f.workspaces.For(staffID)
	ws.skipInitialLoad()
	list := ws.Orders
	list.ResetFilters(ctx)
	return list.Snapshot()
}

// NewOrder prepares the order creation form.
func (f *ConsoleFacade) NewOrder(ctx context.Context, staffID int64) store.OrderCreatorState {
	creator := f.workspaces.For(staffID).Creator
	creator.Load(ctx)
	return creator.Snapshot()
}

// CreateOrder submits form. The returned state has an empty Error on success.
func (f *ConsoleFacade) CreateOrder(ctx context.Context, staffID int64, form model.OrderForm) store.OrderCreatorState {
	creator := f.workspaces.For(staffID).Creator
	creator.SetForm(form)
	creator.Create(ctx)
	return creator.Snapshot()
}

// Settings loads the reference data settings page.
func (f *ConsoleFacade) Settings(ctx context.Context, staffID int64) store.SettingsState {
	settings := f.workspaces.For(staffID).Settings
	settings.Load(ctx)
	return settings.Snapshot()
}

// AddCategory creates a vehicle category named label.
func (f *ConsoleFacade) AddCategory(ctx context.Context, staffID int64, label string) store.SettingsState {
	settings := f.workspaces.For(staffID).Settings
	settings.SetNewCategory(label)
	settings.AddCategory(ctx)
	return settings.Snapshot()
}

// DeleteCategory removes the vehicle category id.
func (f *ConsoleFacade) DeleteCategory(ctx context.Context, staffID, id int64) store.SettingsState {
	settings := f.workspaces.For(staffID).Settings
	settings.DeleteCategory(ctx, id)
	return settings.Snapshot()
}

// AddStatus creates an order status named label.
func (f *ConsoleFacade) AddStatus(ctx context.Context, staffID int64, label string) store.SettingsState {
	settings := f.workspaces.For(staffID).Settings
	settings.SetNewStatus(label)
	settings.AddStatus(ctx)
	return settings.Snapshot()
}

// DeleteStatus removes the order status id.
func (f *ConsoleFacade) DeleteStatus(ctx context.Context, staffID, id int64) store.SettingsState {
	settings := f.workspaces.For(staffID).Settings
	settings.DeleteStatus(ctx, id)
	return settings.Snapshot()
}

// RefreshReferences resynchronizes the shared reference stores.
func (f *ConsoleFacade) RefreshReferences(ctx context.Context) error {
	failed := store.FetchReferences(ctx, f.workspaces.Categories(), f.workspaces.Statuses())
	if !failed.OK {
		return errors.New(failed.Error)
	}
	return nil
}

// BackendHealth probes the backend health endpoint.
func (f *ConsoleFacade) BackendHealth(ctx context.Context) error {
	_, err := f.client.Get(ctx, f.healthPath, nil)
	return err
}
