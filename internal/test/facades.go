package test

import (
	"context"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/store"
)

// SessionFacadeStub simulates staff sign-in.
type SessionFacadeStub struct {
	LoginFn  func(context.Context, string, string) (string, pkgAuth.Session, error)
	LogoutFn func(int64, string)
	ParseFn  func(string) (int64, error)
}

// Login returns a token for successful authentication scenarios.
func (s SessionFacadeStub) Login(ctx context.Context, login, password string) (string, pkgAuth.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, login, password)
	}
	return "token", pkgAuth.Session{StaffID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// Logout delegates to the override, if any.
func (s SessionFacadeStub) Logout(staffID int64, token string) {
	if s.LogoutFn != nil {
		s.LogoutFn(staffID, token)
	}
}

// ParseToken returns stored identifier for the signed in staff member.
func (s SessionFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// OrdersFacadeStub provides controllable behaviour for order endpoints.
type OrdersFacadeStub struct {
	OrdersFn      func(context.Context, int64) store.OrderListState
	ReloadFn      func(context.Context, int64) store.OrderListState
	ApplyFn       func(context.Context, int64, model.FilterCriteria) store.OrderListState
	ResetFn       func(context.Context, int64) store.OrderListState
	NewOrderFn    func(context.Context, int64) store.OrderCreatorState
	CreateOrderFn func(context.Context, int64, model.OrderForm) store.OrderCreatorState
}

// Orders returns the configured list state.
func (s OrdersFacadeStub) Orders(ctx context.Context, staffID int64) store.OrderListState {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, staffID)
	}
	return store.OrderListState{}
}

// ReloadOrders returns the configured list state.
func (s OrdersFacadeStub) ReloadOrders(ctx context.Context, staffID int64) store.OrderListState {
	if s.ReloadFn != nil {
		return s.ReloadFn(ctx, staffID)
	}
	return store.OrderListState{}
}

// ApplyFilters echoes the filters back by default.
func (s OrdersFacadeStub) ApplyFilters(ctx context.Context, staffID int64, filters model.FilterCriteria) store.OrderListState {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, staffID, filters)
	}
	return store.OrderListState{Filters: filters}
}

// ResetFilters returns the configured list state.
func (s OrdersFacadeStub) ResetFilters(ctx context.Context, staffID int64) store.OrderListState {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, staffID)
	}
	return store.OrderListState{}
}

// NewOrder returns the configured form state.
func (s OrdersFacadeStub) NewOrder(ctx context.Context, staffID int64) store.OrderCreatorState {
	if s.NewOrderFn != nil {
		return s.NewOrderFn(ctx, staffID)
	}
	return store.OrderCreatorState{}
}

// CreateOrder returns a reset form by default.
func (s OrdersFacadeStub) CreateOrder(ctx context.Context, staffID int64, form model.OrderForm) store.OrderCreatorState {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, staffID, form)
	}
	return store.OrderCreatorState{}
}

// SettingsFacadeStub simulates reference data maintenance.
type SettingsFacadeStub struct {
	SettingsFn       func(context.Context, int64) store.SettingsState
	AddCategoryFn    func(context.Context, int64, string) store.SettingsState
	DeleteCategoryFn func(context.Context, int64, int64) store.SettingsState
	AddStatusFn      func(context.Context, int64, string) store.SettingsState
	DeleteStatusFn   func(context.Context, int64, int64) store.SettingsState
}

// Settings returns the configured settings state.
func (s SettingsFacadeStub) Settings(ctx context.Context, staffID int64) store.SettingsState {
	if s.SettingsFn != nil {
		return s.SettingsFn(ctx, staffID)
	}
	return store.SettingsState{}
}

// AddCategory returns the configured settings state.
func (s SettingsFacadeStub) AddCategory(ctx context.Context, staffID int64, label string) store.SettingsState {
	if s.AddCategoryFn != nil {
		return s.AddCategoryFn(ctx, staffID, label)
	}
	return store.SettingsState{}
}

// DeleteCategory returns the configured settings state.
func (s SettingsFacadeStub) DeleteCategory(ctx context.Context, staffID, id int64) store.SettingsState {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, staffID, id)
	}
	return store.SettingsState{}
}

// AddStatus returns the configured settings state.
func (s SettingsFacadeStub) AddStatus(ctx context.Context, staffID int64, label string) store.SettingsState {
	if s.AddStatusFn != nil {
		return s.AddStatusFn(ctx, staffID, label)
	}
	return store.SettingsState{}
}

// DeleteStatus returns the configured settings state.
func (s SettingsFacadeStub) DeleteStatus(ctx context.Context, staffID, id int64) store.SettingsState {
	if s.DeleteStatusFn != nil {
		return s.DeleteStatusFn(ctx, staffID, id)
	}
	return store.SettingsState{}
}

// HealthFacadeStub reports a configured backend health.
type HealthFacadeStub struct {
	Err error
}

// BackendHealth returns the configured error.
func (s HealthFacadeStub) BackendHealth(context.Context) error {
	return s.Err
}

// ConsoleFacadeStub aggregates facade dependencies for HTTP layer tests.
type ConsoleFacadeStub struct {
	SessionFacadeStub
	OrdersFacadeStub
	SettingsFacadeStub
	HealthFacadeStub
}
