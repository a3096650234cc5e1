package handlers

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/store"
)

// SessionFacade describes staff sign-in capabilities required by handlers.
type SessionFacade interface {
	Login(ctx context.Context, login, password string) (string, pkgAuth.Session, error)
	Logout(staffID int64, token string)
	ParseToken(token string) (int64, error)
}

// OrdersFacade encapsulates the order list and creation views.
type OrdersFacade interface {
	Orders(ctx context.Context, staffID int64) store.OrderListState
	ReloadOrders(ctx context.Context, staffID int64) store.OrderListState
	ApplyFilters(ctx context.Context, staffID int64, filters model.FilterCriteria) store.OrderListState
	ResetFilters(ctx context.Context, staffID int64) store.OrderListState
	NewOrder(ctx context.Context, staffID int64) store.OrderCreatorState
	CreateOrder(ctx context.Context, staffID int64, form model.OrderForm) store.OrderCreatorState
}

// SettingsFacade provides reference data maintenance.
type SettingsFacade interface {
	Settings(ctx context.Context, staffID int64) store.SettingsState
	AddCategory(ctx context.Context, staffID int64, label string) store.SettingsState
	DeleteCategory(ctx context.Context, staffID, id int64) store.SettingsState
	AddStatus(ctx context.Context, staffID int64, label string) store.SettingsState
	DeleteStatus(ctx context.Context, staffID, id int64) store.SettingsState
}

// HealthFacade probes the backend.
type HealthFacade interface {
	BackendHealth(ctx context.Context) error
}

// ConsoleFacade aggregates the full set of operations used across handlers.
type ConsoleFacade interface {
	SessionFacade
	OrdersFacade
	SettingsFacade
	HealthFacade
}
