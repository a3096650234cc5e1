package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// LoadOrdersFailed is shown when the order list cannot be retrieved.
const LoadOrdersFailed = "Chyba pri načítaní objednávok"

// OrderListState is a point-in-time copy of the order list view.
type OrderListState struct {
	Orders     []model.Order
	Categories model.ReferenceCollection
	Statuses   model.ReferenceCollection
	Filters    model.FilterCriteria
	Loading    bool
	Error      string
	Kind       domainErrors.Kind
}

// OrderList backs the order overview with its filter form.
type OrderList struct {
	client     backend.Client
	ordersPath string
	categories *ReferenceStore
	statuses   *ReferenceStore
	logger     *slog.Logger

	mu       sync.Mutex
	orders   []model.Order
	filters  model.FilterCriteria
	inflight int
	err      string
	kind     domainErrors.Kind
	seq      sequencer
}

// NewOrderList creates an empty order list view.
func NewOrderList(client backend.Client, ordersPath string, categories, statuses *ReferenceStore, logger *slog.Logger) *OrderList {
	return &OrderList{
		client:     client,
		ordersPath: ordersPath,
		categories: categories,
		statuses:   statuses,
		logger:     logger,
	}
}

// Load fetches unfiltered orders together with both reference collections.
// The reported error prefers orders, then categories, then statuses.
func (l *OrderList) Load(ctx context.Context) bool {
	l.setError(nil, "")

	var (
		ordersErr       error
		categoryOutcome Outcome
		statusOutcome   Outcome
	)

	var g errgroup.Group
	g.Go(func() error {
		ordersErr = l.fetchOrders(ctx, nil)
		return ordersErr
	})
	g.Go(func() error {
		categoryOutcome = l.categories.fetch(ctx)
		return categoryOutcome.err()
	})
	g.Go(func() error {
		statusOutcome = l.statuses.fetch(ctx)
		return statusOutcome.err()
	})
	err := g.Wait()
	if err == nil {
		return true
	}
	l.logger.Warn("order list load failed", slog.String("error", err.Error()))

	switch {
	case ordersErr != nil:
		l.setError(ordersErr, LoadOrdersFailed)
	case !categoryOutcome.OK:
		l.setReferenceError(categoryOutcome)
	default:
		l.setReferenceError(statusOutcome)
	}
	return false
}

// SetFilters binds the filter form.
func (l *OrderList) SetFilters(filters model.FilterCriteria) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters = filters
}

// ApplyFilters requests orders matching the non-empty filter fields.
func (l *OrderList) ApplyFilters(ctx context.Context) bool {
	l.mu.Lock()
	params := l.filters.Params()
	l.mu.Unlock()
	return l.reload(ctx, params)
}

// ResetFilters clears the filter form and requests the unfiltered list.
func (l *OrderList) ResetFilters(ctx context.Context) bool {
	l.mu.Lock()
	l.filters = model.FilterCriteria{}
	l.mu.Unlock()
	return l.reload(ctx, nil)
}

// Snapshot returns a copy of the current state.
func (l *OrderList) Snapshot() OrderListState {
	categories := l.categories.Snapshot()
	statuses := l.statuses.Snapshot()

	l.mu.Lock()
	defer l.mu.Unlock()
	orders := make([]model.Order, len(l.orders))
	copy(orders, l.orders)
	return OrderListState{
		Orders:     orders,
		Categories: categories.Items,
		Statuses:   statuses.Items,
		Filters:    l.filters,
		Loading:    l.inflight > 0 || categories.Loading || statuses.Loading,
		Error:      l.err,
		Kind:       l.kind,
	}
}

func (l *OrderList) reload(ctx context.Context, params url.Values) bool {
	l.setError(nil, "")
	if err := l.fetchOrders(ctx, params); err != nil {
		l.setError(err, LoadOrdersFailed)
		return false
	}
	return true
}

// fetchOrders replaces the list unless a newer response was already applied.
func (l *OrderList) fetchOrders(ctx context.Context, params url.Values) error {
	l.mu.Lock()
	seq := l.seq.next()
	l.inflight++
	l.mu.Unlock()

	var orders []model.Order
	resp, err := l.client.Get(ctx, l.ordersPath, params)
	if err == nil {
		if decodeErr := json.Unmarshal(resp.Data, &orders); decodeErr != nil {
			err = fmt.Errorf("%w: decode orders: %w", errMalformedPayload, decodeErr)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inflight--
	if !l.seq.accept(seq) {
		l.logger.Debug("stale orders response dropped", slog.Uint64("seq", seq))
		return nil
	}
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	l.orders = orders
	return nil
}

func (l *OrderList) setError(err error, fallback string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = errorMessage(err, fallback)
	l.kind = classify(err)
}

func (l *OrderList) setReferenceError(outcome Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = outcome.Error
	l.kind = outcome.Kind
}
