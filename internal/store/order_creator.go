package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Messages shown by the order creation form.
const (
	RequiredFieldsMessage = "Vyplňte všetky povinné polia"
	PriceNotNumberMessage = "Cena musí byť číslo"
	PriceNegativeMessage  = "Cena nemôže byť záporná"
	CreateOrderFailed     = "Chyba pri vytváraní objednávky"
)

// ValidateOrderForm checks the draft and returns the parsed price.
// Checks run in order and stop at the first failure.
func ValidateOrderForm(form model.OrderForm) (decimal.Decimal, error) {
	if form.Brand == "" || form.Category == "" || form.Status == "" || form.Price == "" {
		return decimal.Zero, domainErrors.ErrRequiredFields
	}
	price, err := decimal.NewFromString(strings.TrimSpace(form.Price))
	if err != nil {
		return decimal.Zero, domainErrors.ErrPriceNotNumber
	}
	if price.IsNegative() {
		return decimal.Zero, domainErrors.ErrPriceNegative
	}
	return price, nil
}

// ValidationMessage returns the localized text for a form validation error.
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrRequiredFields):
		return RequiredFieldsMessage
	case errors.Is(err, domainErrors.ErrPriceNotNumber):
		return PriceNotNumberMessage
	case errors.Is(err, domainErrors.ErrPriceNegative):
		return PriceNegativeMessage
	default:
		return ""
	}
}

type orderPayload struct {
	Brand    string      `json:"brand"`
	Category string      `json:"category"`
	Status   string      `json:"status"`
	Price    json.Number `json:"price"`
}

// OrderCreatorState is a point-in-time copy of the creation form.
type OrderCreatorState struct {
	Form       model.OrderForm
	Categories model.ReferenceCollection
	Statuses   model.ReferenceCollection
	Error      string
	Kind       domainErrors.Kind
}

// OrderCreator backs the order creation form.
type OrderCreator struct {
	client     backend.Client
	ordersPath string
	categories *ReferenceStore
	statuses   *ReferenceStore
	logger     *slog.Logger

	mu   sync.Mutex
	form model.OrderForm
	err  string
	kind domainErrors.Kind
}

// NewOrderCreator creates an empty creation form.
func NewOrderCreator(client backend.Client, ordersPath string, categories, statuses *ReferenceStore, logger *slog.Logger) *OrderCreator {
	return &OrderCreator{
		client:     client,
		ordersPath: ordersPath,
		categories: categories,
		statuses:   statuses,
		logger:     logger,
	}
}

// Load refreshes the categories and statuses offered by the form.
func (c *OrderCreator) Load(ctx context.Context) bool {
	c.setError("", domainErrors.KindNone)
	failed := FetchReferences(ctx, c.categories, c.statuses)
	if !failed.OK {
		c.setError(failed.Error, failed.Kind)
		return false
	}
	return true
}

// SetForm binds the draft.
func (c *OrderCreator) SetForm(form model.OrderForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
}

// Create validates the draft and submits it. The form is reset on success.
func (c *OrderCreator) Create(ctx context.Context) bool {
	c.mu.Lock()
	form := c.form
	c.mu.Unlock()

	price, err := ValidateOrderForm(form)
	if err != nil {
		c.setError(ValidationMessage(err), domainErrors.KindValidation)
		return false
	}
	c.setError("", domainErrors.KindNone)

	payload := orderPayload{
		Brand:    form.Brand,
		Category: form.Category,
		Status:   form.Status,
		Price:    json.Number(price.String()),
	}
	resp, err := c.client.Post(ctx, c.ordersPath, payload)
	if err != nil {
		c.setError(errorMessage(err, CreateOrderFailed), classify(err))
		return false
	}

	var created model.Order
	if err := json.Unmarshal(resp.Data, &created); err == nil && created.ID != 0 {
		c.logger.Info("order created", slog.Int64("id", created.ID), slog.String("brand", created.Brand))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = model.OrderForm{}
	c.err = ""
	c.kind = domainErrors.KindNone
	return true
}

// Snapshot returns a copy of the current state.
func (c *OrderCreator) Snapshot() OrderCreatorState {
	categories := c.categories.Snapshot()
	statuses := c.statuses.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()
	return OrderCreatorState{
		Form:       c.form,
		Categories: categories.Items,
		Statuses:   statuses.Items,
		Error:      c.err,
		Kind:       c.kind,
	}
}

func (c *OrderCreator) setError(msg string, kind domainErrors.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = msg
	c.kind = kind
}
