package dto

import (
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/store"
	"github.com/polkiloo/orderdesk/internal/view"
)

// OrderListResponse is the order overview with its filter form and options.
type OrderListResponse struct {
	Orders     []view.OrderRow         `json:"orders"`
	Categories []model.ReferenceEntity `json:"categories"`
	Statuses   []model.ReferenceEntity `json:"statuses"`
	Filters    model.FilterCriteria    `json:"filters"`
	Loading    bool                    `json:"loading"`
	Error      string                  `json:"error,omitempty"`
	Kind       string                  `json:"kind,omitempty"`
}

// NewOrderListResponse renders state for the browser.
func NewOrderListResponse(state store.OrderListState) OrderListResponse {
	return OrderListResponse{
		Orders:     view.OrderRows(state.Orders, state.Categories, state.Statuses),
		Categories: view.Options(state.Categories),
		Statuses:   view.Options(state.Statuses),
		Filters:    state.Filters,
		Loading:    state.Loading,
		Error:      state.Error,
		Kind:       string(state.Kind),
	}
}

// FiltersRequest carries the filter form. Select values may arrive as numbers.
type FiltersRequest struct {
	Status    model.RefValue `json:"status"`
	Category  model.RefValue `json:"category"`
	DateFrom  string         `json:"date_from"`
	DateTo    string         `json:"date_to"`
	PriceFrom model.RefValue `json:"price_from"`
	PriceTo   model.RefValue `json:"price_to"`
}

// Criteria converts the request into filter criteria.
func (r FiltersRequest) Criteria() model.FilterCriteria {
	return model.FilterCriteria{
		Status:    string(r.Status),
		Category:  string(r.Category),
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		PriceFrom: string(r.PriceFrom),
		PriceTo:   string(r.PriceTo),
	}
}

// OrderFormRequest carries the order creation form.
type OrderFormRequest struct {
	Brand    string         `json:"brand"`
	Category model.RefValue `json:"category"`
	Status   model.RefValue `json:"status"`
	Price    model.RefValue `json:"price"`
}

// Form converts the request into the form draft.
func (r OrderFormRequest) Form() model.OrderForm {
	return model.OrderForm{
		Brand:    r.Brand,
		Category: string(r.Category),
		Status:   string(r.Status),
		Price:    string(r.Price),
	}
}

// OrderFormResponse is the order creation form with its select options.
type OrderFormResponse struct {
	Form       model.OrderForm         `json:"form"`
	Categories []model.ReferenceEntity `json:"categories"`
	Statuses   []model.ReferenceEntity `json:"statuses"`
	Error      string                  `json:"error,omitempty"`
	Kind       string                  `json:"kind,omitempty"`
}

// NewOrderFormResponse renders state for the browser.
func NewOrderFormResponse(state store.OrderCreatorState) OrderFormResponse {
	return OrderFormResponse{
		Form:       state.Form,
		Categories: view.Options(state.Categories),
		Statuses:   view.Options(state.Statuses),
		Error:      state.Error,
		Kind:       string(state.Kind),
	}
}
