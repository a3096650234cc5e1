package dto

import (
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/store"
	"github.com/polkiloo/orderdesk/internal/view"
)

// LabelRequest carries the name of a new category or status.
type LabelRequest struct {
	Label string `json:"label"`
}

// SettingsResponse is the reference data settings page.
type SettingsResponse struct {
	Categories  []model.ReferenceEntity `json:"categories"`
	Statuses    []model.ReferenceEntity `json:"statuses"`
	NewCategory string                  `json:"new_category"`
	NewStatus   string                  `json:"new_status"`
	Loading     bool                    `json:"loading"`
	Error       string                  `json:"error,omitempty"`
	Kind        string                  `json:"kind,omitempty"`
}

// NewSettingsResponse renders state for the browser.
func NewSettingsResponse(state store.SettingsState) SettingsResponse {
	return SettingsResponse{
		Categories:  view.Options(state.Categories.Items),
		Statuses:    view.Options(state.Statuses.Items),
		NewCategory: state.NewCategory,
		NewStatus:   state.NewStatus,
		Loading:     state.Categories.Loading || state.Statuses.Loading,
		Error:       state.Error,
		Kind:        string(state.Kind),
	}
}
