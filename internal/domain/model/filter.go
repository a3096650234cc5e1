package model

import "net/url"

// FilterCriteria holds the optional order list filters. Empty fields are not applied.
type FilterCriteria struct {
	Status    string `json:"status"`
	Category  string `json:"category"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	PriceFrom string `json:"price_from"`
	PriceTo   string `json:"price_to"`
}

// Params returns query parameters for the non-empty fields only.
// The result is never nil, even when no field is set.
func (f FilterCriteria) Params() url.Values {
	params := url.Values{}
	for _, p := range []struct {
		key   string
		value string
	}{
		{"status", f.Status},
		{"category", f.Category},
		{"date_from", f.DateFrom},
		{"date_to", f.DateTo},
		{"price_from", f.PriceFrom},
		{"price_to", f.PriceTo},
	} {
		if p.value != "" {
			params.Set(p.key, p.value)
		}
	}
	return params
}
