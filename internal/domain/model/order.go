package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order describes a vehicle order as returned by the backend.
type Order struct {
	ID        int64
	Brand     string
	Category  string
	Status    string
	Price     decimal.Decimal
	CreatedAt Timestamp
}

// orderWire accepts both current and legacy order payloads.
type orderWire struct {
	ID                int64       `json:"id"`
	Brand             string      `json:"brand"`
	Category          RefValue    `json:"category"`
	VehicleCategoryID RefValue    `json:"vehicle_category_id"`
	Status            RefValue    `json:"status"`
	StatusID          RefValue    `json:"status_id"`
	Price             json.Number `json:"price"`
	CreatedAt         Timestamp   `json:"created_at"`
}

// UnmarshalJSON decodes an order row, preferring category/status over the legacy id columns.
func (o *Order) UnmarshalJSON(data []byte) error {
	var w orderWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	price := decimal.Zero
	if w.Price != "" {
		p, err := decimal.NewFromString(w.Price.String())
		if err != nil {
			return fmt.Errorf("order %d price: %w", w.ID, err)
		}
		price = p
	}

	*o = Order{
		ID:        w.ID,
		Brand:     w.Brand,
		Category:  firstNonEmpty(string(w.Category), string(w.VehicleCategoryID)),
		Status:    firstNonEmpty(string(w.Status), string(w.StatusID)),
		Price:     price,
		CreatedAt: w.CreatedAt,
	}
	return nil
}

// MarshalJSON renders the order with a numeric price.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int64       `json:"id"`
		Brand     string      `json:"brand"`
		Category  string      `json:"category"`
		Status    string      `json:"status"`
		Price     json.Number `json:"price"`
		CreatedAt Timestamp   `json:"created_at"`
	}{o.ID, o.Brand, o.Category, o.Status, json.Number(o.Price.String()), o.CreatedAt})
}

// RefValue holds a reference that the backend may send as a number or a string.
type RefValue string

func (r *RefValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RefValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("reference must be a string or a number: %w", err)
	}
	*r = RefValue(n.String())
	return nil
}

// Timestamp parses backend timestamps with or without a zone offset.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseTimestamp parses value using the layouts the backend is known to emit.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format("2006-01-02T15:04:05"))
}

// OrderForm is the mutable draft bound to the order creation form.
type OrderForm struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Price    string `json:"price"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
