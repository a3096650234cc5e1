package view

import (
	"strconv"
	"strings"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderRow is an order prepared for the overview table.
type OrderRow struct {
	ID         int64  `json:"id"`
	Brand      string `json:"brand"`
	CategoryID string `json:"category_id"`
	Category   string `json:"category"`
	StatusID   string `json:"status_id"`
	Status     string `json:"status"`
	Price      string `json:"price"`
	CreatedAt  string `json:"created_at"`
}

// OrderRows resolves category and status labels and formats money and dates.
func OrderRows(orders []model.Order, categories, statuses model.ReferenceCollection) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderRow{
			ID:         o.ID,
			Brand:      o.Brand,
			CategoryID: o.Category,
			Category:   Resolve(categories, o.Category),
			StatusID:   o.Status,
			Status:     Resolve(statuses, o.Status),
			Price:      FormatPrice(o.Price),
			CreatedAt:  FormatTime(o.CreatedAt.Time),
		})
	}
	return rows
}

// Resolve returns the label for ref when it is a known id, otherwise ref itself.
// Older backends already send labels instead of ids.
func Resolve(items model.ReferenceCollection, ref string) string {
	id, err := strconv.ParseInt(strings.TrimSpace(ref), 10, 64)
	if err != nil {
		return ref
	}
	if label, ok := items[id]; ok {
		return label
	}
	return ref
}

// Options lists a collection ordered by id for select boxes.
func Options(items model.ReferenceCollection) []model.ReferenceEntity {
	return items.Entities()
}
