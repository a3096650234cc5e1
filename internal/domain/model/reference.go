package model

import (
	"maps"
	"slices"
)

// ReferenceEntity is a category or an order status.
type ReferenceEntity struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// ReferenceCollection maps entity id to its display label.
type ReferenceCollection map[int64]string

// Clone returns an independent copy of the collection.
func (c ReferenceCollection) Clone() ReferenceCollection {
	out := make(ReferenceCollection, len(c))
	maps.Copy(out, c)
	return out
}

// IDs returns the ids in ascending order.
func (c ReferenceCollection) IDs() []int64 {
	return slices.Sorted(maps.Keys(c))
}

// Entities lists the collection ordered by id.
func (c ReferenceCollection) Entities() []ReferenceEntity {
	out := make([]ReferenceEntity, 0, len(c))
	for _, id := range c.IDs() {
		out = append(out, ReferenceEntity{ID: id, Label: c[id]})
	}
	return out
}
