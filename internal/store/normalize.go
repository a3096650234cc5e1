package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Normalize reduces a backend collection into an id to label mapping.
// The canonical shape is an array of objects carrying "id" and labelField.
// A pre-keyed object {"<id>": "<label>"} is accepted for older backends.
// Later entries win when ids repeat.
func Normalize(data json.RawMessage, labelField string) (model.ReferenceCollection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty reference payload")
	}

	switch trimmed[0] {
	case '[':
		return normalizeArray(trimmed, labelField)
	case '{':
		return normalizeKeyed(trimmed)
	default:
		return nil, fmt.Errorf("unexpected reference payload %q", truncate(string(trimmed)))
	}
}

func normalizeArray(data []byte, labelField string) (model.ReferenceCollection, error) {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode reference list: %w", err)
	}

	items := make(model.ReferenceCollection, len(rows))
	for i, row := range rows {
		raw, ok := row["id"]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("reference %d: missing id", i)
		}
		var id int64
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, fmt.Errorf("reference %d: invalid id: %w", i, err)
		}
		var label string
		if raw, ok := row[labelField]; ok {
			if err := json.Unmarshal(raw, &label); err != nil {
				return nil, fmt.Errorf("reference %d: invalid %s: %w", id, labelField, err)
			}
		}
		items[id] = label
	}
	return items, nil
}

func normalizeKeyed(data []byte) (model.ReferenceCollection, error) {
	var keyed map[string]string
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("decode keyed references: %w", err)
	}

	items := make(model.ReferenceCollection, len(keyed))
	for key, label := range keyed {
		id, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid reference id %q: %w", key, err)
		}
		items[id] = label
	}
	return items, nil
}

func truncate(s string) string {
	const limit = 32
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
