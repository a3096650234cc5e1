package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFilterCriteriaParamsOmitsEmptyFields(t *testing.T) {
	cases := []struct {
		name   string
		filter FilterCriteria
		want   string
	}{
		{name: "empty", filter: FilterCriteria{}, want: ""},
		{name: "status only", filter: FilterCriteria{Status: "1"}, want: "status=1"},
		{name: "category only", filter: FilterCriteria{Category: "1"}, want: "category=1"},
		{name: "date range", filter: FilterCriteria{DateFrom: "2024-03-19", DateTo: "2024-03-20"}, want: "date_from=2024-03-19&date_to=2024-03-20"},
		{name: "price range", filter: FilterCriteria{PriceFrom: "1000", PriceTo: "2000"}, want: "price_from=1000&price_to=2000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := tc.filter.Params()
			if params == nil {
				t.Fatal("expected non-nil params")
			}
			if got := params.Encode(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOrderUnmarshalCurrentShape(t *testing.T) {
	raw := `{"id":1,"brand":"Mercedes","category":"LKW","status":"Nové","price":1000.5,"created_at":"2024-03-20T10:00:00"}`
	var o Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.ID != 1 || o.Brand != "Mercedes" || o.Category != "LKW" || o.Status != "Nové" {
		t.Fatalf("unexpected order %+v", o)
	}
	if o.Price.String() != "1000.5" {
		t.Fatalf("unexpected price %s", o.Price)
	}
	want := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	if !o.CreatedAt.Equal(want) {
		t.Fatalf("unexpected created_at %v", o.CreatedAt.Time)
	}
}

func TestOrderUnmarshalLegacyIDColumns(t *testing.T) {
	raw := `{"id":2,"brand":"BMW","vehicle_category_id":2,"status_id":3,"price":"2000","created_at":"2024-03-19T15:30:00.123456"}`
	var o Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.Category != "2" || o.Status != "3" {
		t.Fatalf("expected legacy ids to be used, got %+v", o)
	}
	if o.Price.String() != "2000" {
		t.Fatalf("unexpected price %s", o.Price)
	}
}

func TestOrderUnmarshalRejectsBadPrice(t *testing.T) {
	var o Order
	if err := json.Unmarshal([]byte(`{"id":1,"price":"abc"}`), &o); err == nil {
		t.Fatal("expected error for non numeric price")
	}
}

func TestOrderMarshalRoundsTripDisplayFields(t *testing.T) {
	var o Order
	if err := json.Unmarshal([]byte(`{"id":3,"brand":"Audi","category":1,"status":2,"price":15.25,"created_at":null}`), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":3,"brand":"Audi","category":"1","status":"2","price":15.25,"created_at":null}`
	if string(out) != want {
		t.Fatalf("expected %s, got %s", want, out)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	for _, value := range []string{
		"2024-03-20T10:00:00",
		"2024-03-20T10:00:00Z",
		"2024-03-20T10:00:00.5",
		"2024-03-20 10:00:00",
		"2024-03-20T10:00",
	} {
		if _, err := ParseTimestamp(value); err != nil {
			t.Fatalf("expected %q to parse: %v", value, err)
		}
	}
	if _, err := ParseTimestamp("20.03.2024"); err == nil {
		t.Fatal("expected unsupported layout error")
	}
}

func TestReferenceCollectionClone(t *testing.T) {
	original := ReferenceCollection{1: "LKW"}
	clone := original.Clone()
	clone[2] = "PKW"
	if len(original) != 1 {
		t.Fatalf("clone must not alias original: %v", original)
	}
}

func TestReferenceCollectionEntitiesOrdered(t *testing.T) {
	c := ReferenceCollection{3: "Bus", 1: "LKW", 2: "PKW"}
	entities := c.Entities()
	if len(entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(entities))
	}
	for i, want := range []ReferenceEntity{{1, "LKW"}, {2, "PKW"}, {3, "Bus"}} {
		if entities[i] != want {
			t.Fatalf("entity %d: expected %+v, got %+v", i, want, entities[i])
		}
	}
}
