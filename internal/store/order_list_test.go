package store

import (
	"context"
	"net/http"
	"net/url"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

const ordersJSON = `[
	{"id":1,"brand":"Mercedes","category":"LKW","status":"Nové","price":1000,"created_at":"2024-03-20T10:00:00"},
	{"id":2,"brand":"BMW","category":"PKW","status":"Vybavené","price":2000,"created_at":"2024-03-19T15:30:00"}
]`

func newOrderList(client backend.Client) *OrderList {
	categories := NewCategoriesStore(client, categoriesPath, discardLogger())
	statuses := NewStatusesStore(client, statusesPath, discardLogger())
	return NewOrderList(client, ordersPath, categories, statuses, discardLogger())
}

func orderRoutes(_ context.Context, path string, _ url.Values) (*backend.Response, error) {
	if path == ordersPath {
		return ok(ordersJSON), nil
	}
	return referenceRoutes(path)
}

func TestOrderListLoad(t *testing.T) {
	client := &fakeBackend{GetFn: orderRoutes}
	list := newOrderList(client)

	if !list.Load(context.Background()) {
		t.Fatalf("expected load to succeed, got %+v", list.Snapshot())
	}

	state := list.Snapshot()
	if len(state.Orders) != 2 || state.Orders[0].Brand != "Mercedes" || state.Orders[1].Brand != "BMW" {
		t.Fatalf("unexpected orders %+v", state.Orders)
	}
	if !reflect.DeepEqual(state.Categories, model.ReferenceCollection{1: "LKW", 2: "PKW"}) {
		t.Fatalf("unexpected categories %v", state.Categories)
	}
	if !reflect.DeepEqual(state.Statuses, model.ReferenceCollection{1: "Nové", 2: "Vybavené"}) {
		t.Fatalf("unexpected statuses %v", state.Statuses)
	}
	if state.Error != "" || state.Loading {
		t.Fatalf("unexpected status %+v", state)
	}

	for _, call := range client.Calls("GET") {
		if call.Path == ordersPath && call.Params != nil {
			t.Fatalf("initial load must be unfiltered, got %v", call.Params)
		}
	}
}

func TestOrderListLoadErrorPrecedence(t *testing.T) {
	cases := []struct {
		name    string
		failing map[string]error
		want    string
	}{
		{
			name:    "orders detail",
			failing: map[string]error{ordersPath: httpError(http.StatusInternalServerError, "API Error")},
			want:    "API Error",
		},
		{
			name: "orders before categories",
			failing: map[string]error{
				ordersPath:     httpError(http.StatusInternalServerError, "orders down"),
				categoriesPath: httpError(http.StatusInternalServerError, "categories down"),
			},
			want: "orders down",
		},
		{
			name: "categories before statuses",
			failing: map[string]error{
				categoriesPath: httpError(http.StatusInternalServerError, "categories down"),
				statusesPath:   httpError(http.StatusInternalServerError, "statuses down"),
			},
			want: "categories down",
		},
		{
			name:    "statuses fallback",
			failing: map[string]error{statusesPath: &backend.Error{StatusCode: http.StatusBadGateway}},
			want:    "Chyba pri načítaní stavov",
		},
		{
			name:    "orders fallback",
			failing: map[string]error{ordersPath: &backend.Error{StatusCode: http.StatusBadGateway}},
			want:    LoadOrdersFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeBackend{GetFn: func(ctx context.Context, path string, params url.Values) (*backend.Response, error) {
				if err, ok := tc.failing[path]; ok {
					return nil, err
				}
				return orderRoutes(ctx, path, params)
			}}
			list := newOrderList(client)
			if list.Load(context.Background()) {
				t.Fatal("expected load to fail")
			}
			state := list.Snapshot()
			if state.Error != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, state.Error)
			}
			if state.Kind != domainErrors.KindServer {
				t.Fatalf("expected server kind, got %q", state.Kind)
			}
			if state.Loading {
				t.Fatal("loading must be cleared")
			}
		})
	}
}

func TestOrderListApplyFiltersSendsOnlyNonEmpty(t *testing.T) {
	cases := []struct {
		name    string
		filters model.FilterCriteria
		want    url.Values
	}{
		{name: "status", filters: model.FilterCriteria{Status: "1"}, want: url.Values{"status": {"1"}}},
		{name: "category", filters: model.FilterCriteria{Category: "1"}, want: url.Values{"category": {"1"}}},
		{
			name:    "date range",
			filters: model.FilterCriteria{DateFrom: "2024-03-19", DateTo: "2024-03-20"},
			want:    url.Values{"date_from": {"2024-03-19"}, "date_to": {"2024-03-20"}},
		},
		{
			name:    "price range",
			filters: model.FilterCriteria{PriceFrom: "1000", PriceTo: "2000"},
			want:    url.Values{"price_from": {"1000"}, "price_to": {"2000"}},
		},
		{name: "nothing set", filters: model.FilterCriteria{}, want: url.Values{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeBackend{GetFn: orderRoutes}
			list := newOrderList(client)
			list.SetFilters(tc.filters)

			if !list.ApplyFilters(context.Background()) {
				t.Fatal("expected apply to succeed")
			}

			gets := client.Calls("GET")
			if len(gets) != 1 {
				t.Fatalf("expected one request, got %d", len(gets))
			}
			if gets[0].Path != ordersPath {
				t.Fatalf("unexpected path %s", gets[0].Path)
			}
			if gets[0].Params == nil {
				t.Fatal("applied filters must send a params object")
			}
			if !reflect.DeepEqual(gets[0].Params, tc.want) {
				t.Fatalf("expected params %v, got %v", tc.want, gets[0].Params)
			}
			if len(list.Snapshot().Orders) != 2 {
				t.Fatal("expected orders to be replaced with the response")
			}
		})
	}
}

func TestOrderListResetFilters(t *testing.T) {
	client := &fakeBackend{GetFn: orderRoutes}
	list := newOrderList(client)
	list.SetFilters(model.FilterCriteria{
		Status:    "1",
		Category:  "1",
		DateFrom:  "2024-03-19",
		DateTo:    "2024-03-20",
		PriceFrom: "1000",
		PriceTo:   "2000",
	})

	if !list.ResetFilters(context.Background()) {
		t.Fatal("expected reset to succeed")
	}

	if got := list.Snapshot().Filters; got != (model.FilterCriteria{}) {
		t.Fatalf("expected cleared filters, got %+v", got)
	}
	gets := client.Calls("GET")
	if len(gets) != 1 || gets[0].Params != nil {
		t.Fatalf("reset must send no params object, got %+v", gets)
	}
}

func TestOrderListApplyFiltersFailureKeepsOrders(t *testing.T) {
	var fail atomic.Bool
	client := &fakeBackend{GetFn: func(ctx context.Context, path string, params url.Values) (*backend.Response, error) {
		if fail.Load() && path == ordersPath {
			return nil, transportError("Network Error")
		}
		return orderRoutes(ctx, path, params)
	}}
	list := newOrderList(client)
	list.Load(context.Background())

	fail.Store(true)
	list.SetFilters(model.FilterCriteria{Status: "2"})
	if list.ApplyFilters(context.Background()) {
		t.Fatal("expected failure")
	}
	state := list.Snapshot()
	if state.Error != "Network Error" || state.Kind != domainErrors.KindTransport {
		t.Fatalf("unexpected error state %+v", state)
	}
	if len(state.Orders) != 2 {
		t.Fatal("failed filter must keep the previous list")
	}
}

func TestOrderListDropsStaleFilteredResponse(t *testing.T) {
	slowEntered := make(chan struct{})
	releaseSlow := make(chan struct{})
	client := &fakeBackend{GetFn: func(_ context.Context, _ string, params url.Values) (*backend.Response, error) {
		if params.Get("status") == "1" {
			close(slowEntered)
			<-releaseSlow
			return ok(`[{"id":1,"brand":"stale","price":1}]`), nil
		}
		return ok(`[{"id":2,"brand":"fresh","price":2}]`), nil
	}}
	list := newOrderList(client)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		list.SetFilters(model.FilterCriteria{Status: "1"})
		list.ApplyFilters(context.Background())
	}()
	<-slowEntered

	list.SetFilters(model.FilterCriteria{Status: "2"})
	list.ApplyFilters(context.Background())
	close(releaseSlow)
	wg.Wait()

	orders := list.Snapshot().Orders
	if len(orders) != 1 || orders[0].Brand != "fresh" {
		t.Fatalf("expected newest response to win, got %+v", orders)
	}
}

func TestOrderListEmptyResponse(t *testing.T) {
	client := &fakeBackend{GetFn: func(context.Context, string, url.Values) (*backend.Response, error) {
		return ok(`null`), nil
	}}
	list := newOrderList(client)
	list.ResetFilters(context.Background())
	if orders := list.Snapshot().Orders; orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", orders)
	}
}

func TestOrderListMalformedOrdersUseFallback(t *testing.T) {
	client := &fakeBackend{GetFn: func(ctx context.Context, path string, params url.Values) (*backend.Response, error) {
		if path == ordersPath {
			return ok(`{"orders":[]}`), nil
		}
		return orderRoutes(ctx, path, params)
	}}
	list := newOrderList(client)

	if list.Load(context.Background()) {
		t.Fatal("expected load to fail")
	}
	state := list.Snapshot()
	if state.Error != LoadOrdersFailed || state.Kind != domainErrors.KindUnknown {
		t.Fatalf("unexpected error state %+v", state)
	}
}
