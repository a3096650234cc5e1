package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sync"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
)

const (
	categoriesPath = "/api/vehicle-categories/"
	statusesPath   = "/api/statuses"
	ordersPath     = "/api/orders"
)

type recordedCall struct {
	Method string
	Path   string
	Params url.Values
	Body   any
}

// fakeBackend routes calls to per-verb functions and records them.
type fakeBackend struct {
	mu    sync.Mutex
	calls []recordedCall

	GetFn    func(ctx context.Context, path string, params url.Values) (*backend.Response, error)
	PostFn   func(ctx context.Context, path string, body any) (*backend.Response, error)
	DeleteFn func(ctx context.Context, path string) (*backend.Response, error)
}

func (f *fakeBackend) record(c recordedCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeBackend) Get(ctx context.Context, path string, params url.Values) (*backend.Response, error) {
	f.record(recordedCall{Method: "GET", Path: path, Params: params})
	if f.GetFn != nil {
		return f.GetFn(ctx, path, params)
	}
	return nil, fmt.Errorf("unexpected GET %s", path)
}

func (f *fakeBackend) Post(ctx context.Context, path string, body any) (*backend.Response, error) {
	f.record(recordedCall{Method: "POST", Path: path, Body: body})
	if f.PostFn != nil {
		return f.PostFn(ctx, path, body)
	}
	return nil, fmt.Errorf("unexpected POST %s", path)
}

func (f *fakeBackend) Delete(ctx context.Context, path string) (*backend.Response, error) {
	f.record(recordedCall{Method: "DELETE", Path: path})
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, path)
	}
	return nil, fmt.Errorf("unexpected DELETE %s", path)
}

func (f *fakeBackend) Calls(method string) []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func ok(data string) *backend.Response {
	return &backend.Response{StatusCode: 200, Data: json.RawMessage(data)}
}

func httpError(status int, detail string) error {
	return &backend.Error{
		StatusCode: status,
		Detail:     detail,
		Message:    fmt.Sprintf("request failed with status code %d", status),
	}
}

func transportError(msg string) error {
	return &backend.Error{Message: msg, Err: fmt.Errorf("%s", msg)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// referenceRoutes serves the default category and status collections.
func referenceRoutes(path string) (*backend.Response, error) {
	switch path {
	case categoriesPath:
		return ok(`[{"id":1,"name":"LKW"},{"id":2,"name":"PKW"}]`), nil
	case statusesPath:
		return ok(`[{"id":1,"status":"Nové"},{"id":2,"status":"Vybavené"}]`), nil
	}
	return nil, fmt.Errorf("unexpected path %s", path)
}

func payloadOf(t interface{ Fatalf(string, ...any) }, body any) map[string]any {
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return out
}
