package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/orderdesk/internal/pkg/requestid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type observerStub struct {
	mu      sync.Mutex
	started int
	codes   []int
}

func (o *observerStub) Started() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started++
}

func (o *observerStub) Observe(_ string, code int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.codes = append(o.codes, code)
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", Options{}, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", Options{}, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	client, err := NewHTTPClient("http://localhost:8008", Options{}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient.Timeout != 0 {
		t.Fatalf("expected no timeout by default, got %v", client.httpClient.Timeout)
	}
}

func TestGetBuildsURLAndHeaders(t *testing.T) {
	cases := []struct {
		name      string
		base      string
		path      string
		params    url.Values
		wantPath  string
		wantQuery string
	}{
		{name: "no params", base: "", path: "/api/orders", params: nil, wantPath: "/api/orders", wantQuery: ""},
		{name: "empty params", base: "", path: "/api/orders", params: url.Values{}, wantPath: "/api/orders", wantQuery: ""},
		{name: "status filter", base: "", path: "/api/orders", params: url.Values{"status": {"1"}}, wantPath: "/api/orders", wantQuery: "status=1"},
		{name: "trailing slash kept", base: "/", path: "/api/vehicle-categories/", wantPath: "/api/vehicle-categories/"},
		{name: "base path prefix", base: "/backend/", path: "/api/statuses", wantPath: "/backend/api/statuses"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath, gotQuery, gotAccept, gotRequestID string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				gotAccept = r.Header.Get("Accept")
				gotRequestID = r.Header.Get(requestid.Header)
				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			client, err := NewHTTPClient(srv.URL+tc.base, Options{}, testLogger())
			if err != nil {
				t.Fatalf("failed to create client: %v", err)
			}
			ctx := requestid.WithID(context.Background(), "req-1")
			resp, err := client.Get(ctx, tc.path, tc.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(resp.Data) != "[]" {
				t.Fatalf("unexpected body %s", resp.Data)
			}
			if gotPath != tc.wantPath {
				t.Fatalf("expected path %q, got %q", tc.wantPath, gotPath)
			}
			if gotQuery != tc.wantQuery {
				t.Fatalf("expected query %q, got %q", tc.wantQuery, gotQuery)
			}
			if gotAccept != "application/json" {
				t.Fatalf("expected json accept header, got %q", gotAccept)
			}
			if gotRequestID != "req-1" {
				t.Fatalf("expected request id to be forwarded, got %q", gotRequestID)
			}
		})
	}
}

func TestPostSendsJSON(t *testing.T) {
	var got map[string]string
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"name":"Bus"}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, Options{}, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	resp, err := client.Post(context.Background(), "/api/vehicle-categories/", map[string]string{"name": "Bus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if got["name"] != "Bus" {
		t.Fatalf("unexpected payload %v", got)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type %q", contentType)
	}
}

func TestErrorResponses(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{name: "detail string", status: http.StatusBadRequest, body: `{"detail":"Cannot delete category that is in use"}`, wantDetail: "Cannot delete category that is in use"},
		{name: "detail list", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"field required"}]}`, wantDetail: ""},
		{name: "plain text", status: http.StatusInternalServerError, body: `boom`, wantDetail: ""},
		{name: "empty", status: http.StatusNotFound, body: ``, wantDetail: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			observer := &observerStub{}
			client, err := NewHTTPClient(srv.URL, Options{Observer: observer}, testLogger())
			if err != nil {
				t.Fatalf("failed to create client: %v", err)
			}
			_, err = client.Delete(context.Background(), "/api/vehicle-categories/1")
			be, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %v", err)
			}
			if be.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, be.StatusCode)
			}
			if be.Detail != tc.wantDetail {
				t.Fatalf("expected detail %q, got %q", tc.wantDetail, be.Detail)
			}
			if be.Error() == "" {
				t.Fatal("expected non-empty message")
			}
			if observer.started != 1 || len(observer.codes) != 1 || observer.codes[0] != tc.status {
				t.Fatalf("unexpected observations %+v", observer)
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	observer := &observerStub{}
	client, err := NewHTTPClient(addr, Options{Observer: observer}, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	_, err = client.Get(context.Background(), "/api/statuses", nil)
	be, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if be.StatusCode != 0 || be.Message == "" || be.Err == nil {
		t.Fatalf("unexpected transport error %+v", be)
	}
	if len(observer.codes) != 1 || observer.codes[0] != 0 {
		t.Fatalf("expected transport failure to be observed with code 0, got %+v", observer.codes)
	}
}

func TestTimeoutIsTransportFailure(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client, err := NewHTTPClient(srv.URL, Options{Timeout: 50 * time.Millisecond}, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	_, err = client.Get(context.Background(), "/api/orders", nil)
	be, ok := AsError(err)
	if !ok || be.StatusCode != 0 {
		t.Fatalf("expected transport error, got %v", err)
	}
	if be.Err == nil || !errors.Is(err, be.Err) {
		t.Fatalf("expected wrapped cause, got %+v", be)
	}
}

func TestRequestLogsFailures(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelWarn {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, Options{}, slog.New(handler))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.Get(context.Background(), "/api/orders", nil); err == nil {
		t.Fatal("expected error from server")
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected warning log to be written")
	}
}
