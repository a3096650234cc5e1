package requestid

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestNewReturnsUUID(t *testing.T) {
	id := New()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid, got %q: %v", id, err)
	}
	if New() == id {
		t.Fatal("expected distinct identifiers")
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithID(context.Background(), "abc")
	id, ok := FromContext(ctx)
	if !ok || id != "abc" {
		t.Fatalf("expected abc, got %q (%v)", id, ok)
	}

	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("expected no id in empty context")
	}

	if WithID(context.Background(), "") != context.Background() {
		t.Fatal("empty id must not wrap context")
	}
}
