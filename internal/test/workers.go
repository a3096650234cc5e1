package test

import (
	"context"
	"sync/atomic"
)

// RefreshFacadeStub counts reference refresh requests.
type RefreshFacadeStub struct {
	Err       error
	RefreshFn func(context.Context) error
	calls     atomic.Int32
}

// RefreshReferences records the call and returns the configured result.
func (s *RefreshFacadeStub) RefreshReferences(ctx context.Context) error {
	s.calls.Add(1)
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx)
	}
	return s.Err
}

// Calls returns how many refreshes were requested.
func (s *RefreshFacadeStub) Calls() int {
	return int(s.calls.Load())
}
