package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultRefreshInterval = time.Minute

// ReferenceFacade exposes the subset of application functionality required by the refresher.
type ReferenceFacade interface {
	RefreshReferences(ctx context.Context) error
}

// ReferenceRefresher periodically resynchronizes the shared category and status mappings
// so that sessions which never open the settings page still see labels added elsewhere.
type ReferenceRefresher struct {
	facade   ReferenceFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReferenceRefresher constructs the refresher.
func NewReferenceRefresher(facade ReferenceFacade, interval time.Duration, logger *slog.Logger) *ReferenceRefresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &ReferenceRefresher{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the refresh loop. Calling Start on a running refresher is a no-op.
func (r *ReferenceRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop cancels the loop and waits for an in-flight refresh to finish.
func (r *ReferenceRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *ReferenceRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *ReferenceRefresher) refresh(ctx context.Context) {
	if err := r.facade.RefreshReferences(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Warn("reference refresh failed", slog.String("error", err.Error()))
		return
	}
	r.logger.Debug("reference data refreshed")
}
