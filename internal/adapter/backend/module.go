package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/metrics"
)

// Module exposes the backend client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.BackendMetrics `optional:"true"`
}

func newClient(p clientParams) (Client, error) {
	opts := Options{Timeout: p.Config.RequestTimeout}
	if p.Metrics != nil {
		opts.Observer = p.Metrics
	}
	return NewHTTPClient(p.Config.APIURL, opts, p.Logger)
}
