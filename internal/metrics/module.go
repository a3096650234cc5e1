package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Module provides backend collectors and the scrape handler.
var Module = fx.Provide(
	NewBackendMetrics,
	fx.Annotate(Handler, fx.ResultTags(`name:"metrics"`)),
)

// Handler exposes the default gatherer in the prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
