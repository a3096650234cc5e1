package store

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	"github.com/polkiloo/orderdesk/internal/config"
)

// Module provides the shared reference stores, tagged by collection name.
var Module = fx.Provide(
	fx.Annotate(newCategoriesStore, fx.ResultTags(`name:"categories"`)),
	fx.Annotate(newStatusesStore, fx.ResultTags(`name:"statuses"`)),
)

func newCategoriesStore(client backend.Client, cfg *config.Config, logger *slog.Logger) *ReferenceStore {
	return NewCategoriesStore(client, cfg.CategoriesPath, logger)
}

func newStatusesStore(client backend.Client, cfg *config.Config, logger *slog.Logger) *ReferenceStore {
	return NewStatusesStore(client, cfg.StatusesPath, logger)
}
