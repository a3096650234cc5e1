package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/store"
	"github.com/polkiloo/orderdesk/internal/usecase"
	"github.com/polkiloo/orderdesk/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newWorkspaces,
		newConsoleFacade,
		newHTTPServer,
		newReferenceRefresher,
	),
	fx.Invoke(registerLifecycle),
)

type workspacesParams struct {
	fx.In

	Client     backend.Client
	Config     *config.Config
	Categories *store.ReferenceStore `name:"categories"`
	Statuses   *store.ReferenceStore `name:"statuses"`
	Logger     *slog.Logger
}

func newWorkspaces(p workspacesParams) *Workspaces {
	return NewWorkspaces(p.Client, p.Config.OrdersPath, p.Categories, p.Statuses, p.Logger)
}

type facadeParams struct {
	fx.In

	Staff      *usecase.StaffUseCase
	Workspaces *Workspaces
	Client     backend.Client
	Config     *config.Config
}

func newConsoleFacade(p facadeParams) *ConsoleFacade {
	return NewConsoleFacade(p.Staff, p.Workspaces, p.Client, p.Config.HealthPath)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *ConsoleFacade
	Config *config.Config
	Logger *slog.Logger
}

func newReferenceRefresher(p workerParams) *worker.ReferenceRefresher {
	return worker.NewReferenceRefresher(p.Facade, p.Config.RefreshInterval, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.ReferenceRefresher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting orderdesk",
				slog.String("addr", p.Server.Addr),
				slog.String("backend", p.Config.APIURL),
			)
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("orderdesk stopped")
			return nil
		},
	})
}
