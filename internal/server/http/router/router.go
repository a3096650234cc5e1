package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
// A nil metrics handler leaves /metrics unrouted.
func Setup(facade handlers.ConsoleFacade, metrics http.Handler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	sessionHandler := handlers.NewSessionHandler(facade, logger)
	ordersHandler := handlers.NewOrdersHandler(facade)
	settingsHandler := handlers.NewSettingsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.GET("/healthz", healthHandler.Check)
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics))
	}

	api := engine.Group("/api")
	session := api.Group("/session")
	session.POST("/login", sessionHandler.Login)
	session.POST("/logout", middleware.AuthRequired(facade), sessionHandler.Logout)

	console := api.Group("/console")
	console.Use(middleware.AuthRequired(facade))
	console.GET("/orders", ordersHandler.List)
	console.POST("/orders", ordersHandler.Create)
	console.POST("/orders/reload", ordersHandler.Reload)
	console.PUT("/orders/filters", ordersHandler.ApplyFilters)
	console.DELETE("/orders/filters", ordersHandler.ResetFilters)
	console.GET("/orders/new", ordersHandler.NewForm)
	console.GET("/settings", settingsHandler.Show)
	console.POST("/settings/categories", settingsHandler.AddCategory)
	console.DELETE("/settings/categories/:id", settingsHandler.DeleteCategory)
	console.POST("/settings/statuses", settingsHandler.AddStatus)
	console.DELETE("/settings/statuses/:id", settingsHandler.DeleteStatus)

	return engine
}
