package routes

import (
	"time"

	"retiree-registry/internal/adapters/http/handlers"
	"retiree-registry/internal/adapters/http/middleware"
	"retiree-registry/internal/config"
	"retiree-registry/internal/core/services"
	"retiree-registry/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the routes are wired to
type Dependencies struct {
	Config   *config.Config
	Members  *services.MemberService
	Reports  *services.ReportService
	Metrics  *metrics.Registry
	DBHealth func() error
}

// Setup configures all routes for the application
func Setup(app *fiber.App, deps Dependencies) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Config.AppMode, deps.DBHealth)
	memberHandler := handlers.NewMemberHandler(deps.Members)
	reportHandler := handlers.NewReportHandler(deps.Reports)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Prometheus exposition
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", middleware.CacheControl(time.Hour), healthHandler.APIInfo)

	auth := middleware.AuthMiddleware(deps.Config.Auth.JWTSecret)

	recordRoutes := apiV1.Group("/records", auth, middleware.NoCacheHeaders())
	setupRecordRoutes(recordRoutes, memberHandler)

	reportRoutes := apiV1.Group("/reports", auth, middleware.NoCacheHeaders())
	setupReportRoutes(reportRoutes, reportHandler)
}

// setupRecordRoutes configures member record routes
func setupRecordRoutes(router fiber.Router, handler *handlers.MemberHandler) {
	router.Get("/", handler.ListMembers)
	router.Get("/search", handler.SearchMembers)
	router.Post("/bulk-delete", middleware.WriteRateLimiter(), handler.BulkDeleteMembers)
	router.Get("/:id", handler.GetMember)
	router.Post("/", handler.CreateMember)
	router.Put("/:id", handler.UpdateMember)
	router.Delete("/:id", handler.DeleteMember)
}

// setupReportRoutes configures PDF report routes
func setupReportRoutes(router fiber.Router, handler *handlers.ReportHandler) {
	router.Get("/", handler.ListReports)
	router.Get("/:kind", handler.GenerateReport)
}
