package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"retiree-registry/internal/adapters/http/middleware"
	"retiree-registry/internal/adapters/http/routes"
	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/adapters/persistence/repositories"
	"retiree-registry/internal/config"
	"retiree-registry/internal/core/services"
	"retiree-registry/internal/pkg/logger"
	"retiree-registry/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"

	_ "retiree-registry/docs" // Swagger docs
)

// @title Retiree Registry API
// @version 1.0
// @description Member registry and PDF reports for the retirees' association
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.L.Fatalw("❌ Failed to load configuration", "error", err)
	}

	if err := logger.Init(cfg.IsDev()); err != nil {
		logger.L.Fatalw("❌ Failed to init logger", "error", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.L.Fatalw("❌ Failed to connect to database", "error", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates the members table if missing)
	if err := models.AutoMigrate(db); err != nil {
		logger.L.Fatalw("❌ Failed to auto migrate", "error", err)
	}
	logger.L.Info("✅ Database migration completed")

	reg := metrics.New()
	memberRepo := repositories.NewMemberRepository(db)
	memberService := services.NewMemberService(memberRepo, reg, logger.L)
	reportService := services.NewReportService(memberRepo, reg, logger.L, cfg.Report.FontSize)

	// Demo data replaces the whole table
	if cfg.Seed.DemoData {
		seeder := config.NewSeeder(memberRepo, logger.L)
		if _, err := seeder.Run(context.Background(), cfg.Seed.DemoCount); err != nil {
			logger.L.Warnw("⚠️ Failed to seed demo data", "error", err)
		}
	}

	// Daily birthday report
	if cfg.ReportJobEnabled() {
		cronService := services.NewCronService(reportService, cfg.Report.OutputDir, cfg.Report.Cron, logger.L)
		if err := cronService.Start(); err != nil {
			logger.L.Fatalw("❌ Failed to start report job", "error", err)
		}
		defer cronService.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Retiree Registry API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, routes.Dependencies{
		Config:   cfg,
		Members:  memberService,
		Reports:  reportService,
		Metrics:  reg,
		DBHealth: config.HealthCheck,
	})

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	logger.L.Infow("🚀 Server starting", "port", cfg.Port, "mode", cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.L.Errorw("❌ Failed to start server", "error", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.L.Errorw("❌ Error during shutdown", "error", err)
	}
	logger.L.Info("✅ Server stopped gracefully")
}
