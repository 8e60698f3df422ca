package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"retiree-registry/internal/pkg/logger"

	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Auth     AuthConfig
	Seed     SeedConfig
	Report   ReportConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

// AuthConfig holds the bearer token verification settings.
// An empty secret disables authentication.
type AuthConfig struct {
	JWTSecret string
}

// SeedConfig controls the demo data seeder
type SeedConfig struct {
	DemoData  bool
	DemoCount int
}

// ReportConfig controls report rendering and the scheduled birthday report
type ReportConfig struct {
	Cron      string
	OutputDir string
	FontSize  float64
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		logger.L.Info(".env file not found, using environment variables")
	}

	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}

	report, err := loadReportConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: database,
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
		},
		Seed: SeedConfig{
			DemoData:  getEnvBool("SEED_DEMO_DATA", false),
			DemoCount: getEnvInt("SEED_DEMO_COUNT", 100),
		},
		Report: report,
	}

	// Set global config
	AppConfig = config

	logger.L.Infow("✅ Configuration loaded", "mode", appMode, "driver", database.Driver)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", DriverMySQL)))
	defaultPort := "3306"
	switch driver {
	case DriverMySQL:
	case DriverPostgres:
		defaultPort = "5432"
	case DriverSQLite:
		defaultPort = ""
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be mysql, postgres or sqlite)", driver)
	}

	return DatabaseConfig{
		Driver:     driver,
		Host:       getEnv(prefix+"DB_HOST", "localhost"),
		Port:       getEnv(prefix+"DB_PORT", defaultPort),
		User:       getEnv(prefix+"DB_USER", "root"),
		Password:   getEnv(prefix+"DB_PASS", ""),
		DBName:     getEnv(prefix+"DB_NAME", "retiree_registry"),
		SQLitePath: getEnv("SQLITE_PATH", "registry.db"),
	}, nil
}

func loadReportConfig() (ReportConfig, error) {
	fontSize, err := strconv.ParseFloat(getEnv("REPORT_FONT_SIZE", "12"), 64)
	if err != nil || fontSize <= 0 {
		return ReportConfig{}, fmt.Errorf("invalid REPORT_FONT_SIZE: '%s'", os.Getenv("REPORT_FONT_SIZE"))
	}

	return ReportConfig{
		Cron:      getEnv("REPORT_CRON", "0 8 * * *"),
		OutputDir: getEnv("REPORT_OUTPUT_DIR", ""),
		FontSize:  fontSize,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// AuthEnabled reports whether bearer tokens are required on the API
func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}

// ReportJobEnabled reports whether the scheduled birthday report should run
func (c *Config) ReportJobEnabled() bool {
	return c.Report.OutputDir != "" && c.Report.Cron != ""
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return origins
}
