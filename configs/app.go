package configs

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"powerdesk.app/configs/configslog"
)

// AppConfig holds the process-level settings read from the environment.
type AppConfig struct {
	AppPort           string
	AppEnv            string // "development" | "production"
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	ReportTemplateDir string
	BrowserBin        string // optional chromium binary for PDF rendering
}

var appConfig *AppConfig

// LoadConfig reads .env (if present) and the environment, initializes the
// logger, and caches the config for GetConfig. DB settings are mandatory.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load() // .env is optional; real env always wins

	cfg := &AppConfig{
		AppPort:           getEnv("APP_PORT", "3000"),
		AppEnv:            getEnv("APP_ENV", "development"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		ReportTemplateDir: getEnv("REPORT_TEMPLATE_DIR", "./reports/templates"),
		BrowserBin:        os.Getenv("BROWSER_BIN"),
	}

	configslog.InitLogger(cfg.AppEnv)

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("missing database configuration (DB_HOST, DB_USER, DB_NAME are required)")
	}

	appConfig = cfg
	return cfg, nil
}

// GetConfig returns the cached config. LoadConfig must have run first.
func GetConfig() *AppConfig {
	if appConfig == nil {
		configslog.SLog.Fatal("GetConfig called before LoadConfig")
	}
	return appConfig
}

// DSN builds the Postgres connection string.
func (c *AppConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
