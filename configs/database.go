package configs

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"powerdesk.app/configs/configslog"
)

var db *gorm.DB

// InitDatabase opens the Postgres connection with fixed pool settings.
// Fatal on failure: nothing in this service works without storage.
func InitDatabase(cfg *AppConfig) *gorm.DB {
	logLevel := gormlogger.Warn
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("database handle unavailable", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	configslog.SLog.Infof("database connected: %s@%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBName)
	db = conn
	return db
}

// GetDB returns the shared connection. InitDatabase must have run first.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.SLog.Fatal("GetDB called before InitDatabase")
	}
	return db
}

// SetDB swaps the shared connection. Used by tests with an sqlite or mock DB.
func SetDB(conn *gorm.DB) { db = conn }
