package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
)

func MigrateEnginesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating engines table...")
	if err := db.AutoMigrate(&models.Engine{}); err != nil {
		configslog.Log.Error("Failed to migrate engines table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Engines table migrated successfully")
	return nil
}
