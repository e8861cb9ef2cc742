package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
)

func MigrateCompaniesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating companies table...")
	if err := db.AutoMigrate(&models.Company{}); err != nil {
		configslog.Log.Error("Failed to migrate companies table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Companies table migrated successfully")
	return nil
}
