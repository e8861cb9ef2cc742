package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
)

func MigrateFormsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating form_templates & form_records tables...")
	if err := db.AutoMigrate(&models.FormTemplate{}, &models.FormRecord{}); err != nil {
		configslog.Log.Error("Failed to migrate form_templates & form_records tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Form tables migrated successfully")
	return nil
}
