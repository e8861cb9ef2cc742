package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
)

// SeedCompanies creates the default owning company when missing. Idempotent:
// existing rows are left alone.
func SeedCompanies(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := models.ContextWithUserID(db.Statement.Context, systemUserID)

	companiesToSeed := []models.Company{
		{Name: "PowerDesk Service", Email: "service@powerdesk.app"},
	}

	var createdCount int64
	configslog.SLog.Info("Seeding companies...")

	for _, company := range companiesToSeed {
		var existing models.Company
		result := db.Where("name = ?", company.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("company %q already present, skipping", company.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("company lookup failed during seeding",
				zap.String("name", company.Name), zap.Error(result.Error))
			return result.Error
		}

		if err := db.WithContext(ctx).Create(&company).Error; err != nil {
			configslog.Log.Error("company seeding failed",
				zap.String("name", company.Name), zap.Error(err))
			return err
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d company rows seeded", createdCount)
	} else {
		configslog.SLog.Info("all companies already present, nothing seeded")
	}
	return nil
}
