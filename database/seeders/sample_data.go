package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
)

// SeedSampleData loads a handful of customers and engines so the
// autocomplete lookups have something to offer on a fresh install.
func SeedSampleData(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := models.ContextWithUserID(db.Statement.Context, systemUserID)

	customers := []models.Customer{
		{Name: "Harbor Logistics", Email: "ops@harborlogistics.example", Phone: "+1 555 0101",
			Address: "14 Dockside Ave", ContactPerson: "M. Reyes", Equipment: "Standby generator 275 kVA"},
		{Name: "Northfield Dairy", Email: "plant@northfield.example", Phone: "+1 555 0102",
			Address: "2 Creamery Rd", ContactPerson: "A. Okafor", Equipment: "Prime power unit 110 kVA"},
	}
	engines := []models.Engine{
		{Model: "QSB7-G5", SerialNumber: "SN-22140077", Type: "Diesel generator", Manufacturer: "Cummins",
			Power: "200 kVA", RPM: "1500", FuelType: "Diesel", Cylinders: "6", Year: "2019"},
		{Model: "1106A-70TG1", SerialNumber: "SN-88410213", Type: "Diesel generator", Manufacturer: "Perkins",
			Power: "150 kVA", RPM: "1500", FuelType: "Diesel", Cylinders: "6", Year: "2021"},
	}

	configslog.SLog.Info("Seeding sample customers and engines...")

	for _, customer := range customers {
		var existing models.Customer
		result := db.Where("name = ?", customer.Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		if err := db.WithContext(ctx).Create(&customer).Error; err != nil {
			configslog.Log.Error("customer seeding failed", zap.String("name", customer.Name), zap.Error(err))
			return err
		}
	}

	for _, engine := range engines {
		var existing models.Engine
		result := db.Where("serial_number = ?", engine.SerialNumber).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		if err := db.WithContext(ctx).Create(&engine).Error; err != nil {
			configslog.Log.Error("engine seeding failed", zap.String("serial", engine.SerialNumber), zap.Error(err))
			return err
		}
	}

	configslog.SLog.Info("Sample data seeding finished")
	return nil
}
