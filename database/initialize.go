package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/database/migrations"
	"powerdesk.app/database/seeders"
)

// Initialize runs migrations and/or seeders inside one transaction, so a
// half-applied setup never survives.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("neither -migrate nor -seed given, nothing to do")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("could not start database transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("database initialization panicked", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("migration failed, rolling back", zap.Error(err))
			tx.Rollback()
			return
		}
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("seeding failed, rolling back", zap.Error(err))
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("commit failed", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database initialization finished successfully")
}

// RunMigrationsInOrder migrates every table group, referenced tables first.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateCompaniesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateCustomersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateEnginesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateFormsTables(db); err != nil {
		return err
	}
	return nil
}

// RunSeeders loads the default and sample rows.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedCompanies(db); err != nil {
		return err
	}
	if err := seeders.SeedSampleData(db); err != nil {
		return err
	}
	return nil
}
