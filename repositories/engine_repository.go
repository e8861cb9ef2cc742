package repositories

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"powerdesk.app/configs"
	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
)

// IEngineRepository is the engine-unit lookup and CRUD store.
type IEngineRepository interface {
	Create(ctx context.Context, engine *models.Engine) error
	FindByID(ctx context.Context, id uint) (*models.Engine, error)
	FindAll(ctx context.Context) ([]models.Engine, error)
	FindAllByCustomerID(ctx context.Context, customerID uint) ([]models.Engine, error)
	Update(ctx context.Context, engine *models.Engine) error
	Delete(ctx context.Context, engine *models.Engine, deletedByUserID uint) error
}

type EngineRepository struct {
	db *gorm.DB
}

func NewEngineRepository() IEngineRepository {
	return &EngineRepository{db: configs.GetDB()}
}

func (r *EngineRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *EngineRepository) Create(ctx context.Context, engine *models.Engine) error {
	if engine == nil || engine.Model == "" {
		return errors.New("cannot create an engine without a model")
	}
	return r.getDB(ctx).Create(engine).Error
}

func (r *EngineRepository) FindByID(ctx context.Context, id uint) (*models.Engine, error) {
	if id == 0 {
		return nil, errors.New("invalid engine id")
	}
	var engine models.Engine
	err := r.getDB(ctx).First(&engine, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EngineRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &engine, nil
}

func (r *EngineRepository) FindAll(ctx context.Context) ([]models.Engine, error) {
	var engines []models.Engine
	err := r.getDB(ctx).Order("model asc").Find(&engines).Error
	if err != nil {
		configslog.Log.Error("EngineRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return engines, nil
}

func (r *EngineRepository) FindAllByCustomerID(ctx context.Context, customerID uint) ([]models.Engine, error) {
	if customerID == 0 {
		return nil, errors.New("invalid customer id")
	}
	var engines []models.Engine
	err := r.getDB(ctx).Where("customer_id = ?", customerID).Order("model asc").Find(&engines).Error
	if err != nil {
		configslog.Log.Error("EngineRepository.FindAllByCustomerID: DB error", zap.Uint("customerID", customerID), zap.Error(err))
		return nil, err
	}
	return engines, nil
}

func (r *EngineRepository) Update(ctx context.Context, engine *models.Engine) error {
	if engine == nil || engine.ID == 0 {
		return errors.New("cannot update an engine without an id")
	}
	return r.getDB(ctx).Save(engine).Error
}

func (r *EngineRepository) Delete(ctx context.Context, engine *models.Engine, deletedByUserID uint) error {
	if engine == nil || engine.ID == 0 {
		return errors.New("cannot delete an engine without an id")
	}
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}
	result := r.getDB(ctx).Model(engine).Where("id = ? AND deleted_at IS NULL", engine.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("EngineRepository.Delete: DB error", zap.Uint("id", engine.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IEngineRepository = (*EngineRepository)(nil)
