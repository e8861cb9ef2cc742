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

// ICompanyRepository is the owning-company store.
type ICompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id uint) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, company *models.Company, deletedByUserID uint) error
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository() ICompanyRepository {
	return &CompanyRepository{db: configs.GetDB()}
}

func (r *CompanyRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if company == nil || company.Name == "" {
		return errors.New("cannot create a company without a name")
	}
	return r.getDB(ctx).Create(company).Error
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	if id == 0 {
		return nil, errors.New("invalid company id")
	}
	var company models.Company
	err := r.getDB(ctx).First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CompanyRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := r.getDB(ctx).Order("name asc").Find(&companies).Error
	if err != nil {
		configslog.Log.Error("CompanyRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	if company == nil || company.ID == 0 {
		return errors.New("cannot update a company without an id")
	}
	return r.getDB(ctx).Save(company).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, company *models.Company, deletedByUserID uint) error {
	if company == nil || company.ID == 0 {
		return errors.New("cannot delete a company without an id")
	}
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}
	result := r.getDB(ctx).Model(company).Where("id = ? AND deleted_at IS NULL", company.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("CompanyRepository.Delete: DB error", zap.Uint("id", company.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ICompanyRepository = (*CompanyRepository)(nil)
