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

// IFormRecordRepository is the submission store. Listing returns the whole
// set for a template; search/date filtering happens in the service over the
// decoded data blobs, which SQL cannot match row-by-row.
type IFormRecordRepository interface {
	Create(ctx context.Context, rec *models.FormRecord) error
	FindByID(ctx context.Context, id uint) (*models.FormRecord, error)
	FindAllByTemplateID(ctx context.Context, templateID uint) ([]models.FormRecord, error)
	Update(ctx context.Context, rec *models.FormRecord) error
	Delete(ctx context.Context, rec *models.FormRecord, deletedByUserID uint) error
	CountByTemplateID(ctx context.Context, templateID uint) (int64, error)
}

type FormRecordRepository struct {
	db *gorm.DB
}

func NewFormRecordRepository() IFormRecordRepository {
	return &FormRecordRepository{db: configs.GetDB()}
}

// NewFormRecordRepositoryTx binds the repository to an open transaction.
func NewFormRecordRepositoryTx(tx *gorm.DB) IFormRecordRepository {
	return &FormRecordRepository{db: tx}
}

func (r *FormRecordRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *FormRecordRepository) Create(ctx context.Context, rec *models.FormRecord) error {
	if rec == nil || rec.CompanyFormID == 0 {
		return errors.New("cannot create a record without its template reference")
	}
	return r.getDB(ctx).Create(rec).Error
}

func (r *FormRecordRepository) FindByID(ctx context.Context, id uint) (*models.FormRecord, error) {
	if id == 0 {
		return nil, errors.New("invalid record id")
	}
	var rec models.FormRecord
	err := r.getDB(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRecordRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &rec, nil
}

func (r *FormRecordRepository) FindAllByTemplateID(ctx context.Context, templateID uint) ([]models.FormRecord, error) {
	if templateID == 0 {
		return nil, errors.New("invalid template id")
	}
	var records []models.FormRecord
	err := r.getDB(ctx).Where("company_form_id = ?", templateID).Order("created_at desc").Find(&records).Error
	if err != nil {
		configslog.Log.Error("FormRecordRepository.FindAllByTemplateID: DB error", zap.Uint("templateID", templateID), zap.Error(err))
		return nil, err
	}
	return records, nil
}

// Update replaces the record's data blob and job order wholesale.
func (r *FormRecordRepository) Update(ctx context.Context, rec *models.FormRecord) error {
	if rec == nil || rec.ID == 0 {
		return errors.New("cannot update a record without an id")
	}
	return r.getDB(ctx).Save(rec).Error
}

func (r *FormRecordRepository) Delete(ctx context.Context, rec *models.FormRecord, deletedByUserID uint) error {
	if rec == nil || rec.ID == 0 {
		return errors.New("cannot delete a record without an id")
	}
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}
	result := r.getDB(ctx).Model(rec).Where("id = ? AND deleted_at IS NULL", rec.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("FormRecordRepository.Delete: DB error", zap.Uint("id", rec.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FormRecordRepository) CountByTemplateID(ctx context.Context, templateID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.FormRecord{}).Where("company_form_id = ?", templateID).Count(&count).Error
	return count, err
}

var _ IFormRecordRepository = (*FormRecordRepository)(nil)
