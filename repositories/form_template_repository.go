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
	"powerdesk.app/pkg/queryparams"
)

// IFormTemplateRepository is the schema store: CRUD over form templates.
type IFormTemplateRepository interface {
	Create(ctx context.Context, tpl *models.FormTemplate) error
	FindByID(ctx context.Context, id uint) (*models.FormTemplate, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.FormTemplate, int64, error)
	FindAll(ctx context.Context) ([]models.FormTemplate, error)
	Update(ctx context.Context, tpl *models.FormTemplate) error
	Delete(ctx context.Context, tpl *models.FormTemplate, deletedByUserID uint) error
	CountAll(ctx context.Context) (int64, error)
}

type FormTemplateRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.FormTemplate]
}

func NewFormTemplateRepository() IFormTemplateRepository {
	return newFormTemplateRepository(configs.GetDB())
}

// NewFormTemplateRepositoryTx binds the repository to an open transaction.
func NewFormTemplateRepositoryTx(tx *gorm.DB) IFormTemplateRepository {
	return newFormTemplateRepository(tx)
}

func newFormTemplateRepository(db *gorm.DB) *FormTemplateRepository {
	base := NewBaseRepository[models.FormTemplate](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "form_type"})
	return &FormTemplateRepository{db: db, base: base}
}

func (r *FormTemplateRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *FormTemplateRepository) Create(ctx context.Context, tpl *models.FormTemplate) error {
	if tpl == nil || tpl.Name == "" {
		return errors.New("cannot create a template without a name")
	}
	return r.getDB(ctx).Create(tpl).Error
}

func (r *FormTemplateRepository) FindByID(ctx context.Context, id uint) (*models.FormTemplate, error) {
	if id == 0 {
		return nil, errors.New("invalid template id")
	}
	var tpl models.FormTemplate
	err := r.getDB(ctx).Preload("Company").First(&tpl, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormTemplateRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &tpl, nil
}

func (r *FormTemplateRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.FormTemplate, int64, error) {
	var templates []models.FormTemplate
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.FormTemplate{})
	if params.Name != "" {
		query = query.Where("name ILIKE ?", "%"+params.Name+"%")
	}
	if params.Status != "" {
		query = query.Where("form_type = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("FormTemplateRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return templates, 0, nil
	}

	query = r.base.ApplyOrder(query, params)
	query = query.Limit(params.PerPage).Offset(params.CalculateOffset())
	if err := query.Preload("Company").Find(&templates).Error; err != nil {
		configslog.Log.Error("FormTemplateRepository.Find: DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return templates, totalCount, nil
}

func (r *FormTemplateRepository) FindAll(ctx context.Context) ([]models.FormTemplate, error) {
	var templates []models.FormTemplate
	err := r.getDB(ctx).Order("created_at desc").Find(&templates).Error
	if err != nil {
		configslog.Log.Error("FormTemplateRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return templates, nil
}

// Update replaces the whole template document; there is no field-level
// persistence.
func (r *FormTemplateRepository) Update(ctx context.Context, tpl *models.FormTemplate) error {
	if tpl == nil || tpl.ID == 0 {
		return errors.New("cannot update a template without an id")
	}
	return r.getDB(ctx).Save(tpl).Error
}

// Delete soft-deletes the template. Submissions keep their captured data
// independent of template survival, so nothing cascades to them.
func (r *FormTemplateRepository) Delete(ctx context.Context, tpl *models.FormTemplate, deletedByUserID uint) error {
	if tpl == nil || tpl.ID == 0 {
		return errors.New("cannot delete a template without an id")
	}
	db := r.getDB(ctx)
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}
	result := db.Model(tpl).Where("id = ? AND deleted_at IS NULL", tpl.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("FormTemplateRepository.Delete: DB error", zap.Uint("id", tpl.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FormTemplateRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.FormTemplate{}).Count(&count).Error
	return count, err
}

var _ IFormTemplateRepository = (*FormTemplateRepository)(nil)
