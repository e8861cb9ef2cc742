package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/pkg/queryparams"
	"powerdesk.app/repositories"
)

// TemplateServiceError is the template service failure taxonomy.
type TemplateServiceError string

func (e TemplateServiceError) Error() string { return string(e) }

const (
	ErrTemplateNotFound       TemplateServiceError = "form template not found"
	ErrTemplateCreationFailed TemplateServiceError = "form template could not be created"
	ErrTemplateUpdateFailed   TemplateServiceError = "form template could not be updated"
	ErrTemplateDeletionFailed TemplateServiceError = "form template could not be deleted"
	ErrTplInvalidInput        TemplateServiceError = "invalid template input"
	ErrTplCompanyNotFound     TemplateServiceError = "referenced company not found"
)

// IFormTemplateService manages the dynamic form templates (the schema
// store's business rules).
type IFormTemplateService interface {
	CreateTemplate(ctx context.Context, userID uint, tpl formschema.Template) (*models.FormTemplate, error)
	GetTemplateByID(ctx context.Context, id uint) (*models.FormTemplate, error)
	GetTemplateSchema(ctx context.Context, id uint) (formschema.Template, error)
	GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetRenderPlan(ctx context.Context, id uint) (formschema.RenderPlan, error)
	UpdateTemplate(ctx context.Context, id uint, userID uint, tpl formschema.Template) error
	DeleteTemplate(ctx context.Context, id uint, userID uint) error
	GetTemplateCount(ctx context.Context) (int64, error)
}

type FormTemplateService struct {
	repo        repositories.IFormTemplateRepository
	companyRepo repositories.ICompanyRepository
}

func NewFormTemplateService() IFormTemplateService {
	return &FormTemplateService{
		repo:        repositories.NewFormTemplateRepository(),
		companyRepo: repositories.NewCompanyRepository(),
	}
}

// validateTemplate runs the schema invariants plus the company reference
// check. Everything here fails before any write happens.
func (s *FormTemplateService) validateTemplate(ctx context.Context, tpl formschema.Template) error {
	if err := formschema.ValidateTemplate(tpl); err != nil {
		return fmt.Errorf("%w: %v", ErrTplInvalidInput, err)
	}
	if tpl.CompanyID != nil {
		if _, err := s.companyRepo.FindByID(ctx, *tpl.CompanyID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrTplCompanyNotFound
			}
			return err
		}
	}
	return nil
}

// CreateTemplate persists a new template as one document.
func (s *FormTemplateService) CreateTemplate(ctx context.Context, userID uint, tpl formschema.Template) (*models.FormTemplate, error) {
	if err := s.validateTemplate(ctx, tpl); err != nil {
		return nil, err
	}

	var record models.FormTemplate
	if err := record.SetSchema(tpl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTplInvalidInput, err)
	}

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(txCtx, &record); err != nil {
		configslog.Log.Error("CreateTemplate failed", zap.String("name", tpl.Name), zap.Error(err))
		return nil, ErrTemplateCreationFailed
	}
	configslog.SLog.Infof("form template created: id=%d name=%q type=%q", record.ID, record.Name, record.FormType)
	return &record, nil
}

func (s *FormTemplateService) GetTemplateByID(ctx context.Context, id uint) (*models.FormTemplate, error) {
	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return tpl, nil
}

// GetTemplateSchema loads and decodes a template for the form engine.
func (s *FormTemplateService) GetTemplateSchema(ctx context.Context, id uint) (formschema.Template, error) {
	record, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return formschema.Template{}, err
	}
	tpl, err := record.Schema()
	if err != nil {
		configslog.Log.Error("template schema decode failed", zap.Uint("id", id), zap.Error(err))
		return formschema.Template{}, fmt.Errorf("%w: stored schema is corrupt", ErrTemplateNotFound)
	}
	return tpl, nil
}

func (s *FormTemplateService) GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	templates, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: templates,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetRenderPlan derives the input surface for a stored template.
func (s *FormTemplateService) GetRenderPlan(ctx context.Context, id uint) (formschema.RenderPlan, error) {
	tpl, err := s.GetTemplateSchema(ctx, id)
	if err != nil {
		return formschema.RenderPlan{}, err
	}
	return formschema.BuildRenderPlan(tpl), nil
}

// UpdateTemplate is a full-document replace. Concurrent editors are
// last-save-wins; there is no version token.
func (s *FormTemplateService) UpdateTemplate(ctx context.Context, id uint, userID uint, tpl formschema.Template) error {
	if id == 0 {
		return fmt.Errorf("%w: missing template id", ErrTplInvalidInput)
	}
	if err := s.validateTemplate(ctx, tpl); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	if err := existing.SetSchema(tpl); err != nil {
		return fmt.Errorf("%w: %v", ErrTplInvalidInput, err)
	}

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(txCtx, existing); err != nil {
		configslog.Log.Error("UpdateTemplate failed", zap.Uint("id", id), zap.Error(err))
		return ErrTemplateUpdateFailed
	}
	configslog.SLog.Infof("form template updated: id=%d name=%q (by user %d)", id, tpl.Name, userID)
	return nil
}

// DeleteTemplate removes the template. Existing submissions keep their
// captured data; they are orphaned, not cascaded.
func (s *FormTemplateService) DeleteTemplate(ctx context.Context, id uint, userID uint) error {
	if id == 0 {
		return fmt.Errorf("%w: missing template id", ErrTplInvalidInput)
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(txCtx, existing, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		configslog.Log.Error("DeleteTemplate failed", zap.Uint("id", id), zap.Error(err))
		return ErrTemplateDeletionFailed
	}
	configslog.SLog.Infof("form template deleted: id=%d (by user %d)", id, userID)
	return nil
}

func (s *FormTemplateService) GetTemplateCount(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

var _ IFormTemplateService = (*FormTemplateService)(nil)

// newFormTemplateServiceWith is the test seam: inject fake repositories.
func newFormTemplateServiceWith(repo repositories.IFormTemplateRepository, companyRepo repositories.ICompanyRepository) *FormTemplateService {
	return &FormTemplateService{repo: repo, companyRepo: companyRepo}
}
