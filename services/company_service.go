package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
	"powerdesk.app/repositories"
)

// CompanyServiceError is the company service failure taxonomy.
type CompanyServiceError string

func (e CompanyServiceError) Error() string { return string(e) }

const (
	ErrCompanyNotFound     CompanyServiceError = "company not found"
	ErrCompanyWriteFailed  CompanyServiceError = "company could not be saved"
	ErrCompanyNameRequired CompanyServiceError = "company name is required"
	ErrCmpInvalidInput     CompanyServiceError = "invalid company input"
)

// ICompanyService is plain CRUD over owning companies.
type ICompanyService interface {
	CreateCompany(ctx context.Context, userID uint, company models.Company) (*models.Company, error)
	GetCompanyByID(ctx context.Context, id uint) (*models.Company, error)
	GetAllCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, id uint, userID uint, company models.Company) error
	DeleteCompany(ctx context.Context, id uint, userID uint) error
}

type CompanyService struct {
	repo repositories.ICompanyRepository
}

func NewCompanyService() ICompanyService {
	return &CompanyService{repo: repositories.NewCompanyRepository()}
}

func (s *CompanyService) CreateCompany(ctx context.Context, userID uint, company models.Company) (*models.Company, error) {
	if company.Name == "" {
		return nil, ErrCompanyNameRequired
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(txCtx, &company); err != nil {
		configslog.Log.Error("CreateCompany failed", zap.String("name", company.Name), zap.Error(err))
		return nil, ErrCompanyWriteFailed
	}
	return &company, nil
}

func (s *CompanyService) GetCompanyByID(ctx context.Context, id uint) (*models.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	return s.repo.FindAll(ctx)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uint, userID uint, company models.Company) error {
	if id == 0 {
		return fmt.Errorf("%w: missing company id", ErrCmpInvalidInput)
	}
	if company.Name == "" {
		return ErrCompanyNameRequired
	}
	existing, err := s.GetCompanyByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Name = company.Name
	existing.Email = company.Email
	existing.Phone = company.Phone
	existing.Address = company.Address

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(txCtx, existing); err != nil {
		configslog.Log.Error("UpdateCompany failed", zap.Uint("id", id), zap.Error(err))
		return ErrCompanyWriteFailed
	}
	return nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uint, userID uint) error {
	existing, err := s.GetCompanyByID(ctx, id)
	if err != nil {
		return err
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(txCtx, existing, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCompanyNotFound
		}
		configslog.Log.Error("DeleteCompany failed", zap.Uint("id", id), zap.Error(err))
		return ErrCompanyWriteFailed
	}
	return nil
}

var _ ICompanyService = (*CompanyService)(nil)
