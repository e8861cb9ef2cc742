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

// EngineServiceError is the engine service failure taxonomy.
type EngineServiceError string

func (e EngineServiceError) Error() string { return string(e) }

const (
	ErrEngineNotFound      EngineServiceError = "engine not found"
	ErrEngineWriteFailed   EngineServiceError = "engine could not be saved"
	ErrEngineModelRequired EngineServiceError = "engine model is required"
	ErrEngInvalidInput     EngineServiceError = "invalid engine input"
)

// IEngineService is plain CRUD over engine units.
type IEngineService interface {
	CreateEngine(ctx context.Context, userID uint, engine models.Engine) (*models.Engine, error)
	GetEngineByID(ctx context.Context, id uint) (*models.Engine, error)
	GetAllEngines(ctx context.Context) ([]models.Engine, error)
	GetEnginesForCustomer(ctx context.Context, customerID uint) ([]models.Engine, error)
	UpdateEngine(ctx context.Context, id uint, userID uint, engine models.Engine) error
	DeleteEngine(ctx context.Context, id uint, userID uint) error
}

type EngineService struct {
	repo repositories.IEngineRepository
}

func NewEngineService() IEngineService {
	return &EngineService{repo: repositories.NewEngineRepository()}
}

func (s *EngineService) CreateEngine(ctx context.Context, userID uint, engine models.Engine) (*models.Engine, error) {
	if engine.Model == "" {
		return nil, ErrEngineModelRequired
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(txCtx, &engine); err != nil {
		configslog.Log.Error("CreateEngine failed", zap.String("model", engine.Model), zap.Error(err))
		return nil, ErrEngineWriteFailed
	}
	return &engine, nil
}

func (s *EngineService) GetEngineByID(ctx context.Context, id uint) (*models.Engine, error) {
	engine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEngineNotFound
		}
		return nil, err
	}
	return engine, nil
}

func (s *EngineService) GetAllEngines(ctx context.Context) ([]models.Engine, error) {
	return s.repo.FindAll(ctx)
}

func (s *EngineService) GetEnginesForCustomer(ctx context.Context, customerID uint) ([]models.Engine, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("%w: missing customer id", ErrEngInvalidInput)
	}
	return s.repo.FindAllByCustomerID(ctx, customerID)
}

func (s *EngineService) UpdateEngine(ctx context.Context, id uint, userID uint, engine models.Engine) error {
	if id == 0 {
		return fmt.Errorf("%w: missing engine id", ErrEngInvalidInput)
	}
	if engine.Model == "" {
		return ErrEngineModelRequired
	}
	existing, err := s.GetEngineByID(ctx, id)
	if err != nil {
		return err
	}

	base := existing.BaseModel
	*existing = engine
	existing.BaseModel = base

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(txCtx, existing); err != nil {
		configslog.Log.Error("UpdateEngine failed", zap.Uint("id", id), zap.Error(err))
		return ErrEngineWriteFailed
	}
	return nil
}

func (s *EngineService) DeleteEngine(ctx context.Context, id uint, userID uint) error {
	existing, err := s.GetEngineByID(ctx, id)
	if err != nil {
		return err
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(txCtx, existing, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEngineNotFound
		}
		configslog.Log.Error("DeleteEngine failed", zap.Uint("id", id), zap.Error(err))
		return ErrEngineWriteFailed
	}
	return nil
}

var _ IEngineService = (*EngineService)(nil)
