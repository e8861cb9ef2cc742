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

// CustomerServiceError is the customer service failure taxonomy.
type CustomerServiceError string

func (e CustomerServiceError) Error() string { return string(e) }

const (
	ErrCustomerNotFound     CustomerServiceError = "customer not found"
	ErrCustomerWriteFailed  CustomerServiceError = "customer could not be saved"
	ErrCustomerNameRequired CustomerServiceError = "customer name is required"
	ErrCstInvalidInput      CustomerServiceError = "invalid customer input"
)

// ICustomerService is plain CRUD over customer records.
type ICustomerService interface {
	CreateCustomer(ctx context.Context, userID uint, customer models.Customer) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error)
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, userID uint, customer models.Customer) error
	DeleteCustomer(ctx context.Context, id uint, userID uint) error
}

type CustomerService struct {
	repo repositories.ICustomerRepository
}

func NewCustomerService() ICustomerService {
	return &CustomerService{repo: repositories.NewCustomerRepository()}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, userID uint, customer models.Customer) (*models.Customer, error) {
	if customer.Name == "" {
		return nil, ErrCustomerNameRequired
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(txCtx, &customer); err != nil {
		configslog.Log.Error("CreateCustomer failed", zap.String("name", customer.Name), zap.Error(err))
		return nil, ErrCustomerWriteFailed
	}
	return &customer, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, userID uint, customer models.Customer) error {
	if id == 0 {
		return fmt.Errorf("%w: missing customer id", ErrCstInvalidInput)
	}
	if customer.Name == "" {
		return ErrCustomerNameRequired
	}
	existing, err := s.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Name = customer.Name
	existing.Email = customer.Email
	existing.Phone = customer.Phone
	existing.Address = customer.Address
	existing.ContactPerson = customer.ContactPerson
	existing.Equipment = customer.Equipment
	existing.CompanyID = customer.CompanyID

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(txCtx, existing); err != nil {
		configslog.Log.Error("UpdateCustomer failed", zap.Uint("id", id), zap.Error(err))
		return ErrCustomerWriteFailed
	}
	return nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint, userID uint) error {
	existing, err := s.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(txCtx, existing, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		configslog.Log.Error("DeleteCustomer failed", zap.Uint("id", id), zap.Error(err))
		return ErrCustomerWriteFailed
	}
	return nil
}

var _ ICustomerService = (*CustomerService)(nil)
