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

// ICustomerRepository is the customer lookup and CRUD store.
type ICustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	FindAll(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, customer *models.Customer, deletedByUserID uint) error
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository() ICustomerRepository {
	return &CustomerRepository{db: configs.GetDB()}
}

func (r *CustomerRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer == nil || customer.Name == "" {
		return errors.New("cannot create a customer without a name")
	}
	return r.getDB(ctx).Create(customer).Error
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	if id == 0 {
		return nil, errors.New("invalid customer id")
	}
	var customer models.Customer
	err := r.getDB(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CustomerRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &customer, nil
}

// FindAll returns every customer ordered by name; the autocomplete cache is
// the whole table.
func (r *CustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.getDB(ctx).Order("name asc").Find(&customers).Error
	if err != nil {
		configslog.Log.Error("CustomerRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	if customer == nil || customer.ID == 0 {
		return errors.New("cannot update a customer without an id")
	}
	return r.getDB(ctx).Save(customer).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, customer *models.Customer, deletedByUserID uint) error {
	if customer == nil || customer.ID == 0 {
		return errors.New("cannot delete a customer without an id")
	}
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}
	result := r.getDB(ctx).Model(customer).Where("id = ? AND deleted_at IS NULL", customer.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("CustomerRepository.Delete: DB error", zap.Uint("id", customer.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ICustomerRepository = (*CustomerRepository)(nil)
