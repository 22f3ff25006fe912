package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/model"
)

// CustomerRepository implements persistence.CustomerRepository using GORM
type CustomerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCustomerRepository creates a new CustomerRepository instance
func NewCustomerRepository(db *gorm.DB, logger coreport.Logger) *CustomerRepository {
	return &CustomerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CustomerRepository) entityToModel(customer *entity.Customer) model.Customer {
	return model.Customer{
		ID:          customer.ID,
		FullName:    customer.FullName,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		CreatedAt:   customer.CreatedAt,
	}
}

func (r *CustomerRepository) modelToEntity(m *model.Customer) *entity.Customer {
	return &entity.Customer{
		ID:          m.ID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*entity.Customer, error) {
	var m model.Customer
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// FindByEmail retrieves a customer by the unique email
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var m model.Customer
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// Create persists a new customer and assigns its ID
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	m := r.entityToModel(customer)

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate customer email detected", map[string]any{
				"email": customer.Email,
			})
			return errs.ErrDuplicateEmail
		}
		r.logger.Error("Failed to create customer", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	customer.ID = m.ID
	return nil
}
