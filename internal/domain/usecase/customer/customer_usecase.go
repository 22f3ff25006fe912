package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/domain/port/persistence"
	portuse "github.com/jaykakkad82/mypayments/internal/domain/port/usecase"
)

// Service implements customer record management.
// Creation is an idempotent-by-email upsert: posting the same email twice
// returns the stored customer instead of a duplicate.
type Service struct {
	customerRepo persistence.CustomerRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo persistence.CustomerRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create upserts a customer by email
func (s *Service) Create(ctx context.Context, input portuse.CreateCustomerInput) (*entity.Customer, bool, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		s.logger.Debug("Customer email already registered, returning existing record", map[string]any{
			"customer_id": existing.ID,
		})
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrCustomerNotFound) {
		return nil, false, fmt.Errorf("failed to look up customer by email: %w", err)
	}

	customer, err := entity.NewCustomer(input.FullName, input.Email, input.PhoneNumber, s.timeProvider)
	if err != nil {
		return nil, false, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		// A concurrent create with the same email won the race; return theirs.
		if errors.Is(err, errs.ErrDuplicateEmail) {
			winner, lookupErr := s.customerRepo.FindByEmail(ctx, input.Email)
			if lookupErr == nil {
				return winner, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("Customer created", map[string]any{
		"customer_id": customer.ID,
	})
	return customer, true, nil
}

// Get returns the customer or nil when absent
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrCustomerNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

// MustGet returns the customer or ErrCustomerNotFound when absent.
// Used by collaborators that require the customer to exist.
func (s *Service) MustGet(ctx context.Context, id uint64) (*entity.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}
