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

// PaymentRepository implements persistence.PaymentRepository using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PaymentRepository) entityToModel(pay *entity.Payment) model.Payment {
	return model.Payment{
		ID:            pay.ID,
		TransactionID: pay.TransactionID,
		Method:        pay.Method,
		Status:        string(pay.Status),
		ReferenceID:   pay.ReferenceID,
		ProcessedAt:   pay.ProcessedAt,
	}
}

func (r *PaymentRepository) modelToEntity(m *model.Payment) *entity.Payment {
	return &entity.Payment{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Method:        m.Method,
		Status:        entity.PaymentStatus(m.Status),
		ReferenceID:   m.ReferenceID,
		ProcessedAt:   m.ProcessedAt,
	}
}

// Create persists a new payment. The unique transaction_id index turns a
// concurrent second payment for the same transaction into ErrDuplicatePayment.
func (r *PaymentRepository) Create(ctx context.Context, pay *entity.Payment) error {
	m := r.entityToModel(pay)

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate payment detected", map[string]any{
				"transaction_id": pay.TransactionID,
			})
			return errs.ErrDuplicatePayment
		}
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			return errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to create payment", map[string]any{
			"transaction_id": pay.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	pay.ID = m.ID
	return nil
}

// Update persists status, reference and processing time changes
func (r *PaymentRepository) Update(ctx context.Context, pay *entity.Payment) error {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", pay.ID).
		Updates(map[string]interface{}{
			"status":       string(pay.Status),
			"reference_id": pay.ReferenceID,
			"processed_at": pay.ProcessedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update payment", map[string]any{
			"payment_id": pay.ID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}
	return nil
}

// GetByID retrieves a payment by its ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uint64) (*entity.Payment, error) {
	var m model.Payment
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// GetByTransactionID retrieves the payment linked to a transaction
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.Payment, error) {
	var m model.Payment
	result := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}
