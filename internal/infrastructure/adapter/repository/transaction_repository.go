package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/domain/port/persistence"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:          txn.ID,
		CustomerID:  txn.CustomerID,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		Category:    txn.Category,
		Status:      string(txn.Status),
		CreatedAt:   txn.CreatedAt,
		Description: txn.Description,
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Category:    m.Category,
		Status:      entity.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		Description: m.Description,
	}
}

// Create persists a new transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	m := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			return errs.ErrCustomerNotFound
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"customer_id": txn.CustomerID,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = m.ID
	return nil
}

// Update persists status changes of an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", txn.ID).
		Update("status", string(txn.Status))

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": txn.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// Find returns the transactions matching every present filter predicate,
// ordered by creation time, plus the total match count
func (r *TransactionRepository) Find(ctx context.Context, filter persistence.TransactionFilter, page persistence.Pagination) ([]*entity.Transaction, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter)

	var total int64
	if result := query.Count(&total); result.Error != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	query = query.Order("created_at ASC, id ASC")
	if !page.Unpaged() {
		query = query.Offset(page.Offset()).Limit(page.PageSize)
	}

	var models []model.Transaction
	if result := query.Find(&models); result.Error != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	items := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		items = append(items, r.modelToEntity(&models[i]))
	}
	return items, total, nil
}

// applyFilter adds one WHERE clause per present predicate; the conjunction of
// all of them is the filter contract. From/To are inclusive bounds.
func (r *TransactionRepository) applyFilter(query *gorm.DB, filter persistence.TransactionFilter) *gorm.DB {
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Currency != "" {
		query = query.Where("currency = ?", filter.Currency)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	return query
}
