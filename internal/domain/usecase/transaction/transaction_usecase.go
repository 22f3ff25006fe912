package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/domain/port/persistence"
	portuse "github.com/jaykakkad82/mypayments/internal/domain/port/usecase"
)

// Service implements the transaction lifecycle: creation as PENDING,
// cancellation rules and filtered listing. Payment-driven status transitions
// live in the payment service; both share only the record store.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create persists a new PENDING transaction for an existing customer
func (s *Service) Create(ctx context.Context, input portuse.CreateTransactionInput) (*entity.Transaction, error) {
	if _, err := s.uow.GetCustomerRepository(ctx).GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(
		input.CustomerID,
		input.Amount,
		input.Currency,
		input.Category,
		input.Description,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": txn.ID,
		"customer_id":    txn.CustomerID,
		"amount":         txn.Amount.String(),
		"currency":       txn.Currency,
	})
	return txn, nil
}

// Get returns the transaction or nil when absent
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Transaction, error) {
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return txn, nil
}

// Cancel moves a never-completed transaction to FAILED.
// Cancelling an already-FAILED transaction is a no-op success.
func (s *Service) Cancel(ctx context.Context, id uint64) (*entity.Transaction, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin atomic unit: %w", err)
	}

	txRepo := s.uow.GetTransactionRepository(txCtx)
	txn, err := txRepo.GetByID(txCtx, id)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	switch txn.Status {
	case entity.TransactionCompleted:
		_ = s.uow.Rollback(txCtx)
		return nil, errs.ErrCannotCancelCompleted
	case entity.TransactionFailed:
		// Already terminal in the desired direction; nothing to write.
		_ = s.uow.Rollback(txCtx)
		return txn, nil
	}

	txn.MarkFailed()
	if err := txRepo.Update(txCtx, txn); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, fmt.Errorf("failed to cancel transaction: %w", err)
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	s.logger.Info("Transaction cancelled", map[string]any{
		"transaction_id": txn.ID,
	})
	return txn, nil
}

// List returns the page of transactions matching every present filter.
// An unrecognized status value matches zero rows so list endpoints stay
// resilient to client typos.
func (s *Service) List(ctx context.Context, input portuse.ListTransactionsInput) (*portuse.TransactionPage, error) {
	page := persistence.Pagination{Page: input.Page, PageSize: input.PageSize}

	filter := persistence.TransactionFilter{
		CustomerID: input.CustomerID,
		Category:   input.Category,
		Currency:   input.Currency,
		From:       input.From,
		To:         input.To,
	}

	if status := strings.TrimSpace(input.Status); status != "" {
		normalized := strings.ToUpper(status)
		if !entity.IsValidTransactionStatus(normalized) {
			return &portuse.TransactionPage{
				Items:      []*entity.Transaction{},
				TotalCount: 0,
				Page:       input.Page,
				PageSize:   input.PageSize,
			}, nil
		}
		filter.Status = entity.TransactionStatus(normalized)
	}

	items, total, err := s.uow.GetTransactionRepository(ctx).Find(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &portuse.TransactionPage{
		Items:      items,
		TotalCount: total,
		Page:       input.Page,
		PageSize:   input.PageSize,
	}, nil
}
