package service

import (
	"context"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/repository"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// TransactionCreateInput carries the fields for a manual payment record.
type TransactionCreateInput struct {
	UserID   string
	DriverID string
	RideID   *string
	Amount   float64
	Status   domain.TransactionStatus
}

// TransactionUpdateInput carries the mutable fields. Nil means unchanged.
type TransactionUpdateInput struct {
	Amount *float64
	Status *domain.TransactionStatus
}

// TransactionService manages payment records.
type TransactionService struct {
	transactions repository.TransactionRepository
}

// NewTransactionService builds the service.
func NewTransactionService(transactions repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactions: transactions}
}

// List returns all payment records.
func (s *TransactionService) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactions.List(ctx)
}

// Create records a payment entry.
func (s *TransactionService) Create(ctx context.Context, input TransactionCreateInput) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		UserID:   input.UserID,
		DriverID: input.DriverID,
		RideID:   input.RideID,
		Amount:   input.Amount,
		Status:   input.Status,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Update applies amount/status changes to an existing record.
func (s *TransactionService) Update(ctx context.Context, id string, input TransactionUpdateInput) (*domain.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Status != nil {
		tx.Status = *input.Status
	}

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, apperrors.MapError(err)
	}
	return tx, nil
}
