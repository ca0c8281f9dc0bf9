package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// TransactionCreateRequest payload for a manual payment record.
type TransactionCreateRequest struct {
	UserID   string  `json:"user_id"`
	DriverID string  `json:"driver_id"`
	RideID   *string `json:"ride_id"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

// Validate checks required fields.
func (r *TransactionCreateRequest) Validate() error {
	details := map[string]any{}
	if strings.TrimSpace(r.UserID) == "" {
		details["user_id"] = "required"
	}
	if strings.TrimSpace(r.DriverID) == "" {
		details["driver_id"] = "required"
	}
	if r.Amount < 0 {
		details["amount"] = "must not be negative"
	}
	if !domain.TransactionStatus(r.Status).Valid() {
		details["status"] = "must be pending, completed or failed"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid transaction payload", details)
	}
	return nil
}

// TransactionUpdateRequest payload for amount/status changes.
type TransactionUpdateRequest struct {
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}

// Validate checks the update payload.
func (r *TransactionUpdateRequest) Validate() error {
	if r.Amount == nil && r.Status == nil {
		return apperrors.NewValidationError("no fields to update", nil)
	}
	if r.Amount != nil && *r.Amount < 0 {
		return apperrors.NewValidationError("amount must not be negative", nil)
	}
	if r.Status != nil && !domain.TransactionStatus(*r.Status).Valid() {
		return apperrors.NewValidationError("unknown transaction status", nil)
	}
	return nil
}

// TransactionResponse is the public shape of a payment record.
type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	DriverID  string    `json:"driver_id"`
	RideID    *string   `json:"ride_id,omitempty"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTransactionResponse maps a domain transaction.
func NewTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        tx.ID,
		UserID:    tx.UserID,
		DriverID:  tx.DriverID,
		RideID:    tx.RideID,
		Amount:    tx.Amount,
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt,
	}
}
