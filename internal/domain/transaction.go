package domain

import "time"

// TransactionStatus enumerates payment record states.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Valid reports whether the status is a known state.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

// Transaction is a best-effort payment record written when a ride completes
// or created manually by an admin. It is not a ledger: writes are independent
// of the ride they reference.
type Transaction struct {
	ID        string
	UserID    string
	DriverID  string
	RideID    *string
	Amount    float64
	Status    TransactionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
