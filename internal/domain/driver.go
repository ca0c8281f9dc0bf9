package domain

import "time"

// Driver is the admin-managed driver directory entry. UserID links it to the
// account the driver logs in with; Available tracks whether the driver can
// pick up new rides.
type Driver struct {
	ID          string
	UserID      string
	Name        string
	VehicleType string
	Available   bool
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
