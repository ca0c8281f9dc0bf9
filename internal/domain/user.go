package domain

import "time"

// User is an account that can authenticate: passengers, drivers and admins
// all live in the same table; Role decides what they may do.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
