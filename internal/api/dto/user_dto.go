package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// UserResponse is the public shape of an account; the password hash never
// leaves the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// UserUpdateRequest payload for profile updates. All fields optional; at
// least one must be present.
type UserUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate checks the update payload.
func (r *UserUpdateRequest) Validate() error {
	if r.Name == nil && r.Email == nil && r.Password == nil {
		return apperrors.NewValidationError("no fields to update", nil)
	}
	details := map[string]any{}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		details["name"] = "must not be empty"
	}
	if r.Email != nil && (strings.TrimSpace(*r.Email) == "" || !strings.Contains(*r.Email, "@")) {
		details["email"] = "valid email required"
	}
	if r.Password != nil && len(*r.Password) < 8 {
		details["password"] = "at least 8 characters"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid update payload", details)
	}
	return nil
}
