package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks required fields before any handler logic runs.
func (r *RegisterRequest) Validate() error {
	details := map[string]any{}
	if strings.TrimSpace(r.Name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		details["email"] = "valid email required"
	}
	if len(r.Password) < 8 {
		details["password"] = "at least 8 characters"
	}
	role := domain.Role(r.Role)
	if role != domain.RoleUser && role != domain.RoleDriver {
		details["role"] = "must be user or driver"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid registration payload", details)
	}
	return nil
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	return nil
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
