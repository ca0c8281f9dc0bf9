package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// DriverCreateRequest payload for admin-created directory entries.
type DriverCreateRequest struct {
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	VehicleType string  `json:"vehicle_type"`
	Available   *bool   `json:"available"`
	Rating      float64 `json:"rating"`
}

// Validate checks required fields.
func (r *DriverCreateRequest) Validate() error {
	details := map[string]any{}
	if strings.TrimSpace(r.UserID) == "" {
		details["user_id"] = "required"
	}
	if strings.TrimSpace(r.Name) == "" {
		details["name"] = "required"
	}
	if r.Rating < 0 || r.Rating > 5 {
		details["rating"] = "must be between 0 and 5"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid driver payload", details)
	}
	return nil
}

// DriverUpdateRequest payload for directory updates. All fields optional.
type DriverUpdateRequest struct {
	Name        *string  `json:"name"`
	VehicleType *string  `json:"vehicle_type"`
	Available   *bool    `json:"available"`
	Rating      *float64 `json:"rating"`
}

// Validate checks the update payload.
func (r *DriverUpdateRequest) Validate() error {
	if r.Name == nil && r.VehicleType == nil && r.Available == nil && r.Rating == nil {
		return apperrors.NewValidationError("no fields to update", nil)
	}
	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 5) {
		return apperrors.NewValidationError("rating must be between 0 and 5", nil)
	}
	return nil
}

// DriverResponse is the public shape of a directory entry.
type DriverResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	VehicleType string    `json:"vehicle_type"`
	Available   bool      `json:"available"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewDriverResponse maps a domain driver.
func NewDriverResponse(driver *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:          driver.ID,
		UserID:      driver.UserID,
		Name:        driver.Name,
		VehicleType: driver.VehicleType,
		Available:   driver.Available,
		Rating:      driver.Rating,
		CreatedAt:   driver.CreatedAt,
	}
}
