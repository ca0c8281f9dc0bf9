package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// RideCreateRequest payload for requesting a ride.
type RideCreateRequest struct {
	Pickup      string  `json:"pickup"`
	Destination string  `json:"destination"`
	Fare        float64 `json:"fare"`
	UserID      string  `json:"user_id"`
}

// Validate checks required fields.
func (r *RideCreateRequest) Validate() error {
	details := map[string]any{}
	if strings.TrimSpace(r.Pickup) == "" {
		details["pickup"] = "required"
	}
	if strings.TrimSpace(r.Destination) == "" {
		details["destination"] = "required"
	}
	if r.Fare < 0 {
		details["fare"] = "must not be negative"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid ride payload", details)
	}
	return nil
}

// RideUpdateRequest payload for a status transition.
type RideUpdateRequest struct {
	Status   string `json:"status"`
	DriverID string `json:"driver_id"`
}

// Validate checks the target status is a known lifecycle state.
func (r *RideUpdateRequest) Validate() error {
	if !domain.RideStatus(r.Status).Valid() {
		return apperrors.NewValidationError("unknown ride status", map[string]any{"status": r.Status})
	}
	return nil
}

// RideResponse is the public shape of a ride.
type RideResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	DriverID    *string    `json:"driver_id,omitempty"`
	VehicleID   *string    `json:"vehicle_id,omitempty"`
	Pickup      string     `json:"pickup"`
	Destination string     `json:"destination"`
	Status      string     `json:"status"`
	Fare        float64    `json:"fare"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewRideResponse maps a domain ride.
func NewRideResponse(ride *domain.Ride) RideResponse {
	return RideResponse{
		ID:          ride.ID,
		UserID:      ride.UserID,
		DriverID:    ride.DriverID,
		VehicleID:   ride.VehicleID,
		Pickup:      ride.Pickup,
		Destination: ride.Destination,
		Status:      string(ride.Status),
		Fare:        ride.Fare,
		AcceptedAt:  ride.AcceptedAt,
		StartedAt:   ride.StartedAt,
		CompletedAt: ride.CompletedAt,
		CancelledAt: ride.CancelledAt,
		CreatedAt:   ride.CreatedAt,
	}
}
