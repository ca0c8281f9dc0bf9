package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// VehicleRegisterRequest payload for registering the caller's vehicle.
type VehicleRegisterRequest struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	Capacity     int    `json:"capacity"`
}

// Validate checks required fields.
func (r *VehicleRegisterRequest) Validate() error {
	details := map[string]any{}
	if strings.TrimSpace(r.Make) == "" {
		details["make"] = "required"
	}
	if strings.TrimSpace(r.Model) == "" {
		details["model"] = "required"
	}
	if r.Year < 1950 || r.Year > time.Now().Year()+1 {
		details["year"] = "implausible"
	}
	if strings.TrimSpace(r.LicensePlate) == "" {
		details["license_plate"] = "required"
	}
	if r.Capacity < 1 {
		details["capacity"] = "must be at least 1"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid vehicle payload", details)
	}
	return nil
}

// VehicleResponse is the public shape of a vehicle.
type VehicleResponse struct {
	ID           string    `json:"id"`
	DriverID     string    `json:"driver_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate"`
	Color        string    `json:"color"`
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewVehicleResponse maps a domain vehicle.
func NewVehicleResponse(vehicle *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           vehicle.ID,
		DriverID:     vehicle.DriverID,
		Make:         vehicle.Make,
		Model:        vehicle.Model,
		Year:         vehicle.Year,
		LicensePlate: strings.ToUpper(vehicle.LicensePlate),
		Color:        vehicle.Color,
		Capacity:     vehicle.Capacity,
		CreatedAt:    vehicle.CreatedAt,
	}
}
