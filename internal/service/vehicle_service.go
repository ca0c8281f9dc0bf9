package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/repository"
)

// VehicleRegisterInput carries the vehicle registration fields.
type VehicleRegisterInput struct {
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Color        string
	Capacity     int
}

// VehicleService manages driver vehicle registrations. Each driver has at
// most one vehicle; registering again replaces the existing record.
type VehicleService struct {
	vehicles repository.VehicleRepository
}

// NewVehicleService builds the service.
func NewVehicleService(vehicles repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// Register creates or updates the calling driver's vehicle.
func (s *VehicleService) Register(ctx context.Context, driverID string, input VehicleRegisterInput) (*domain.Vehicle, error) {
	existing, err := s.vehicles.GetByDriverID(ctx, driverID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if existing != nil {
		existing.Make = input.Make
		existing.Model = input.Model
		existing.Year = input.Year
		existing.LicensePlate = input.LicensePlate
		existing.Color = input.Color
		existing.Capacity = input.Capacity
		if err := s.vehicles.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	vehicle := &domain.Vehicle{
		DriverID:     driverID,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
		Color:        input.Color,
		Capacity:     input.Capacity,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// List returns all registered vehicles.
func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}

// Get returns one vehicle by id.
func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

// Delete removes a vehicle.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	return s.vehicles.Delete(ctx, id)
}

// OwnerID resolves a vehicle's owning driver id for the ownership guard.
func (s *VehicleService) OwnerID(ctx context.Context, vehicleID string) (string, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return "", err
	}
	return vehicle.DriverID, nil
}
