package service

import (
	"context"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/repository"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// DriverCreateInput carries the fields for a directory entry.
type DriverCreateInput struct {
	UserID      string
	Name        string
	VehicleType string
	Available   bool
	Rating      float64
}

// DriverUpdateInput carries the mutable fields. Nil means unchanged.
type DriverUpdateInput struct {
	Name        *string
	VehicleType *string
	Available   *bool
	Rating      *float64
}

// DriverService manages the admin-facing driver directory.
type DriverService struct {
	drivers repository.DriverRepository
}

// NewDriverService builds the service.
func NewDriverService(drivers repository.DriverRepository) *DriverService {
	return &DriverService{drivers: drivers}
}

// List returns all directory entries.
func (s *DriverService) List(ctx context.Context) ([]domain.Driver, error) {
	return s.drivers.List(ctx)
}

// Create adds a directory entry for an existing account.
func (s *DriverService) Create(ctx context.Context, input DriverCreateInput) (*domain.Driver, error) {
	driver := &domain.Driver{
		UserID:      input.UserID,
		Name:        input.Name,
		VehicleType: input.VehicleType,
		Available:   input.Available,
		Rating:      input.Rating,
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Update applies directory changes.
func (s *DriverService) Update(ctx context.Context, id string, input DriverUpdateInput) (*domain.Driver, error) {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.VehicleType != nil {
		driver.VehicleType = *input.VehicleType
	}
	if input.Available != nil {
		driver.Available = *input.Available
	}
	if input.Rating != nil {
		driver.Rating = *input.Rating
	}

	if err := s.drivers.Update(ctx, driver); err != nil {
		return nil, apperrors.MapError(err)
	}
	return driver, nil
}

// Delete removes a directory entry.
func (s *DriverService) Delete(ctx context.Context, id string) error {
	return s.drivers.Delete(ctx, id)
}
