package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/ride-sharing-service/internal/auth"
	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/events"
	"github.com/spec-kit/ride-sharing-service/internal/repository"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// RideCreateInput carries the fields for a new ride request.
type RideCreateInput struct {
	Pickup      string
	Destination string
	Fare        float64
	// UserID lets an admin create a ride on behalf of a passenger. Ignored
	// for everyone else.
	UserID string
}

// RideUpdateInput carries a status transition request. DriverID is only
// honored when an admin assigns a ride; drivers always accept as themselves.
type RideUpdateInput struct {
	Status   domain.RideStatus
	DriverID string
}

// RideService owns the ride lifecycle. Status transitions fan out into
// driver availability and transaction writes as independent best-effort
// operations: a crash mid-sequence leaves partial state, and no transaction
// spans the collections involved.
type RideService struct {
	rides        repository.RideRepository
	drivers      repository.DriverRepository
	vehicles     repository.VehicleRepository
	transactions repository.TransactionRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewRideService builds the service.
func NewRideService(
	rides repository.RideRepository,
	drivers repository.DriverRepository,
	vehicles repository.VehicleRepository,
	transactions repository.TransactionRepository,
	dispatcher events.Dispatcher,
	logger *zap.Logger,
) *RideService {
	return &RideService{
		rides:        rides,
		drivers:      drivers,
		vehicles:     vehicles,
		transactions: transactions,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Create records a new ride request owned by the calling passenger.
func (s *RideService) Create(ctx context.Context, principal *auth.Principal, input RideCreateInput) (*domain.Ride, error) {
	userID := principal.SubjectID
	if principal.Role == domain.RoleAdmin && input.UserID != "" {
		userID = input.UserID
	}

	ride := &domain.Ride{
		UserID:      userID,
		Pickup:      input.Pickup,
		Destination: input.Destination,
		Status:      domain.RideStatusRequested,
		Fare:        input.Fare,
	}
	if err := s.rides.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventRideRequested, ride.ID, principal, events.RideRequestedPayload{
		Pickup:      ride.Pickup,
		Destination: ride.Destination,
	})
	return ride, nil
}

// List returns the rides visible to the caller: admins see everything,
// passengers their own rides, drivers their assigned rides plus open
// requests.
func (s *RideService) List(ctx context.Context, principal *auth.Principal) ([]domain.Ride, error) {
	switch principal.Role {
	case domain.RoleAdmin:
		return s.rides.List(ctx)
	case domain.RoleDriver:
		return s.rides.ListForDriver(ctx, principal.SubjectID)
	default:
		return s.rides.ListByUser(ctx, principal.SubjectID)
	}
}

// UpdateStatus moves a ride through its lifecycle, enforcing who may drive
// each transition and firing the fan-out writes.
func (s *RideService) UpdateStatus(ctx context.Context, principal *auth.Principal, rideID string, input RideUpdateInput) (*domain.Ride, error) {
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if !ride.Status.CanTransition(input.Status) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": ride.Status,
			"to":   input.Status,
		})
	}

	oldStatus := ride.Status
	now := time.Now()

	switch input.Status {
	case domain.RideStatusAccepted:
		if err := s.accept(ctx, principal, ride, input, now); err != nil {
			return nil, err
		}
	case domain.RideStatusOngoing:
		if err := requireAssignedDriver(principal, ride); err != nil {
			return nil, err
		}
		ride.Status = domain.RideStatusOngoing
		ride.StartedAt = &now
	case domain.RideStatusCompleted:
		if err := requireAssignedDriver(principal, ride); err != nil {
			return nil, err
		}
		ride.Status = domain.RideStatusCompleted
		ride.CompletedAt = &now
	case domain.RideStatusCancelled:
		if err := requireRideOwner(principal, ride); err != nil {
			return nil, err
		}
		ride.Status = domain.RideStatusCancelled
		ride.CancelledAt = &now
	default:
		return nil, apperrors.NewValidationError("unsupported target status", nil)
	}

	if err := s.rides.Update(ctx, ride); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.fanOut(ctx, principal, ride, oldStatus)
	return ride, nil
}

// Delete removes a ride record.
func (s *RideService) Delete(ctx context.Context, id string) error {
	return s.rides.Delete(ctx, id)
}

func (s *RideService) accept(ctx context.Context, principal *auth.Principal, ride *domain.Ride, input RideUpdateInput, now time.Time) error {
	if ride.DriverID != nil {
		return apperrors.NewConflict("ride already assigned", nil)
	}

	var driverID string
	switch principal.Role {
	case domain.RoleDriver:
		driverID = principal.SubjectID
	case domain.RoleAdmin:
		if input.DriverID == "" {
			return apperrors.NewValidationError("driver_id required when assigning a ride", nil)
		}
		driverID = input.DriverID
	default:
		return apperrors.NewForbidden("only drivers may accept rides")
	}

	vehicle, err := s.vehicles.GetByDriverID(ctx, driverID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewConflict("driver has no registered vehicle", nil)
		}
		return err
	}

	ride.DriverID = &driverID
	ride.VehicleID = &vehicle.ID
	ride.Status = domain.RideStatusAccepted
	ride.AcceptedAt = &now
	return nil
}

// fanOut applies the side effects of a committed transition. Each write is
// independent; failures are logged and do not undo the ride update.
func (s *RideService) fanOut(ctx context.Context, principal *auth.Principal, ride *domain.Ride, oldStatus domain.RideStatus) {
	switch ride.Status {
	case domain.RideStatusAccepted:
		if err := s.drivers.SetAvailabilityByUserID(ctx, *ride.DriverID, false); err != nil {
			s.logger.Warn("driver availability update failed", zap.String("ride_id", ride.ID), zap.Error(err))
		}
		s.publish(ctx, events.EventRideAccepted, ride.ID, principal, events.RideAcceptedPayload{
			DriverID:  *ride.DriverID,
			VehicleID: *ride.VehicleID,
		})
	case domain.RideStatusCompleted:
		if err := s.drivers.SetAvailabilityByUserID(ctx, *ride.DriverID, true); err != nil {
			s.logger.Warn("driver availability update failed", zap.String("ride_id", ride.ID), zap.Error(err))
		}
		tx := &domain.Transaction{
			UserID:   ride.UserID,
			DriverID: *ride.DriverID,
			RideID:   &ride.ID,
			Amount:   ride.Fare,
			Status:   domain.TransactionStatusPending,
		}
		if err := s.transactions.Create(ctx, tx); err != nil {
			s.logger.Warn("transaction write failed", zap.String("ride_id", ride.ID), zap.Error(err))
		} else {
			s.publish(ctx, events.EventTransactionRecorded, ride.ID, principal, events.TransactionRecordedPayload{
				TransactionID: tx.ID,
				Amount:        tx.Amount,
			})
		}
		s.publish(ctx, events.EventRideStatusChanged, ride.ID, principal, events.RideStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: ride.Status,
		})
	case domain.RideStatusCancelled:
		if ride.DriverID != nil {
			if err := s.drivers.SetAvailabilityByUserID(ctx, *ride.DriverID, true); err != nil {
				s.logger.Warn("driver availability update failed", zap.String("ride_id", ride.ID), zap.Error(err))
			}
		}
		s.publish(ctx, events.EventRideCancelled, ride.ID, principal, events.RideStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: ride.Status,
		})
	default:
		s.publish(ctx, events.EventRideStatusChanged, ride.ID, principal, events.RideStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: ride.Status,
		})
	}
}

func (s *RideService) publish(ctx context.Context, eventType events.EventType, rideID string, principal *auth.Principal, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RideID:    rideID,
		Actor:     events.Actor{SubjectID: principal.SubjectID, Role: principal.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func requireAssignedDriver(principal *auth.Principal, ride *domain.Ride) error {
	if principal.Role == domain.RoleAdmin {
		return nil
	}
	if ride.DriverID == nil {
		return apperrors.NewConflict("ride has no assigned driver", nil)
	}
	if auth.CanonicalID(principal.SubjectID) != auth.CanonicalID(*ride.DriverID) {
		return apperrors.NewForbidden("not the assigned driver")
	}
	return nil
}

func requireRideOwner(principal *auth.Principal, ride *domain.Ride) error {
	if principal.Role == domain.RoleAdmin {
		return nil
	}
	if auth.CanonicalID(principal.SubjectID) != auth.CanonicalID(ride.UserID) {
		return apperrors.NewForbidden("not the resource owner")
	}
	return nil
}
