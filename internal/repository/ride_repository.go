package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// RideRepository defines persistence access for rides.
type RideRepository interface {
	Create(ctx context.Context, ride *domain.Ride) error
	Update(ctx context.Context, ride *domain.Ride) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Ride, error)
	List(ctx context.Context) ([]domain.Ride, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Ride, error)
	ListForDriver(ctx context.Context, driverID string) ([]domain.Ride, error)
}

type rideRepository struct {
	pool *pgxpool.Pool
}

// NewRideRepository returns a Postgres-backed implementation.
func NewRideRepository(pool *pgxpool.Pool) RideRepository {
	return &rideRepository{pool: pool}
}

const rideColumns = `id, user_id, driver_id, vehicle_id, pickup, destination, status, fare,
        accepted_at, started_at, completed_at, cancelled_at, created_at, updated_at`

func (r *rideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	if ride.ID == "" {
		ride.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO rides (id, user_id, pickup, destination, status, fare)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		ride.ID,
		ride.UserID,
		ride.Pickup,
		ride.Destination,
		ride.Status,
		ride.Fare,
	).Scan(&ride.CreatedAt, &ride.UpdatedAt)
}

func (r *rideRepository) Update(ctx context.Context, ride *domain.Ride) error {
	const query = `
        UPDATE rides SET driver_id=$1, vehicle_id=$2, pickup=$3, destination=$4, status=$5,
            fare=$6, accepted_at=$7, started_at=$8, completed_at=$9, cancelled_at=$10,
            updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		ride.DriverID,
		ride.VehicleID,
		ride.Pickup,
		ride.Destination,
		ride.Status,
		ride.Fare,
		ride.AcceptedAt,
		ride.StartedAt,
		ride.CompletedAt,
		ride.CancelledAt,
		ride.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rideRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM rides WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+rideColumns+` FROM rides WHERE id=$1`, id)
	return scanRide(row)
}

func (r *rideRepository) List(ctx context.Context) ([]domain.Ride, error) {
	return r.queryRides(ctx, `SELECT `+rideColumns+` FROM rides ORDER BY created_at DESC`)
}

func (r *rideRepository) ListByUser(ctx context.Context, userID string) ([]domain.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+` FROM rides WHERE user_id=$1 ORDER BY created_at DESC`, userID)
}

// ListForDriver returns rides assigned to the driver plus open requests any
// driver may accept.
func (r *rideRepository) ListForDriver(ctx context.Context, driverID string) ([]domain.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+` FROM rides
         WHERE driver_id=$1 OR (driver_id IS NULL AND status='requested')
         ORDER BY created_at DESC`, driverID)
}

func (r *rideRepository) queryRides(ctx context.Context, query string, args ...any) ([]domain.Ride, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []domain.Ride
	for rows.Next() {
		ride, err := scanRideRow(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, *ride)
	}
	return rides, rows.Err()
}

func scanRide(row pgx.Row) (*domain.Ride, error) {
	return scanRideRow(row)
}

func scanRideRow(row pgx.Row) (*domain.Ride, error) {
	var ride domain.Ride
	if err := row.Scan(
		&ride.ID,
		&ride.UserID,
		&ride.DriverID,
		&ride.VehicleID,
		&ride.Pickup,
		&ride.Destination,
		&ride.Status,
		&ride.Fare,
		&ride.AcceptedAt,
		&ride.StartedAt,
		&ride.CompletedAt,
		&ride.CancelledAt,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ride, nil
}
