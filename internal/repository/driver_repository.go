package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// DriverRepository defines persistence access for the driver directory.
type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	Update(ctx context.Context, driver *domain.Driver) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	SetAvailabilityByUserID(ctx context.Context, userID string, available bool) error
}

type driverRepository struct {
	pool *pgxpool.Pool
}

// NewDriverRepository returns a Postgres-backed implementation.
func NewDriverRepository(pool *pgxpool.Pool) DriverRepository {
	return &driverRepository{pool: pool}
}

func (r *driverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	if driver.ID == "" {
		driver.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO drivers (id, user_id, name, vehicle_type, available, rating)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		driver.ID,
		driver.UserID,
		driver.Name,
		driver.VehicleType,
		driver.Available,
		driver.Rating,
	).Scan(&driver.CreatedAt, &driver.UpdatedAt)
}

func (r *driverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	const query = `
        UPDATE drivers SET name=$1, vehicle_type=$2, available=$3, rating=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		driver.Name,
		driver.VehicleType,
		driver.Available,
		driver.Rating,
		driver.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM drivers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	const query = `
        SELECT id, user_id, name, vehicle_type, available, rating, created_at, updated_at
        FROM drivers WHERE id=$1`
	return scanDriver(r.pool.QueryRow(ctx, query, id))
}

func (r *driverRepository) GetByUserID(ctx context.Context, userID string) (*domain.Driver, error) {
	const query = `
        SELECT id, user_id, name, vehicle_type, available, rating, created_at, updated_at
        FROM drivers WHERE user_id=$1`
	return scanDriver(r.pool.QueryRow(ctx, query, userID))
}

func (r *driverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	const query = `
        SELECT id, user_id, name, vehicle_type, available, rating, created_at, updated_at
        FROM drivers ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Name,
			&d.VehicleType,
			&d.Available,
			&d.Rating,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

// SetAvailabilityByUserID flips a driver's availability as part of ride
// fan-out. Missing driver rows are ignored: the write is best-effort.
func (r *driverRepository) SetAvailabilityByUserID(ctx context.Context, userID string, available bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE drivers SET available=$1, updated_at=NOW() WHERE user_id=$2`,
		available, userID,
	)
	return err
}

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	if err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.VehicleType,
		&d.Available,
		&d.Rating,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
