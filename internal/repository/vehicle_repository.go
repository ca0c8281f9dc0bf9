package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// VehicleRepository defines persistence access for vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	GetByDriverID(ctx context.Context, driverID string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type vehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository returns a Postgres-backed implementation.
func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepository{pool: pool}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO vehicles (id, driver_id, make, model, year, license_plate, color, capacity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		vehicle.ID,
		vehicle.DriverID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.Capacity,
	).Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        UPDATE vehicles SET make=$1, model=$2, year=$3, license_plate=$4, color=$5,
            capacity=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.Capacity,
		vehicle.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	const query = `
        SELECT id, driver_id, make, model, year, license_plate, color, capacity, created_at, updated_at
        FROM vehicles WHERE id=$1`
	return scanVehicle(r.pool.QueryRow(ctx, query, id))
}

func (r *vehicleRepository) GetByDriverID(ctx context.Context, driverID string) (*domain.Vehicle, error) {
	const query = `
        SELECT id, driver_id, make, model, year, license_plate, color, capacity, created_at, updated_at
        FROM vehicles WHERE driver_id=$1`
	return scanVehicle(r.pool.QueryRow(ctx, query, driverID))
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	const query = `
        SELECT id, driver_id, make, model, year, license_plate, color, capacity, created_at, updated_at
        FROM vehicles ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(
			&v.ID,
			&v.DriverID,
			&v.Make,
			&v.Model,
			&v.Year,
			&v.LicensePlate,
			&v.Color,
			&v.Capacity,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := row.Scan(
		&v.ID,
		&v.DriverID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.LicensePlate,
		&v.Color,
		&v.Capacity,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
