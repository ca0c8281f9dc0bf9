package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// AnalyticsRepository runs the aggregation queries behind the admin
// analytics endpoints.
type AnalyticsRepository interface {
	PassengerStats(ctx context.Context) ([]domain.PassengerStats, error)
	DriverStats(ctx context.Context) ([]domain.DriverStats, error)
}

type analyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository returns a Postgres-backed implementation.
func NewAnalyticsRepository(pool *pgxpool.Pool) AnalyticsRepository {
	return &analyticsRepository{pool: pool}
}

func (r *analyticsRepository) PassengerStats(ctx context.Context) ([]domain.PassengerStats, error) {
	const query = `
        SELECT u.id, u.name,
               COUNT(r.id) AS total_rides,
               COUNT(r.id) FILTER (WHERE r.status = 'completed') AS completed_rides,
               COUNT(r.id) FILTER (WHERE r.status = 'cancelled') AS cancelled_rides,
               COALESCE(SUM(r.fare) FILTER (WHERE r.status = 'completed'), 0) AS total_spent
        FROM users u
        JOIN rides r ON r.user_id = u.id
        GROUP BY u.id, u.name
        ORDER BY total_rides DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.PassengerStats
	for rows.Next() {
		var s domain.PassengerStats
		if err := rows.Scan(
			&s.UserID,
			&s.Name,
			&s.TotalRides,
			&s.CompletedRides,
			&s.CancelledRides,
			&s.TotalSpent,
		); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *analyticsRepository) DriverStats(ctx context.Context) ([]domain.DriverStats, error) {
	const query = `
        SELECT u.id, u.name,
               COUNT(r.id) AS total_rides,
               COUNT(r.id) FILTER (WHERE r.status = 'completed') AS completed_rides,
               COALESCE(SUM(r.fare) FILTER (WHERE r.status = 'completed'), 0) AS total_earned
        FROM users u
        JOIN rides r ON r.driver_id = u.id
        GROUP BY u.id, u.name
        ORDER BY total_rides DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.DriverStats
	for rows.Next() {
		var s domain.DriverStats
		if err := rows.Scan(
			&s.DriverID,
			&s.Name,
			&s.TotalRides,
			&s.CompletedRides,
			&s.TotalEarned,
		); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
