package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// In-memory repository fakes. Not-found is signalled with pgx.ErrNoRows to
// match the Postgres implementations.

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (r *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *mockUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *mockUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

type mockDriverRepo struct {
	mu           sync.Mutex
	drivers      map[string]*domain.Driver
	availability map[string]bool
}

func newMockDriverRepo() *mockDriverRepo {
	return &mockDriverRepo{
		drivers:      make(map[string]*domain.Driver),
		availability: make(map[string]bool),
	}
}

func (r *mockDriverRepo) Create(_ context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if driver.ID == "" {
		driver.ID = uuid.NewString()
	}
	copied := *driver
	r.drivers[driver.ID] = &copied
	return nil
}

func (r *mockDriverRepo) Update(_ context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[driver.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *driver
	r.drivers[driver.ID] = &copied
	return nil
}

func (r *mockDriverRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.drivers, id)
	return nil
}

func (r *mockDriverRepo) GetByID(_ context.Context, id string) (*domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	driver, ok := r.drivers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *driver
	return &copied, nil
}

func (r *mockDriverRepo) GetByUserID(_ context.Context, userID string) (*domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, driver := range r.drivers {
		if driver.UserID == userID {
			copied := *driver
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *mockDriverRepo) List(_ context.Context) ([]domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drivers := make([]domain.Driver, 0, len(r.drivers))
	for _, driver := range r.drivers {
		drivers = append(drivers, *driver)
	}
	return drivers, nil
}

func (r *mockDriverRepo) SetAvailabilityByUserID(_ context.Context, userID string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.availability[userID] = available
	for _, driver := range r.drivers {
		if driver.UserID == userID {
			driver.Available = available
		}
	}
	return nil
}

type mockRideRepo struct {
	mu    sync.Mutex
	rides map[string]*domain.Ride
}

func newMockRideRepo() *mockRideRepo {
	return &mockRideRepo{rides: make(map[string]*domain.Ride)}
}

func (r *mockRideRepo) Create(_ context.Context, ride *domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ride.ID == "" {
		ride.ID = uuid.NewString()
	}
	copied := *ride
	r.rides[ride.ID] = &copied
	return nil
}

func (r *mockRideRepo) Update(_ context.Context, ride *domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rides[ride.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *ride
	r.rides[ride.ID] = &copied
	return nil
}

func (r *mockRideRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rides[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rides, id)
	return nil
}

func (r *mockRideRepo) GetByID(_ context.Context, id string) (*domain.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ride, ok := r.rides[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ride
	return &copied, nil
}

func (r *mockRideRepo) List(_ context.Context) ([]domain.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rides := make([]domain.Ride, 0, len(r.rides))
	for _, ride := range r.rides {
		rides = append(rides, *ride)
	}
	return rides, nil
}

func (r *mockRideRepo) ListByUser(_ context.Context, userID string) ([]domain.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rides []domain.Ride
	for _, ride := range r.rides {
		if ride.UserID == userID {
			rides = append(rides, *ride)
		}
	}
	return rides, nil
}

func (r *mockRideRepo) ListForDriver(_ context.Context, driverID string) ([]domain.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rides []domain.Ride
	for _, ride := range r.rides {
		if ride.DriverID != nil && *ride.DriverID == driverID {
			rides = append(rides, *ride)
			continue
		}
		if ride.DriverID == nil && ride.Status == domain.RideStatusRequested {
			rides = append(rides, *ride)
		}
	}
	return rides, nil
}

type mockVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[string]*domain.Vehicle
}

func newMockVehicleRepo() *mockVehicleRepo {
	return &mockVehicleRepo{vehicles: make(map[string]*domain.Vehicle)}
}

func (r *mockVehicleRepo) Create(_ context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	copied := *vehicle
	r.vehicles[vehicle.ID] = &copied
	return nil
}

func (r *mockVehicleRepo) Update(_ context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *vehicle
	r.vehicles[vehicle.ID] = &copied
	return nil
}

func (r *mockVehicleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.vehicles, id)
	return nil
}

func (r *mockVehicleRepo) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *vehicle
	return &copied, nil
}

func (r *mockVehicleRepo) GetByDriverID(_ context.Context, driverID string) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, vehicle := range r.vehicles {
		if vehicle.DriverID == driverID {
			copied := *vehicle
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *mockVehicleRepo) List(_ context.Context) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicles := make([]domain.Vehicle, 0, len(r.vehicles))
	for _, vehicle := range r.vehicles {
		vehicles = append(vehicles, *vehicle)
	}
	return vehicles, nil
}

type mockTransactionRepo struct {
	mu           sync.Mutex
	transactions map[string]*domain.Transaction
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{transactions: make(map[string]*domain.Transaction)}
}

func (r *mockTransactionRepo) Create(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	copied := *tx
	r.transactions[tx.ID] = &copied
	return nil
}

func (r *mockTransactionRepo) Update(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[tx.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *tx
	r.transactions[tx.ID] = &copied
	return nil
}

func (r *mockTransactionRepo) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *tx
	return &copied, nil
}

func (r *mockTransactionRepo) List(_ context.Context) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txs := make([]domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		txs = append(txs, *tx)
	}
	return txs, nil
}
