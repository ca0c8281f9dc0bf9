package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ride-sharing-service/internal/api/http/handlers"
	"github.com/spec-kit/ride-sharing-service/internal/auth"
	"github.com/spec-kit/ride-sharing-service/internal/config"
	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/events"
	"github.com/spec-kit/ride-sharing-service/internal/observability"
	"github.com/spec-kit/ride-sharing-service/internal/service"
)

// In-memory stores standing in for Postgres. Only the repositories the
// exercised routes touch are backed; the rest stay nil.

type userStore struct {
	users map[string]*domain.User
}

func (s *userStore) Create(_ context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *userStore) Update(_ context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *userStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.users, id)
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *userStore) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	return users, nil
}

type driverStore struct {
	drivers map[string]*domain.Driver
}

func (s *driverStore) Create(_ context.Context, driver *domain.Driver) error {
	if driver.ID == "" {
		driver.ID = uuid.NewString()
	}
	copied := *driver
	s.drivers[driver.ID] = &copied
	return nil
}

func (s *driverStore) Update(_ context.Context, driver *domain.Driver) error {
	if _, ok := s.drivers[driver.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *driver
	s.drivers[driver.ID] = &copied
	return nil
}

func (s *driverStore) Delete(_ context.Context, id string) error {
	if _, ok := s.drivers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.drivers, id)
	return nil
}

func (s *driverStore) GetByID(_ context.Context, id string) (*domain.Driver, error) {
	driver, ok := s.drivers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *driver
	return &copied, nil
}

func (s *driverStore) GetByUserID(_ context.Context, userID string) (*domain.Driver, error) {
	for _, driver := range s.drivers {
		if driver.UserID == userID {
			copied := *driver
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *driverStore) List(_ context.Context) ([]domain.Driver, error) {
	drivers := make([]domain.Driver, 0, len(s.drivers))
	for _, driver := range s.drivers {
		drivers = append(drivers, *driver)
	}
	return drivers, nil
}

func (s *driverStore) SetAvailabilityByUserID(_ context.Context, userID string, available bool) error {
	for _, driver := range s.drivers {
		if driver.UserID == userID {
			driver.Available = available
		}
	}
	return nil
}

type vehicleStore struct {
	vehicles map[string]*domain.Vehicle
}

func (s *vehicleStore) Create(_ context.Context, vehicle *domain.Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	copied := *vehicle
	s.vehicles[vehicle.ID] = &copied
	return nil
}

func (s *vehicleStore) Update(_ context.Context, vehicle *domain.Vehicle) error {
	if _, ok := s.vehicles[vehicle.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *vehicle
	s.vehicles[vehicle.ID] = &copied
	return nil
}

func (s *vehicleStore) Delete(_ context.Context, id string) error {
	if _, ok := s.vehicles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.vehicles, id)
	return nil
}

func (s *vehicleStore) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *vehicle
	return &copied, nil
}

func (s *vehicleStore) GetByDriverID(_ context.Context, driverID string) (*domain.Vehicle, error) {
	for _, vehicle := range s.vehicles {
		if vehicle.DriverID == driverID {
			copied := *vehicle
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *vehicleStore) List(_ context.Context) ([]domain.Vehicle, error) {
	vehicles := make([]domain.Vehicle, 0, len(s.vehicles))
	for _, vehicle := range s.vehicles {
		vehicles = append(vehicles, *vehicle)
	}
	return vehicles, nil
}

func newTestApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	users := &userStore{users: make(map[string]*domain.User)}
	drivers := &driverStore{drivers: make(map[string]*domain.Driver)}
	vehicles := &vehicleStore{vehicles: make(map[string]*domain.Vehicle)}

	authCfg := config.AuthConfig{
		JWTSecret:             "router-test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            bcrypt.MinCost,
	}
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(authCfg, users, drivers)
	userService := service.NewUserService(users, authCfg.BcryptCost)
	driverService := service.NewDriverService(drivers)
	rideService := service.NewRideService(nil, drivers, vehicles, nil, dispatcher, logger)
	vehicleService := service.NewVehicleService(vehicles)
	transactionService := service.NewTransactionService(nil)
	analyticsService := service.NewAnalyticsService(nil, nil, 0, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Drivers:        handlers.NewDriversHandler(driverService),
		Rides:          handlers.NewRidesHandler(rideService),
		Vehicles:       handlers.NewVehiclesHandler(vehicleService),
		Transactions:   handlers.NewTransactionsHandler(transactionService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: authMiddleware,
		VehicleOwner:   vehicleService.OwnerID,
	})
	return app, authService.TokenManager()
}

func jsonRequest(method, target, token string, payload any) *http.Request {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

// registerAccount drives the real registration endpoint and returns the new
// account id and its bearer token.
func registerAccount(t *testing.T, app *fiber.App, email string, role domain.Role) (string, string) {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Test " + email,
		"email":    email,
		"password": "long-enough-pass",
		"role":     string(role),
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := decodeData(t, resp)
	user := data["user"].(map[string]any)
	authPart := data["auth"].(map[string]any)
	return user["id"].(string), authPart["token"].(string)
}

func TestGuardedRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	userID, userToken := registerAccount(t, app, "alice@example.com", domain.RoleUser)
	_, driverToken := registerAccount(t, app, "bob@example.com", domain.RoleDriver)
	_, otherDriverToken := registerAccount(t, app, "carol@example.com", domain.RoleDriver)

	t.Run("open routes need no token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/users/"+userID, "", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("role gate blocks non-admins", func(t *testing.T) {
		for _, token := range []string{userToken, driverToken} {
			resp, err := app.Test(jsonRequest(http.MethodGet, "/users", token, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		}
	})

	t.Run("owner reads own profile", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/users/"+userID, userToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeData(t, resp)
		assert.Equal(t, "alice@example.com", data["email"])
	})

	t.Run("owner gate blocks other accounts", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/users/"+userID, driverToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("wrong password rejected at login", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", "", fiber.Map{
			"email":    "alice@example.com",
			"password": "wrong-pass",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("vehicle ownership via lookup", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/vehicles", driverToken, fiber.Map{
			"make":          "Toyota",
			"model":         "Prius",
			"year":          2020,
			"license_plate": "abc-123",
			"capacity":      4,
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		vehicleID := decodeData(t, resp)["id"].(string)

		owner, err := app.Test(jsonRequest(http.MethodGet, "/vehicles/"+vehicleID, driverToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, owner.StatusCode)

		other, err := app.Test(jsonRequest(http.MethodGet, "/vehicles/"+vehicleID, otherDriverToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, other.StatusCode)

		missing, err := app.Test(jsonRequest(http.MethodGet, "/vehicles/"+uuid.NewString(), otherDriverToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	})

	t.Run("passengers cannot register vehicles", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/vehicles", userToken, fiber.Map{
			"make":          "Toyota",
			"model":         "Prius",
			"year":          2020,
			"license_plate": "abc-999",
			"capacity":      4,
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("validation failures are 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register", "", fiber.Map{
			"name":     "",
			"email":    "not-an-email",
			"password": "short",
			"role":     "admin",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("error envelope carries a code", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/users", userToken, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, "FORBIDDEN", envelope.Error.Code)
		assert.NotEmpty(t, envelope.Error.Message)
	})
}

func TestAdminRoutes(t *testing.T) {
	app, tokens := newTestApp(t)

	_, _ = registerAccount(t, app, fmt.Sprintf("driver-%s@example.com", uuid.NewString()[:8]), domain.RoleDriver)

	// Admin accounts are seeded out of band; mint the token directly.
	adminToken, _, err := tokens.Generate("admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/drivers", adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodGet, "/users", adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
