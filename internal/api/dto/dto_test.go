package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

func assertValidationDetail(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, field)
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "long-enough", Role: "user"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"blank name", func(r *RegisterRequest) { r.Name = "  " }, "name"},
		{"bad email", func(r *RegisterRequest) { r.Email = "no-at-sign" }, "email"},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }, "password"},
		{"admin role rejected", func(r *RegisterRequest) { r.Role = "admin" }, "role"},
		{"unknown role rejected", func(r *RegisterRequest) { r.Role = "superuser" }, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assertValidationDetail(t, req.Validate(), tt.field)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "alice@example.com", Password: "x"}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "alice@example.com"}).Validate())
}

func TestRideCreateRequestValidate(t *testing.T) {
	valid := RideCreateRequest{Pickup: "A", Destination: "B", Fare: 10}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RideCreateRequest)
		field  string
	}{
		{"blank pickup", func(r *RideCreateRequest) { r.Pickup = " " }, "pickup"},
		{"blank destination", func(r *RideCreateRequest) { r.Destination = "" }, "destination"},
		{"negative fare", func(r *RideCreateRequest) { r.Fare = -1 }, "fare"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assertValidationDetail(t, req.Validate(), tt.field)
		})
	}
}

func TestRideUpdateRequestValidate(t *testing.T) {
	for _, status := range []string{"requested", "accepted", "ongoing", "completed", "cancelled"} {
		req := RideUpdateRequest{Status: status}
		assert.NoError(t, req.Validate(), "status %q", status)
	}

	for _, status := range []string{"", "done", "REQUESTED"} {
		req := RideUpdateRequest{Status: status}
		assert.Error(t, req.Validate(), "status %q", status)
	}
}

func TestVehicleRegisterRequestValidate(t *testing.T) {
	valid := VehicleRegisterRequest{Make: "Toyota", Model: "Prius", Year: 2020, LicensePlate: "ABC-123", Capacity: 4}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*VehicleRegisterRequest)
		field  string
	}{
		{"blank make", func(r *VehicleRegisterRequest) { r.Make = "" }, "make"},
		{"blank model", func(r *VehicleRegisterRequest) { r.Model = "" }, "model"},
		{"ancient year", func(r *VehicleRegisterRequest) { r.Year = 1900 }, "year"},
		{"future year", func(r *VehicleRegisterRequest) { r.Year = 2100 }, "year"},
		{"blank plate", func(r *VehicleRegisterRequest) { r.LicensePlate = "" }, "license_plate"},
		{"zero capacity", func(r *VehicleRegisterRequest) { r.Capacity = 0 }, "capacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assertValidationDetail(t, req.Validate(), tt.field)
		})
	}
}

func TestUserUpdateRequestValidate(t *testing.T) {
	name := "Alice"
	badEmail := "no-at-sign"

	empty := UserUpdateRequest{}
	assert.Error(t, empty.Validate())

	ok := UserUpdateRequest{Name: &name}
	assert.NoError(t, ok.Validate())

	bad := UserUpdateRequest{Email: &badEmail}
	assertValidationDetail(t, bad.Validate(), "email")
}
