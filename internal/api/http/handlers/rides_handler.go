package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ride-sharing-service/internal/api/dto"
	"github.com/spec-kit/ride-sharing-service/internal/auth"
	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/service"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// RidesHandler exposes ride endpoints.
type RidesHandler struct {
	rides *service.RideService
}

// NewRidesHandler constructs handler.
func NewRidesHandler(rideService *service.RideService) *RidesHandler {
	return &RidesHandler{rides: rideService}
}

// List handles GET /rides.
func (h *RidesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	rides, err := h.rides.List(c.UserContext(), principal)
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.RideResponse, 0, len(rides))
	for i := range rides {
		items = append(items, dto.NewRideResponse(&rides[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create handles POST /rides.
func (h *RidesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.RideCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ride, err := h.rides.Create(c.UserContext(), principal, service.RideCreateInput{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Fare:        req.Fare,
		UserID:      req.UserID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewRideResponse(ride)})
}

// Update handles PATCH /rides/:id.
func (h *RidesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.RideUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ride, err := h.rides.UpdateStatus(c.UserContext(), principal, c.Params("id"), service.RideUpdateInput{
		Status:   domain.RideStatus(req.Status),
		DriverID: req.DriverID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRideResponse(ride)})
}

// Delete handles DELETE /rides/:id.
func (h *RidesHandler) Delete(c *fiber.Ctx) error {
	if err := h.rides.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": 1}})
}
