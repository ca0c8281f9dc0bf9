package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ride-sharing-service/internal/api/dto"
	"github.com/spec-kit/ride-sharing-service/internal/service"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// DriversHandler exposes the admin driver directory.
type DriversHandler struct {
	drivers *service.DriverService
}

// NewDriversHandler constructs handler.
func NewDriversHandler(driverService *service.DriverService) *DriversHandler {
	return &DriversHandler{drivers: driverService}
}

// List handles GET /drivers.
func (h *DriversHandler) List(c *fiber.Ctx) error {
	drivers, err := h.drivers.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.DriverResponse, 0, len(drivers))
	for i := range drivers {
		items = append(items, dto.NewDriverResponse(&drivers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create handles POST /drivers.
func (h *DriversHandler) Create(c *fiber.Ctx) error {
	var req dto.DriverCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	driver, err := h.drivers.Create(c.UserContext(), service.DriverCreateInput{
		UserID:      req.UserID,
		Name:        req.Name,
		VehicleType: req.VehicleType,
		Available:   available,
		Rating:      req.Rating,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDriverResponse(driver)})
}

// Update handles PATCH /drivers/:id.
func (h *DriversHandler) Update(c *fiber.Ctx) error {
	var req dto.DriverUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	driver, err := h.drivers.Update(c.UserContext(), c.Params("id"), service.DriverUpdateInput{
		Name:        req.Name,
		VehicleType: req.VehicleType,
		Available:   req.Available,
		Rating:      req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDriverResponse(driver)})
}

// Delete handles DELETE /drivers/:id.
func (h *DriversHandler) Delete(c *fiber.Ctx) error {
	if err := h.drivers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": 1}})
}
