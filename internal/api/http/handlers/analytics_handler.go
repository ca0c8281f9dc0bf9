package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ride-sharing-service/internal/service"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// AnalyticsHandler exposes the admin aggregation endpoints.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsService}
}

// Passengers handles GET /analytics/passengers.
func (h *AnalyticsHandler) Passengers(c *fiber.Ctx) error {
	stats, err := h.analytics.PassengerStats(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Drivers handles GET /analytics/drivers.
func (h *AnalyticsHandler) Drivers(c *fiber.Ctx) error {
	stats, err := h.analytics.DriverStats(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": stats})
}
