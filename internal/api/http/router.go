package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ride-sharing-service/internal/api/http/handlers"
	"github.com/spec-kit/ride-sharing-service/internal/auth"
	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Users        *handlers.UsersHandler
	Drivers      *handlers.DriversHandler
	Rides        *handlers.RidesHandler
	Vehicles     *handlers.VehiclesHandler
	Transactions *handlers.TransactionsHandler
	Analytics    *handlers.AnalyticsHandler

	AuthMiddleware *auth.AuthMiddleware
	// VehicleOwner resolves a vehicle id to its owning driver for the
	// ownership guard on /vehicles/:id.
	VehicleOwner auth.OwnerLookupFunc
}

// RegisterRoutes wires the route table. Each route declares its guard chain
// inline: principal resolution first, then role or ownership gates, then the
// handler. The first rejecting guard ends the request.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	resolve := cfg.AuthMiddleware.Handle

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Auth.Register)
	app.Post("/auth/login", cfg.Auth.Login)

	app.Get("/users", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	app.Get("/users/:id", resolve, auth.RequireOwnerParam("id"), cfg.Users.Get)
	app.Patch("/users/:id", resolve, auth.RequireOwnerParam("id"), cfg.Users.Update)
	app.Delete("/users/:id", resolve, auth.RequireOwnerParam("id"), cfg.Users.Delete)

	app.Get("/drivers", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Drivers.List)
	app.Post("/drivers", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Drivers.Create)
	app.Patch("/drivers/:id", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Drivers.Update)
	app.Delete("/drivers/:id", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Drivers.Delete)

	app.Get("/rides", resolve, cfg.Rides.List)
	app.Post("/rides", resolve, auth.RequireRole(domain.RoleAdmin, domain.RoleUser), cfg.Rides.Create)
	app.Patch("/rides/:id", resolve, cfg.Rides.Update)
	app.Delete("/rides/:id", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Rides.Delete)

	app.Get("/vehicles", resolve, auth.RequireRole(domain.RoleAdmin, domain.RoleDriver), cfg.Vehicles.List)
	app.Post("/vehicles", resolve, auth.RequireRole(domain.RoleDriver), cfg.Vehicles.Register)
	app.Get("/vehicles/:id", resolve, auth.RequireOwnerLookup("id", cfg.VehicleOwner), cfg.Vehicles.Get)
	app.Delete("/vehicles/:id", resolve, auth.RequireOwnerLookup("id", cfg.VehicleOwner), cfg.Vehicles.Delete)

	app.Get("/transactions", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Transactions.List)
	app.Post("/transactions", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Transactions.Create)
	app.Patch("/transactions/:id", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Transactions.Update)

	app.Get("/analytics/passengers", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Analytics.Passengers)
	app.Get("/analytics/drivers", resolve, auth.RequireRole(domain.RoleAdmin), cfg.Analytics.Drivers)
}
