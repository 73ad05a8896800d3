package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/tdevries/vintedwatch/internal/store"
)

// RegisterRoutes wires all API routes onto the Echo instance.
func RegisterRoutes(e *echo.Echo, s store.Store, sweeper Sweeper) {
	health := NewHealthHandler(s)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	v1 := e.Group("/api/v1")

	watches := NewWatchHandler(s)
	v1.GET("/watches", watches.List)
	v1.GET("/watches/:id", watches.Get)
	v1.POST("/watches", watches.Create)
	v1.DELETE("/watches/:id", watches.Deactivate)

	notifications := NewNotificationsHandler(s)
	v1.GET("/watches/:id/notifications", notifications.ListByWatch)

	listings := NewListingsHandler(s)
	v1.GET("/listings", listings.List)
	v1.GET("/listings/:id", listings.Get)

	jobs := NewJobsHandler(s)
	v1.GET("/jobs", jobs.List)
	v1.GET("/jobs/:job_name", jobs.History)

	system := NewSystemStateHandler(s)
	v1.GET("/system/state", system.Get)

	sweep := NewSweepHandler(sweeper)
	v1.POST("/sweep", sweep.Trigger)
}
