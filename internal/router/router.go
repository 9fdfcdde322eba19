package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acadia-edu/acadia-go-api/internal/config"
	"github.com/acadia-edu/acadia-go-api/internal/handler"
	"github.com/acadia-edu/acadia-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler    *handler.StudentHandler
	FacultyHandler    *handler.FacultyHandler
	CourseHandler     *handler.CourseHandler
	RoutineHandler    *handler.RoutineHandler
	AttendanceHandler *handler.AttendanceHandler
	GradeHandler      *handler.GradeHandler
	CalendarHandler   *handler.CalendarHandler
	DashboardHandler  *handler.DashboardHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students"))
	}
	if deps.FacultyHandler != nil {
		deps.FacultyHandler.Register(api.Group("/faculty"))
	}
	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api.Group("/courses"))
	}
	if deps.RoutineHandler != nil {
		deps.RoutineHandler.Register(api.Group("/routine"))
	}
	if deps.AttendanceHandler != nil {
		deps.AttendanceHandler.Register(api.Group("/attendance"))
	}
	if deps.GradeHandler != nil {
		deps.GradeHandler.Register(api.Group("/grades"))
	}
	if deps.CalendarHandler != nil {
		deps.CalendarHandler.Register(api.Group("/calendar"))
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard"))
	}
}
