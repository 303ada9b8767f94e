package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/controller/handlers"
)

// NewRouter builds the fiber app with all routes and middleware attached.
func NewRouter(h *handlers.Handlers, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "okulops-dashboard",
		DisableStartupMessage: true,
	})

	app.Use(handlers.RequestID())
	app.Use(handlers.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api/v1")

	periods := api.Group("/periods")
	periods.Post("/", h.CreatePeriod)
	periods.Get("/", h.ListPeriods)
	periods.Get("/:id", h.GetPeriod)
	periods.Put("/:id", h.UpdatePeriod)
	periods.Delete("/:id", h.DeletePeriod)

	teachers := api.Group("/teachers")
	teachers.Post("/", h.CreateTeacher)
	teachers.Get("/", h.ListTeachers)
	teachers.Get("/:id", h.GetTeacher)
	teachers.Put("/:id", h.UpdateTeacher)
	teachers.Delete("/:id", h.DeleteTeacher)
	teachers.Get("/:id/availability", h.TeacherAvailability)
	teachers.Get("/:id/itinerary", h.TeacherItinerary)

	classes := api.Group("/classes")
	classes.Post("/", h.CreateClass)
	classes.Get("/", h.ListClasses)
	classes.Get("/:id", h.GetClass)
	classes.Put("/:id", h.UpdateClass)
	classes.Delete("/:id", h.DeleteClass)

	subjects := api.Group("/subjects")
	subjects.Post("/", h.CreateSubject)
	subjects.Get("/", h.ListSubjects)
	subjects.Get("/:id", h.GetSubject)
	subjects.Put("/:id", h.UpdateSubject)
	subjects.Delete("/:id", h.DeleteSubject)

	locations := api.Group("/locations")
	locations.Post("/", h.CreateLocation)
	locations.Get("/", h.ListLocations)
	locations.Get("/:id", h.GetLocation)
	locations.Put("/:id", h.UpdateLocation)
	locations.Delete("/:id", h.DeleteLocation)

	schedules := api.Group("/schedules")
	schedules.Post("/", h.CreateSchedule)
	schedules.Get("/", h.ListSchedules)
	schedules.Get("/:id", h.GetSchedule)
	schedules.Put("/:id", h.UpdateSchedule)
	schedules.Delete("/:id", h.DeleteSchedule)

	duties := api.Group("/duties")
	duties.Post("/", h.CreateDuty)
	duties.Get("/", h.ListDuties)
	duties.Get("/:id", h.GetDuty)
	duties.Put("/:id", h.UpdateDuty)
	duties.Delete("/:id", h.DeleteDuty)

	absences := api.Group("/absences")
	absences.Post("/", h.CreateAbsence)
	absences.Get("/", h.ListAbsences)
	absences.Get("/:id", h.GetAbsence)
	absences.Put("/:id", h.UpdateAbsence)
	absences.Delete("/:id", h.DeleteAbsence)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/current-period", h.CurrentPeriod)
	dashboard.Get("/active-lessons", h.ActiveLessons)
	dashboard.Get("/duty-roster", h.DutyRoster)
	dashboard.Get("/conflicts", h.Conflicts)

	return app
}
