package handlers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/model"
	"github.com/okulops/dashboard/internal/timetable"
)

// CurrentPeriod returns the bell period containing "now". A null period is
// a valid 200 response: outside class hours.
func (h *Handlers) CurrentPeriod(c *fiber.Ctx) error {
	now := time.Now()

	period, err := h.dashboard.CurrentPeriod(c.Context(), now)
	if err != nil {
		h.logger.Error("Failed to resolve current period", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to resolve current period")
	}

	return c.JSON(fiber.Map{
		"clock":       timetable.ClockTime(now),
		"day_of_week": timetable.DayOfWeek(now),
		"period":      period, // null outside class hours
	})
}

// TeacherAvailability answers "is this teacher free". With ?day= and
// ?period= it checks that exact slot; without them it checks the slot "now"
// falls into. Absences are always checked against today's date.
func (h *Handlers) TeacherAvailability(c *fiber.Ctx) error {
	teacherID, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	now := time.Now()
	dayRaw := c.Query("day")
	periodRaw := c.Query("period")

	var availability timetable.Availability
	switch {
	case dayRaw == "" && periodRaw == "":
		availability, err = h.dashboard.AvailabilityNow(c.Context(), teacherID, now)
	case dayRaw != "" && periodRaw != "":
		day, convErr := strconv.Atoi(dayRaw)
		if convErr != nil || day < 1 || day > 7 {
			return jsonError(c, fiber.StatusBadRequest, "day must be 1..7 (Monday=1)")
		}
		periodID, convErr := strconv.ParseInt(periodRaw, 10, 64)
		if convErr != nil || periodID < 1 {
			return jsonError(c, fiber.StatusBadRequest, "invalid period")
		}
		availability, err = h.dashboard.Availability(c.Context(), teacherID, day, periodID, now)
	default:
		return jsonError(c, fiber.StatusBadRequest, "day and period must be given together")
	}

	if err != nil {
		h.logger.Error("Failed to resolve availability", zap.Int64("teacher_id", teacherID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to resolve availability")
	}

	return c.JSON(availability)
}

// TeacherItinerary returns one teacher's ordered lesson sequence for a day
// (?day=, defaulting to today). An empty list means free all day.
func (h *Handlers) TeacherItinerary(c *fiber.Ctx) error {
	teacherID, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	day := timetable.DayOfWeek(time.Now())
	if raw := c.Query("day"); raw != "" {
		day, err = strconv.Atoi(raw)
		if err != nil || day < 1 || day > 7 {
			return jsonError(c, fiber.StatusBadRequest, "day must be 1..7 (Monday=1)")
		}
	}

	stops, err := h.dashboard.TeacherItinerary(c.Context(), teacherID, day)
	if err != nil {
		h.logger.Error("Failed to build itinerary", zap.Int64("teacher_id", teacherID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to build itinerary")
	}

	if stops == nil {
		stops = []timetable.ItineraryStop{}
	}

	return c.JSON(fiber.Map{
		"teacher_id":  teacherID,
		"day_of_week": day,
		"stops":       stops,
	})
}

// ActiveLessons returns one row per class: the lesson running right now or
// an explicit empty slot.
func (h *Handlers) ActiveLessons(c *fiber.Ctx) error {
	now := time.Now()

	rows, current, err := h.dashboard.ActiveLessons(c.Context(), now)
	if err != nil {
		h.logger.Error("Failed to build active lessons view", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to build active lessons view")
	}

	if rows == nil {
		rows = []timetable.ActiveLesson{}
	}

	return c.JSON(fiber.Map{
		"period":  current,
		"lessons": rows,
	})
}

type rosterEntryResponse struct {
	TeacherID int64       `json:"teacher_id"`
	Duty      *model.Duty `json:"duty"`
	Active    bool        `json:"active"`
}

type rosterLocationResponse struct {
	LocationID int64                 `json:"location_id"`
	Entries    []rosterEntryResponse `json:"entries"`
}

// DutyRoster returns today's duty assignments grouped by location, each
// entry flagged active when its duty covers the current period.
func (h *Handlers) DutyRoster(c *fiber.Ctx) error {
	now := time.Now()

	roster, current, err := h.dashboard.DutyRoster(c.Context(), now)
	if err != nil {
		h.logger.Error("Failed to build duty roster", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to build duty roster")
	}

	locations := make([]rosterLocationResponse, 0, len(roster))
	for locationID, entries := range roster {
		resp := rosterLocationResponse{LocationID: locationID}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, rosterEntryResponse{
				TeacherID: e.TeacherID,
				Duty:      e.Duty,
				Active:    e.ActiveAt(current),
			})
		}
		locations = append(locations, resp)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].LocationID < locations[j].LocationID })

	return c.JSON(fiber.Map{
		"period":    current,
		"locations": locations,
	})
}

// Conflicts lists every double-booked slot. Conflicts are data, not errors:
// a timetable full of them still answers 200.
func (h *Handlers) Conflicts(c *fiber.Ctx) error {
	conflicts, err := h.dashboard.Conflicts(c.Context())
	if err != nil {
		h.logger.Error("Failed to scan for conflicts", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to scan for conflicts")
	}

	if conflicts == nil {
		conflicts = []timetable.Conflict{}
	}

	return c.JSON(fiber.Map{
		"count":     len(conflicts),
		"conflicts": conflicts,
	})
}
