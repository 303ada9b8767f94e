package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// serviceError maps a roster service error to an HTTP response. Reference
// checks fail with "... not found" — client mistakes, not server faults.
func (h *Handlers) serviceError(c *fiber.Ctx, err error, op string) error {
	if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "before start date") {
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	h.logger.Error("Roster operation failed", zap.String("op", op), zap.Error(err))
	return jsonError(c, fiber.StatusInternalServerError, "failed to "+op)
}

// --- schedules ---

func (h *Handlers) CreateSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	schedule := req.toModel()
	if err := h.roster.CreateSchedule(c.Context(), schedule); err != nil {
		return h.serviceError(c, err, "create schedule")
	}

	return c.Status(fiber.StatusCreated).JSON(schedule)
}

func (h *Handlers) GetSchedule(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	schedule, err := h.roster.GetSchedule(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get schedule", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get schedule")
	}
	if schedule == nil {
		return jsonError(c, fiber.StatusNotFound, "schedule not found")
	}

	return c.JSON(schedule)
}

// ListSchedules supports optional ?teacher_id= and ?day= filters.
func (h *Handlers) ListSchedules(c *fiber.Ctx) error {
	teacherID := int64(c.QueryInt("teacher_id"))
	day := c.QueryInt("day")
	if rawDay := c.Query("day"); rawDay != "" && (day < 1 || day > 7) {
		return jsonError(c, fiber.StatusBadRequest, "day must be 1..7")
	}

	schedules, err := h.roster.ListSchedules(c.Context(), teacherID, day)
	if err != nil {
		h.logger.Error("Failed to list schedules", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list schedules")
	}

	return c.JSON(schedules)
}

func (h *Handlers) UpdateSchedule(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req scheduleRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.roster.GetSchedule(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get schedule")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "schedule not found")
	}

	schedule := req.toModel()
	schedule.ID = id
	if err := h.roster.UpdateSchedule(c.Context(), schedule); err != nil {
		return h.serviceError(c, err, "update schedule")
	}

	return c.JSON(schedule)
}

func (h *Handlers) DeleteSchedule(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.roster.GetSchedule(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get schedule")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "schedule not found")
	}

	if err := h.roster.DeleteSchedule(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete schedule", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete schedule")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// --- duties ---

func (h *Handlers) CreateDuty(c *fiber.Ctx) error {
	var req dutyRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	duty := req.toModel()
	if err := h.roster.CreateDuty(c.Context(), duty); err != nil {
		return h.serviceError(c, err, "create duty")
	}

	return c.Status(fiber.StatusCreated).JSON(duty)
}

func (h *Handlers) GetDuty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	duty, err := h.roster.GetDuty(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get duty", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get duty")
	}
	if duty == nil {
		return jsonError(c, fiber.StatusNotFound, "duty not found")
	}

	return c.JSON(duty)
}

// ListDuties supports an optional ?day= filter.
func (h *Handlers) ListDuties(c *fiber.Ctx) error {
	day := c.QueryInt("day")
	if rawDay := c.Query("day"); rawDay != "" && (day < 1 || day > 7) {
		return jsonError(c, fiber.StatusBadRequest, "day must be 1..7")
	}

	duties, err := h.roster.ListDuties(c.Context(), day)
	if err != nil {
		h.logger.Error("Failed to list duties", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list duties")
	}

	return c.JSON(duties)
}

func (h *Handlers) UpdateDuty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dutyRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.roster.GetDuty(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get duty")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "duty not found")
	}

	duty := req.toModel()
	duty.ID = id
	if err := h.roster.UpdateDuty(c.Context(), duty); err != nil {
		return h.serviceError(c, err, "update duty")
	}

	return c.JSON(duty)
}

func (h *Handlers) DeleteDuty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.roster.GetDuty(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get duty")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "duty not found")
	}

	if err := h.roster.DeleteDuty(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete duty", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete duty")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// --- absences ---

func (h *Handlers) CreateAbsence(c *fiber.Ctx) error {
	var req absenceRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	absence, err := req.toModel()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.roster.CreateAbsence(c.Context(), absence); err != nil {
		return h.serviceError(c, err, "create absence")
	}

	return c.Status(fiber.StatusCreated).JSON(absence)
}

func (h *Handlers) GetAbsence(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	absence, err := h.roster.GetAbsence(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get absence", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get absence")
	}
	if absence == nil {
		return jsonError(c, fiber.StatusNotFound, "absence not found")
	}

	return c.JSON(absence)
}

func (h *Handlers) ListAbsences(c *fiber.Ctx) error {
	absences, err := h.roster.ListAbsences(c.Context())
	if err != nil {
		h.logger.Error("Failed to list absences", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list absences")
	}

	return c.JSON(absences)
}

func (h *Handlers) UpdateAbsence(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req absenceRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.roster.GetAbsence(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get absence")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "absence not found")
	}

	absence, err := req.toModel()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	absence.ID = id

	if err := h.roster.UpdateAbsence(c.Context(), absence); err != nil {
		return h.serviceError(c, err, "update absence")
	}

	return c.JSON(absence)
}

func (h *Handlers) DeleteAbsence(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.roster.GetAbsence(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get absence")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "absence not found")
	}

	if err := h.roster.DeleteAbsence(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete absence", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete absence")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
