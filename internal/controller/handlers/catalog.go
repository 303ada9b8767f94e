package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/model"
)

// --- periods ---

func (h *Handlers) CreatePeriod(c *fiber.Ctx) error {
	var req periodRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	period := req.toModel()
	if err := h.catalog.CreatePeriod(c.Context(), period); err != nil {
		h.logger.Error("Failed to create period", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to create period")
	}

	return c.Status(fiber.StatusCreated).JSON(period)
}

func (h *Handlers) GetPeriod(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	period, err := h.catalog.GetPeriod(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get period", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get period")
	}
	if period == nil {
		return jsonError(c, fiber.StatusNotFound, "period not found")
	}

	return c.JSON(period)
}

func (h *Handlers) ListPeriods(c *fiber.Ctx) error {
	periods, err := h.catalog.ListPeriods(c.Context())
	if err != nil {
		h.logger.Error("Failed to list periods", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list periods")
	}

	return c.JSON(periods)
}

func (h *Handlers) UpdatePeriod(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req periodRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetPeriod(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get period")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "period not found")
	}

	period := req.toModel()
	period.ID = id
	if err := h.catalog.UpdatePeriod(c.Context(), period); err != nil {
		h.logger.Error("Failed to update period", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to update period")
	}

	return c.JSON(period)
}

func (h *Handlers) DeletePeriod(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetPeriod(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get period")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "period not found")
	}

	if err := h.catalog.DeletePeriod(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete period", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete period")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// --- teachers ---

func (h *Handlers) CreateTeacher(c *fiber.Ctx) error {
	var req teacherRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacher := req.toModel()
	if err := h.catalog.CreateTeacher(c.Context(), teacher); err != nil {
		h.logger.Error("Failed to create teacher", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to create teacher")
	}

	return c.Status(fiber.StatusCreated).JSON(teacher)
}

func (h *Handlers) GetTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacher, err := h.catalog.GetTeacher(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get teacher", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get teacher")
	}
	if teacher == nil {
		return jsonError(c, fiber.StatusNotFound, "teacher not found")
	}

	return c.JSON(teacher)
}

func (h *Handlers) ListTeachers(c *fiber.Ctx) error {
	teachers, err := h.catalog.ListTeachers(c.Context())
	if err != nil {
		h.logger.Error("Failed to list teachers", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list teachers")
	}

	return c.JSON(teachers)
}

func (h *Handlers) UpdateTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req teacherRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetTeacher(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get teacher")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "teacher not found")
	}

	teacher := req.toModel()
	teacher.ID = id
	teacher.CreatedAt = existing.CreatedAt
	if err := h.catalog.UpdateTeacher(c.Context(), teacher); err != nil {
		h.logger.Error("Failed to update teacher", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to update teacher")
	}

	return c.JSON(teacher)
}

func (h *Handlers) DeleteTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetTeacher(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get teacher")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "teacher not found")
	}

	if err := h.catalog.DeleteTeacher(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete teacher", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete teacher")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// --- classes ---

func (h *Handlers) CreateClass(c *fiber.Ctx) error {
	var req nameRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	class := &model.ClassRoom{Name: req.Name}
	if err := h.catalog.CreateClass(c.Context(), class); err != nil {
		h.logger.Error("Failed to create class", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

func (h *Handlers) GetClass(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	class, err := h.catalog.GetClass(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get class", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get class")
	}
	if class == nil {
		return jsonError(c, fiber.StatusNotFound, "class not found")
	}

	return c.JSON(class)
}

func (h *Handlers) ListClasses(c *fiber.Ctx) error {
	classes, err := h.catalog.ListClasses(c.Context())
	if err != nil {
		h.logger.Error("Failed to list classes", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list classes")
	}

	return c.JSON(classes)
}

func (h *Handlers) UpdateClass(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req nameRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetClass(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get class")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "class not found")
	}

	class := &model.ClassRoom{ID: id, Name: req.Name}
	if err := h.catalog.UpdateClass(c.Context(), class); err != nil {
		h.logger.Error("Failed to update class", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to update class")
	}

	return c.JSON(class)
}

func (h *Handlers) DeleteClass(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetClass(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get class")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "class not found")
	}

	if err := h.catalog.DeleteClass(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete class", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete class")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// --- subjects ---

func (h *Handlers) CreateSubject(c *fiber.Ctx) error {
	var req nameRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	subject := &model.Subject{Name: req.Name}
	if err := h.catalog.CreateSubject(c.Context(), subject); err != nil {
		h.logger.Error("Failed to create subject", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to create subject")
	}

	return c.Status(fiber.StatusCreated).JSON(subject)
}

func (h *Handlers) GetSubject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	subject, err := h.catalog.GetSubject(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get subject", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get subject")
	}
	if subject == nil {
		return jsonError(c, fiber.StatusNotFound, "subject not found")
	}

	return c.JSON(subject)
}

func (h *Handlers) ListSubjects(c *fiber.Ctx) error {
	subjects, err := h.catalog.ListSubjects(c.Context())
	if err != nil {
		h.logger.Error("Failed to list subjects", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list subjects")
	}

	return c.JSON(subjects)
}

func (h *Handlers) UpdateSubject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req nameRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetSubject(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get subject")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "subject not found")
	}

	subject := &model.Subject{ID: id, Name: req.Name}
	if err := h.catalog.UpdateSubject(c.Context(), subject); err != nil {
		h.logger.Error("Failed to update subject", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to update subject")
	}

	return c.JSON(subject)
}

func (h *Handlers) DeleteSubject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetSubject(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get subject")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "subject not found")
	}

	if err := h.catalog.DeleteSubject(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete subject", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete subject")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// --- duty locations ---

func (h *Handlers) CreateLocation(c *fiber.Ctx) error {
	var req nameRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	location := &model.DutyLocation{Name: req.Name}
	if err := h.catalog.CreateLocation(c.Context(), location); err != nil {
		h.logger.Error("Failed to create location", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to create location")
	}

	return c.Status(fiber.StatusCreated).JSON(location)
}

func (h *Handlers) GetLocation(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	location, err := h.catalog.GetLocation(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get location", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to get location")
	}
	if location == nil {
		return jsonError(c, fiber.StatusNotFound, "location not found")
	}

	return c.JSON(location)
}

func (h *Handlers) ListLocations(c *fiber.Ctx) error {
	locations, err := h.catalog.ListLocations(c.Context())
	if err != nil {
		h.logger.Error("Failed to list locations", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to list locations")
	}

	return c.JSON(locations)
}

func (h *Handlers) UpdateLocation(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req nameRequest
	if err := h.parseBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetLocation(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get location")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "location not found")
	}

	location := &model.DutyLocation{ID: id, Name: req.Name}
	if err := h.catalog.UpdateLocation(c.Context(), location); err != nil {
		h.logger.Error("Failed to update location", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to update location")
	}

	return c.JSON(location)
}

func (h *Handlers) DeleteLocation(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := h.catalog.GetLocation(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to get location")
	}
	if existing == nil {
		return jsonError(c, fiber.StatusNotFound, "location not found")
	}

	if err := h.catalog.DeleteLocation(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete location", zap.Int64("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete location")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
