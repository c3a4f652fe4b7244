package handlers

import (
	"net/http"

	"sauna_api/internal/models"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// requireSauna answers 404 and returns false when the path id is not ours.
// It runs before body binding so a foreign id never reaches validation.
func (h *Handler) requireSauna(c *gin.Context) (string, bool) {
	id := c.Param("sauna_id")
	if id != h.services.Discover().SaunaID {
		writeError(c, http.StatusNotFound, detailSaunaNotFound)
		return "", false
	}
	return id, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Discover the sauna
// @Tags         Sauna Discovery
// @Produce      json
// @Success      200  {object}  models.SaunaID
// @Router       /sauna/ping [get]
func (h *Handler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Discover())
}

// @Summary      Get sauna status
// @Tags         Status
// @Produce      json
// @Param        sauna_id  path  string  true  "Sauna ID"
// @Success      200  {object}  models.Status
// @Failure      404  {object}  models.HTTPError
// @Router       /sauna/{sauna_id}/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	st, err := h.services.GetStatus(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, "sauna_get_status_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Update sauna status
// @Description  Only the fields present in the body are changed. A list field replaces the whole list.
// @Tags         Status
// @Accept       json
// @Produce      json
// @Param        sauna_id  path  string               true  "Sauna ID"
// @Param        body      body  models.StatusUpdate  true  "Fields to change"
// @Success      200  {object}  models.Status
// @Failure      400  {object}  models.HTTPError
// @Failure      401  {object}  models.HTTPError
// @Failure      404  {object}  models.HTTPError
// @Router       /sauna/{sauna_id}/status [put]
// @Security     BearerAuth
func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	var upd models.StatusUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		writeError(c, http.StatusBadRequest, detailInvalidBodyPref+err.Error())
		return
	}
	st, err := h.services.UpdateStatus(c.Request.Context(), id, upd)
	if err != nil {
		h.respondServiceError(c, err, "sauna_update_status_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      List schedules
// @Tags         Schedules
// @Produce      json
// @Param        sauna_id  path  string  true  "Sauna ID"
// @Success      200  {array}   models.Schedule
// @Failure      404  {object}  models.HTTPError
// @Router       /sauna/{sauna_id}/schedules [get]
func (h *Handler) getSchedules(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	schedules, err := h.services.ListSchedules(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, "sauna_list_schedules_failed")
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// @Summary      Add schedules
// @Description  All-or-nothing: if any id already exists (or repeats in the body) nothing is added.
// @Tags         Schedules
// @Accept       json
// @Produce      json
// @Param        sauna_id  path  string             true  "Sauna ID"
// @Param        body      body  []models.Schedule  true  "Schedules to add"
// @Success      200  {array}   models.Schedule
// @Failure      400  {object}  models.HTTPError
// @Failure      401  {object}  models.HTTPError
// @Failure      404  {object}  models.HTTPError
// @Failure      409  {object}  models.HTTPError
// @Router       /sauna/{sauna_id}/schedules [post]
// @Security     BearerAuth
func (h *Handler) addSchedules(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	var in []models.Schedule
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, detailInvalidBodyPref+err.Error())
		return
	}
	schedules, err := h.services.AddSchedules(c.Request.Context(), id, in)
	if err != nil {
		h.respondServiceError(c, err, "sauna_add_schedules_failed", "count", len(in))
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// @Summary      Delete a schedule
// @Tags         Schedules
// @Produce      json
// @Param        sauna_id     path  string  true  "Sauna ID"
// @Param        schedule_id  path  string  true  "Schedule ID"
// @Success      200  {array}   models.Schedule
// @Failure      401  {object}  models.HTTPError
// @Failure      404  {object}  models.HTTPError  "Sauna ID or Schedule ID not found"
// @Router       /sauna/{sauna_id}/schedules/{schedule_id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteSchedule(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	scheduleID := c.Param("schedule_id")
	schedules, err := h.services.DeleteSchedule(c.Request.Context(), id, scheduleID)
	if err != nil {
		h.respondServiceError(c, err, "sauna_delete_schedule_failed", "schedule_id", scheduleID)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// @Summary      List programs
// @Tags         Programs
// @Produce      json
// @Param        sauna_id  path  string  true  "Sauna ID"
// @Success      200  {array}   models.Program
// @Failure      404  {object}  models.HTTPError
// @Router       /sauna/{sauna_id}/programs [get]
func (h *Handler) getPrograms(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	programs, err := h.services.ListPrograms(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, "sauna_list_programs_failed")
		return
	}
	c.JSON(http.StatusOK, programs)
}
