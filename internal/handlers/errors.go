package handlers

import (
	"errors"
	"net/http"

	"sauna_api/internal/models"
	"sauna_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing error details.
const (
	detailSaunaNotFound    = "Sauna ID does not exist"
	detailScheduleNotFound = "Schedule ID does not exist"
	detailScheduleConflict = "Schedule ID already exists"
	detailInternal         = "internal server error"
	detailInvalidBodyPref  = "invalid body: "
	detailSignUpDisabled   = "sign-up is disabled"
)

func writeError(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, models.HTTPError{Detail: detail})
}

// respondServiceError maps domain errors to status codes. Anything unknown is
// logged under logKey and hidden behind a generic 500.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrSaunaNotFound):
		writeError(c, http.StatusNotFound, detailSaunaNotFound)
	case errors.Is(err, service.ErrScheduleNotFound):
		writeError(c, http.StatusNotFound, detailScheduleNotFound)
	case errors.Is(err, service.ErrScheduleConflict):
		writeError(c, http.StatusConflict, detailScheduleConflict)
	case errors.Is(err, service.ErrEmptySchedules),
		errors.Is(err, service.ErrInvalidSchedule),
		errors.Is(err, service.ErrInvalidTimeRange):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Errorw(logKey, append([]interface{}{"err", err}, kv...)...)
		writeError(c, http.StatusInternalServerError, detailInternal)
	}
}

func (h *Handler) recovery(c *gin.Context, recovered any) {
	h.log.Errorw("panic_recovered", "panic", recovered, "path", c.Request.URL.Path)
	writeError(c, http.StatusInternalServerError, detailInternal)
}
