package api

import (
	"net/http"

	"stagelink/internal/domain/calendar"
	"stagelink/internal/handler/httperr"
	"stagelink/internal/pkg/dateutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parsePerformerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid performer ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseDateQuery(c *gin.Context) (dateutil.Date, bool) {
	raw := c.Query("date")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, dateutil.ErrInvalidDate, "date query parameter required", nil)
		return dateutil.Date{}, false
	}

	date, err := dateutil.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return dateutil.Date{}, false
	}
	return date, true
}

func toDayStatus(s string) calendar.DayStatus {
	return calendar.DayStatus(s)
}
