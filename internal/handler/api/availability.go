package api

import (
	"github.com/cockroachdb/errors"
	"net/http"

	reqdto "stagelink/internal/handler/dto/request"
	resdto "stagelink/internal/handler/dto/response"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/usecase/commands"
	"stagelink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, qs queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: cmds,
		availabilityQueries:  qs,
	}
}

// @Summary Get availability calendar
// @Description List every explicitly set day for a performer
// @Tags availability
// @Produce json
// @Param id path string true "Performer ID"
// @Success 200 {array} resdto.AvailabilityDayResponse
// @Failure 400 {object} map[string]string
// @Router /performers/{id}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	views, err := h.availabilityQueries.GetAvailability(c.Request.Context(), performerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityDayViews(views))
}

// @Summary Set availability days
// @Description Overwrite the listed day entries for a performer
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Performer ID"
// @Param request body []reqdto.DayEntry true "Day entries"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /performers/{id}/availability [put]
func (h *AvailabilityHandler) SetAvailability(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	var days []reqdto.DayEntry
	if bindErr := c.ShouldBindJSON(&days); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inputs, err := reqdto.SetAvailabilityRequest{Days: days}.ToInputs()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	if err := h.availabilityCommands.SetAvailability(c.Request.Context(), performerID, inputs); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Bulk set a date range
// @Description Apply one status to every day in an inclusive date range
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Performer ID"
// @Param request body reqdto.BulkRangeRequest true "Range and status"
// @Success 200 {object} resdto.BulkRangeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /performers/{id}/availability/range [post]
func (h *AvailabilityHandler) BulkSetRange(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	var req reqdto.BulkRangeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start date format, expected YYYY-MM-DD",
		})
		return
	}
	end, err := dateutil.Parse(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end date format, expected YYYY-MM-DD",
		})
		return
	}

	count, err := h.availabilityCommands.BulkSetRange(c.Request.Context(), performerID, start, end, toDayStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End date must not precede start date",
			})
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BulkRangeResponse{DaysUpdated: count})
}

// @Summary Weekly overview
// @Description All 7 days of the week containing the given date, unset days defaulting to available
// @Tags availability
// @Produce json
// @Param id path string true "Performer ID"
// @Param date query string true "Reference date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AvailabilityDayResponse
// @Failure 400 {object} map[string]string
// @Router /performers/{id}/availability/week [get]
func (h *AvailabilityHandler) WeeklyOverview(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	views, err := h.availabilityQueries.WeeklyOverview(c.Request.Context(), performerID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityDayViews(views))
}

// @Summary Slots for a day
// @Description Bookable time slots derived from the day's availability
// @Tags availability
// @Produce json
// @Param id path string true "Performer ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /performers/{id}/slots [get]
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	views, err := h.availabilityQueries.SlotsForDay(c.Request.Context(), performerID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
