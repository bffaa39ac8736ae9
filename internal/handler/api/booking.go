package api

import (
	"github.com/cockroachdb/errors"
	"net/http"
	"strconv"

	"stagelink/internal/domain/booking"
	reqdto "stagelink/internal/handler/dto/request"
	resdto "stagelink/internal/handler/dto/response"
	"stagelink/internal/usecase/commands"
	"stagelink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: cmds,
		bookingQueries:  qs,
	}
}

// @Summary List booking requests
// @Description Paginated booking requests for a performer, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Performer ID"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} resdto.BookingRequestPageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /performers/{id}/booking-requests [get]
func (h *BookingHandler) ListBookingRequests(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	result, err := h.bookingQueries.ListByPerformer(c.Request.Context(), performerID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRequestPage(result))
}

// @Summary Respond to a booking request
// @Description Accept or decline a pending booking request
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Param request body reqdto.RespondBookingRequest true "Decision"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-requests/{id}/respond [post]
func (h *BookingHandler) Respond(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking request ID format",
		})
		return
	}

	var req reqdto.RespondBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Respond(c.Request.Context(), requestID, booking.Decision(req.Decision))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking request not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking request already resolved",
			})
		case errors.Is(err, commands.ErrSlotNoLongerAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested day is no longer available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRequestView(view))
}
