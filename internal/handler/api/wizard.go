package api

import (
	"github.com/cockroachdb/errors"
	"net/http"

	reqdto "stagelink/internal/handler/dto/request"
	resdto "stagelink/internal/handler/dto/response"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizardCommands commands.WizardCommands
}

func NewWizardHandler(cmds commands.WizardCommands) *WizardHandler {
	return &WizardHandler{wizardCommands: cmds}
}

// @Summary Start a booking wizard session
// @Description Open a new step-by-step booking flow against a performer
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartWizardRequest true "Performer, venue and event type"
// @Success 201 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /wizard/sessions [post]
func (h *WizardHandler) Start(c *gin.Context) {
	var req reqdto.StartWizardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.wizardCommands.Start(c.Request.Context(), req.PerformerID, req.VenueID, req.EventType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWizardView(view))
}

// @Summary Get wizard session
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Router /wizard/sessions/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardCommands.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Select a date
// @Description Move the wizard from idle to date_selected; the day must be available
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectDateRequest true "Date"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/sessions/{id}/date [post]
func (h *WizardHandler) SelectDate(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectDateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := dateutil.Parse(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.wizardCommands.SelectDate(c.Request.Context(), sessionID, date)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Select a time range
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectTimeRequest true "Start and end hour"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/sessions/{id}/time [post]
func (h *WizardHandler) SelectTime(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectTimeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.wizardCommands.SelectTime(c.Request.Context(), sessionID, req.StartHour, req.EndHour)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Select a pricing tier
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectTierRequest true "Tier label"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/sessions/{id}/pricing [post]
func (h *WizardHandler) SelectTier(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectTierRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.wizardCommands.SelectTier(c.Request.Context(), sessionID, req.Label)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Enter event details
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.EnterDetailsRequest true "Event and contact details"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/sessions/{id}/details [post]
func (h *WizardHandler) EnterDetails(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	var req reqdto.EnterDetailsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.wizardCommands.EnterDetails(c.Request.Context(), sessionID, req.EventName, req.ContactName, req.Phone)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Step back
// @Description Return to the previous wizard step, clearing the abandoned step's data
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/sessions/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardCommands.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Cancel wizard session
// @Description Discard the session without creating anything
// @Tags wizard
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /wizard/sessions/{id} [delete]
func (h *WizardHandler) Cancel(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	if err := h.wizardCommands.Cancel(c.Request.Context(), sessionID); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Confirm the booking
// @Description Create exactly one pending booking request from the wizard state
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.BookingRequestResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /wizard/sessions/{id}/confirm [post]
func (h *WizardHandler) Confirm(c *gin.Context) {
	sessionID, ok := h.parseSessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardCommands.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRequestView(view))
}

func (h *WizardHandler) parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *WizardHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Wizard session not found",
		})
	case errors.Is(err, commands.ErrWizardStep):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Operation not allowed in current wizard step",
		})
	case errors.Is(err, commands.ErrDayNotAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Selected date is not available",
		})
	case errors.Is(err, commands.ErrSlotNoLongerAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Requested day is no longer available",
		})
	case errors.Is(err, commands.ErrTierNotSuitable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Pricing tier does not suit the selected duration",
		})
	case errors.Is(err, commands.ErrUnknownTier):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown pricing tier",
		})
	case errors.Is(err, commands.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time range",
		})
	case errors.Is(err, commands.ErrMissingDetails):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Event name, contact name and phone are required",
		})
	case errors.Is(err, commands.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Venue directory unavailable, try again",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
