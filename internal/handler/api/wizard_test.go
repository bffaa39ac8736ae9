//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stagelink/internal/handler/api"
	resdto "stagelink/internal/handler/dto/response"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/pkg/errs"
	"stagelink/internal/pkg/jwt"
	"stagelink/internal/usecase/commands"
	"stagelink/internal/usecase/queries"
	"stagelink/tests/common/httptest"
	commandsmock "stagelink/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWizardCommands
	handler      *api.WizardHandler
}

func (s *WizardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWizardCommands(s.mockCtrl)
	s.handler = api.NewWizardHandler(s.mockCommands)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", jwt.RoleVenue)
		c.Next()
	}

	sessions := s.router.Group("/wizard/sessions", authMiddleware)
	sessions.POST("", s.handler.Start)
	sessions.GET("/:id", s.handler.Get)
	sessions.DELETE("/:id", s.handler.Cancel)
	sessions.POST("/:id/date", s.handler.SelectDate)
	sessions.POST("/:id/time", s.handler.SelectTime)
	sessions.POST("/:id/pricing", s.handler.SelectTier)
	sessions.POST("/:id/details", s.handler.EnterDetails)
	sessions.POST("/:id/back", s.handler.Back)
	sessions.POST("/:id/confirm", s.handler.Confirm)
}

func (s *WizardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(WizardHandlerTestSuite))
}

func (s *WizardHandlerTestSuite) TestStart() {
	performerID := uuid.New()
	venueID := uuid.New()
	sessionID := uuid.New()
	body := map[string]any{
		"performerId": performerID.String(),
		"venueId":     venueID.String(),
		"eventType":   "club_night",
	}

	s.Run("success: returns 201 with an idle session", func() {
		s.mockCommands.EXPECT().
			Start(gomock.Any(), performerID, venueID, "club_night").
			Return(&commands.WizardView{
				SessionID:   sessionID,
				PerformerID: performerID,
				VenueID:     venueID,
				EventType:   "club_night",
				Step:        "idle",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/sessions", body, "bearer-token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(sessionID, resp.SessionID)
		s.Equal("idle", resp.Step)
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/sessions",
			map[string]any{"eventType": "club_night"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/sessions", body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *WizardHandlerTestSuite) TestGet() {
	sessionID := uuid.New()
	url := "/wizard/sessions/" + sessionID.String()

	s.Run("success", func() {
		date := dateutil.New(2026, time.September, 12)
		s.mockCommands.EXPECT().Get(gomock.Any(), sessionID).Return(&commands.WizardView{
			SessionID: sessionID,
			Step:      "date_selected",
			Date:      &date,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("date_selected", resp.Step)
		s.Equal("2026-09-12", resp.Date)
	})

	s.Run("error: 404 for unknown session", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), sessionID).Return(nil, commands.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "session not found")
	})
}

func (s *WizardHandlerTestSuite) TestSelectDate() {
	sessionID := uuid.New()
	url := "/wizard/sessions/" + sessionID.String() + "/date"

	s.Run("success", func() {
		date := dateutil.New(2026, time.September, 12)
		s.mockCommands.EXPECT().SelectDate(gomock.Any(), sessionID, date).Return(&commands.WizardView{
			SessionID: sessionID,
			Step:      "date_selected",
			Date:      &date,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"date": "2026-09-12"}, "bearer-token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("date_selected", resp.Step)
	})

	s.Run("error: 409 when the day is closed", func() {
		s.mockCommands.EXPECT().SelectDate(gomock.Any(), sessionID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("closed"), commands.ErrDayNotAvailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"date": "2026-09-12"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"date": "next saturday"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *WizardHandlerTestSuite) TestSelectTime() {
	sessionID := uuid.New()
	url := "/wizard/sessions/" + sessionID.String() + "/time"

	s.Run("success: lists suitable tiers", func() {
		s.mockCommands.EXPECT().SelectTime(gomock.Any(), sessionID, 18, 20).Return(&commands.WizardView{
			SessionID: sessionID,
			Step:      "time_selected",
			TimeRange: "18:00-20:00",
			SuitableTiers: []commands.WizardTierView{
				{Label: "1-2 Hours", MinHours: 0, MaxHours: 2, Price: 209, Recommended: true},
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]int{"startHour": 18, "endHour": 20}, "bearer-token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("time_selected", resp.Step)
		s.Len(resp.SuitableTiers, 1)
		s.True(resp.SuitableTiers[0].Recommended)
	})

	s.Run("error: 409 out of order", func() {
		s.mockCommands.EXPECT().SelectTime(gomock.Any(), sessionID, 18, 20).
			Return(nil, errs.Mark(errs.New("step"), commands.ErrWizardStep))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]int{"startHour": 18, "endHour": 20}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed")
	})
}

func (s *WizardHandlerTestSuite) TestSelectTier() {
	sessionID := uuid.New()
	url := "/wizard/sessions/" + sessionID.String() + "/pricing"

	s.Run("error: 400 on unsuitable tier", func() {
		s.mockCommands.EXPECT().SelectTier(gomock.Any(), sessionID, "Full Day").
			Return(nil, errs.Mark(errs.New("tier"), commands.ErrTierNotSuitable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"label": "Full Day"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "does not suit")
	})

	s.Run("error: 400 on unknown tier", func() {
		s.mockCommands.EXPECT().SelectTier(gomock.Any(), sessionID, "Happy Hour").
			Return(nil, errs.Mark(errs.New("tier"), commands.ErrUnknownTier))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"label": "Happy Hour"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown pricing tier")
	})
}

func (s *WizardHandlerTestSuite) TestConfirm() {
	sessionID := uuid.New()
	url := "/wizard/sessions/" + sessionID.String() + "/confirm"

	s.Run("success: returns 201 with the pending request", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), sessionID).Return(&queries.BookingRequestView{
			ID:        uuid.New(),
			Date:      dateutil.New(2026, time.September, 12),
			TimeRange: "18:00-20:00",
			Price:     209,
			Status:    "pending",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("pending", resp.Status)
		s.Equal(int64(209), resp.Price)
	})

	s.Run("error: 503 when the venue directory is down", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), sessionID).
			Return(nil, errs.Mark(errs.New("timeout"), commands.ErrUpstreamUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")
	})

	s.Run("error: 409 when the slot is gone", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), sessionID).
			Return(nil, errs.Mark(errs.New("gone"), commands.ErrSlotNoLongerAvailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	})
}

func (s *WizardHandlerTestSuite) TestCancel() {
	sessionID := uuid.New()
	url := "/wizard/sessions/" + sessionID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), sessionID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown session", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), sessionID).Return(commands.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "session not found")
	})
}
