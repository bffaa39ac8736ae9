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
	queriesmock "stagelink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", jwt.RolePerformer)
		c.Next()
	}

	s.router.GET("/performers/:id/availability", s.handler.GetAvailability)
	s.router.PUT("/performers/:id/availability", authMiddleware, s.handler.SetAvailability)
	s.router.POST("/performers/:id/availability/range", authMiddleware, s.handler.BulkSetRange)
	s.router.GET("/performers/:id/availability/week", s.handler.WeeklyOverview)
	s.router.GET("/performers/:id/slots", s.handler.GetSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	performerID := uuid.New()
	url := "/performers/" + performerID.String() + "/availability"

	s.Run("success: returns the stored days", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), performerID).Return([]queries.AvailabilityDayView{
			{PerformerID: performerID, Date: dateutil.New(2026, time.September, 12), Status: "booked"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.AvailabilityDayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("2026-09-12", body[0].Date)
		s.Equal("booked", body[0].Status)
	})

	s.Run("error: 400 on malformed performer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/performers/not-a-uuid/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid performer ID")
	})
}

func (s *AvailabilityHandlerTestSuite) TestSetAvailability() {
	performerID := uuid.New()
	url := "/performers/" + performerID.String() + "/availability"
	body := []map[string]string{
		{"date": "2026-09-12", "status": "not_available"},
		{"date": "2026-09-13", "status": "available"},
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), performerID, gomock.Len(2)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 on malformed date", func() {
		bad := []map[string]string{{"date": "12-09-2026", "status": "available"}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 400 on invalid status", func() {
		s.mockCommands.EXPECT().
			SetAvailability(gomock.Any(), performerID, gomock.Any()).
			Return(errs.Mark(errs.New("invalid"), commands.ErrInvalidStatus))

		bad := []map[string]string{{"date": "2026-09-12", "status": "busy"}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid availability status")
	})
}

func (s *AvailabilityHandlerTestSuite) TestBulkSetRange() {
	performerID := uuid.New()
	url := "/performers/" + performerID.String() + "/availability/range"
	body := map[string]string{
		"startDate": "2026-09-10",
		"endDate":   "2026-09-14",
		"status":    "not_available",
	}

	s.Run("success: reports the number of days written", func() {
		s.mockCommands.EXPECT().
			BulkSetRange(gomock.Any(), performerID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(5, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.BulkRangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(5, resp.DaysUpdated)
	})

	s.Run("error: 400 on inverted range", func() {
		s.mockCommands.EXPECT().
			BulkSetRange(gomock.Any(), performerID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, errs.Mark(errs.New("inverted"), commands.ErrInvalidDateRange))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End date must not precede start date")
	})

	s.Run("error: 400 on malformed start date", func() {
		bad := map[string]string{"startDate": "sept 10", "endDate": "2026-09-14", "status": "available"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start date")
	})
}

func (s *AvailabilityHandlerTestSuite) TestGetSlots() {
	performerID := uuid.New()
	base := "/performers/" + performerID.String() + "/slots"

	s.Run("success: returns derived slots", func() {
		s.mockQueries.EXPECT().
			SlotsForDay(gomock.Any(), performerID, dateutil.New(2026, time.September, 12)).
			Return([]queries.SlotView{
				{Date: dateutil.New(2026, time.September, 12), Start: "14:00", End: "18:00", DurationHours: 4, Price: 379, TierLabel: "2-4 Hours"},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-12", nil, "")

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(int64(379), body[0].Price)
	})

	s.Run("error: 400 without date parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date query parameter required")
	})
}

func (s *AvailabilityHandlerTestSuite) TestWeeklyOverview() {
	performerID := uuid.New()
	base := "/performers/" + performerID.String() + "/availability/week"

	s.Run("success: returns seven days", func() {
		week := make([]queries.AvailabilityDayView, 7)
		monday := dateutil.New(2026, time.September, 7)
		for i := range week {
			week[i] = queries.AvailabilityDayView{
				PerformerID: performerID,
				Date:        monday.AddDays(i),
				Status:      "available",
			}
		}
		s.mockQueries.EXPECT().
			WeeklyOverview(gomock.Any(), performerID, dateutil.New(2026, time.September, 12)).
			Return(week, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-12", nil, "")

		var body []resdto.AvailabilityDayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 7)
		s.Equal("2026-09-07", body[0].Date)
	})
}
