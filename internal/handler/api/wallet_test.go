//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stagelink/internal/handler/api"
	resdto "stagelink/internal/handler/dto/response"
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

type WalletHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWalletCommands
	mockQueries  *queriesmock.MockWalletQueries
	handler      *api.WalletHandler
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWalletCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWalletQueries(s.mockCtrl)
	s.handler = api.NewWalletHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", jwt.RolePerformer)
		c.Next()
	}

	s.router.GET("/performers/:id/wallet", authMiddleware, s.handler.GetWallet)
	s.router.POST("/performers/:id/wallet/transactions", authMiddleware, s.handler.ApplyTransaction)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) TestGetWallet() {
	performerID := uuid.New()
	url := "/performers/" + performerID.String() + "/wallet"

	s.Run("success: returns balance and history", func() {
		s.mockQueries.EXPECT().GetWallet(gomock.Any(), performerID).Return(&queries.WalletView{
			PerformerID: performerID,
			Balance:     1200,
			Transactions: []queries.TransactionView{
				{ID: uuid.New(), Type: "credit", Amount: 1200, Date: time.Now(), Description: "wallet top-up"},
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.WalletResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1200), body.Balance)
		s.Len(body.Transactions, 1)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *WalletHandlerTestSuite) TestApplyTransaction() {
	performerID := uuid.New()
	url := "/performers/" + performerID.String() + "/wallet/transactions"

	s.Run("success: top-up returns the new balance", func() {
		s.mockCommands.EXPECT().TopUp(gomock.Any(), performerID, int64(500)).Return(&commands.WalletTransactionResult{
			NewBalance: 500,
			Transaction: &queries.TransactionView{
				ID: uuid.New(), Type: "credit", Amount: 500, Date: time.Now(), Description: "wallet top-up",
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "topUp", "amount": 500}, "bearer-token")

		var body resdto.WalletMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(500), body.NewBalance)
		s.NotNil(body.Transaction)
		s.Equal("credit", body.Transaction.Type)
	})

	s.Run("success: fee charge below the floor appends nothing", func() {
		s.mockCommands.EXPECT().ChargeBookingFee(gomock.Any(), performerID, int64(209)).Return(&commands.WalletTransactionResult{
			NewBalance: 750,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "chargeFee", "amount": 209}, "bearer-token")

		var body resdto.WalletMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(750), body.NewBalance)
		s.Nil(body.Transaction)
	})

	s.Run("error: 400 on out-of-range top-up", func() {
		s.mockCommands.EXPECT().TopUp(gomock.Any(), performerID, int64(499)).
			Return(nil, errs.Mark(errs.New("bounds"), commands.ErrTopUpOutOfRange))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "topUp", "amount": 499}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "out of allowed range")
	})

	s.Run("error: 422 on insufficient funds", func() {
		s.mockCommands.EXPECT().ChargeBookingFee(gomock.Any(), performerID, int64(1500)).
			Return(nil, errs.Mark(errs.New("funds"), commands.ErrInsufficientFunds))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "chargeFee", "amount": 1500}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Insufficient funds")
	})

	s.Run("error: 400 on unknown action", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "withdraw", "amount": 100}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on non-positive amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "topUp", "amount": 0}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
