package api

import (
	"github.com/cockroachdb/errors"
	"net/http"

	reqdto "stagelink/internal/handler/dto/request"
	resdto "stagelink/internal/handler/dto/response"
	"stagelink/internal/usecase/commands"
	"stagelink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletCommands commands.WalletCommands
	walletQueries  queries.WalletQueries
}

func NewWalletHandler(cmds commands.WalletCommands, qs queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletCommands: cmds,
		walletQueries:  qs,
	}
}

// @Summary Get wallet
// @Description Balance and full transaction history for a performer
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param id path string true "Performer ID"
// @Success 200 {object} resdto.WalletResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /performers/{id}/wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	view, err := h.walletQueries.GetWallet(c.Request.Context(), performerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}

// @Summary Apply a wallet transaction
// @Description Top up the balance or charge the platform booking fee
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Performer ID"
// @Param request body reqdto.WalletTransactionRequest true "Action and amount"
// @Success 200 {object} resdto.WalletMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /performers/{id}/wallet/transactions [post]
func (h *WalletHandler) ApplyTransaction(c *gin.Context) {
	performerID, ok := parsePerformerID(c)
	if !ok {
		return
	}

	var req reqdto.WalletTransactionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var (
		result *commands.WalletTransactionResult
		err    error
	)
	switch req.Action {
	case reqdto.WalletActionTopUp:
		result, err = h.walletCommands.TopUp(c.Request.Context(), performerID, req.Amount)
	case reqdto.WalletActionChargeFee:
		result, err = h.walletCommands.ChargeBookingFee(c.Request.Context(), performerID, req.Amount)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown wallet action",
		})
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTopUpOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Top-up amount out of allowed range",
			})
		case errors.Is(err, commands.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Insufficient funds",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletMutation(result))
}
