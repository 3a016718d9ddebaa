package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/SscSPs/money_transfer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests that move money between accounts.
type transferHandler struct {
	transferService portssvc.TransferSvc
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvc) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// RegisterTransferRoutes registers routes related to transfers.
func RegisterTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvc) {
	h := newTransferHandler(transferService)

	rg.POST("/accounts/:accountID/transactions/transfer", h.transferMoney)
}

// transferMoney godoc
// @Summary Transfer money between two accounts
// @Description Moves the given amount from the account in the path to the destination account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Source account ID"
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Transfer failed"
// @Router /accounts/{accountID}/transactions/transfer [post]
func (h *transferHandler) transferMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transferService.CreateTransaction(c.Request.Context(), dto.CreateTransactionRequest{
		Kind:                 domain.KindTransferBetweenAccounts,
		SourceAccountID:      c.Param("accountID"),
		DestinationAccountID: req.DestinationAccountID,
		Amount:               req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error on transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			// Transfer failed and unsupported kinds are operation errors
			logger.Error("Transfer failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
