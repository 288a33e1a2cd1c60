package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/middleware"
	"github.com/eaglebank/services/shared/models"
	"github.com/gin-gonic/gin"
)

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	AcceptTransaction(context.Context, cqrs.AcceptTransactionCommand) (*models.TransactionReceipt, error)
}

type TransactionHandler struct {
	commands TransactionCommander
}

// Amount sign is deliberately unchecked; only presence and numeric type are.
type CreateTransactionRequest struct {
	FromAccount *string  `json:"from_account" validate:"required"`
	ToAccount   *string  `json:"to_account" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required"`
}

func NewTransactionHandler(commands TransactionCommander) *TransactionHandler {
	return &TransactionHandler{commands: commands}
}

// RegisterRoutes mounts the transaction endpoints on r.
func (h *TransactionHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/transactions", h.CreateTransaction)
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	receipt, err := h.commands.AcceptTransaction(c.Request.Context(), cqrs.AcceptTransactionCommand{
		FromAccount: *req.FromAccount,
		ToAccount:   *req.ToAccount,
		Amount:      *req.Amount,
	})
	if err != nil {
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to accept transaction")
		return
	}

	c.JSON(http.StatusAccepted, receipt)
}
