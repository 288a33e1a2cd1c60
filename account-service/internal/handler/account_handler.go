package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/eaglebank/services/account-service/internal/repository"
	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/middleware"
	"github.com/eaglebank/services/shared/models"
	"github.com/gin-gonic/gin"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(context.Context, cqrs.CreateAccountCommand) (*models.AccountCreated, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(context.Context, cqrs.GetAccountQuery) (*models.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// Pointer fields distinguish an absent value from an empty or zero one.
type CreateAccountRequest struct {
	CustomerID     *string  `json:"customer_id" validate:"required"`
	InitialBalance *float64 `json:"initial_balance" validate:"required"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

// RegisterRoutes mounts the account endpoints on r.
func (h *AccountHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/accounts", h.CreateAccount)
	r.GET("/accounts/:accountId", h.GetAccount)
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	created, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		CustomerID:     *req.CustomerID,
		InitialBalance: *req.InitialBalance,
	})
	if err != nil {
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{
		AccountID: c.Param("accountId"),
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
			return
		}
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, account)
}
