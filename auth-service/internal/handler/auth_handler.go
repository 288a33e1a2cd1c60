package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/services/shared/models"
	"github.com/gin-gonic/gin"
)

// AuthQuerier defines the read-side operations used by AuthHandler.
type AuthQuerier interface {
	Health(context.Context) models.StatusResponse
}

// AuthHandler serves the liveness check. No command service needed.
type AuthHandler struct {
	queries AuthQuerier
}

func NewAuthHandler(queries AuthQuerier) *AuthHandler {
	return &AuthHandler{queries: queries}
}

// Health ignores the query string, headers and body entirely.
func (h *AuthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.queries.Health(c.Request.Context()))
}
