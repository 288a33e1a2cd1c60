package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/middleware"
	"github.com/eaglebank/services/shared/models"
	"github.com/gin-gonic/gin"
)

// NotificationCommander defines the write-side operations used by NotificationHandler.
type NotificationCommander interface {
	Notify(context.Context, cqrs.NotifyCommand) (*models.StatusResponse, error)
}

type NotificationHandler struct {
	commands NotificationCommander
}

type NotifyRequest struct {
	Message *string `json:"message" form:"message" validate:"required"`
}

func NewNotificationHandler(commands NotificationCommander) *NotificationHandler {
	return &NotificationHandler{commands: commands}
}

// RegisterRoutes mounts the notification endpoints on r.
func (h *NotificationHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/notify", h.Notify)
}

// Notify takes the message from the "message" query parameter, falling back
// to a form field or a JSON body. Its content is never inspected.
func (h *NotificationHandler) Notify(c *gin.Context) {
	message, ok := h.readMessage(c)
	if !ok {
		return
	}

	ack, err := h.commands.Notify(c.Request.Context(), cqrs.NotifyCommand{Message: message})
	if err != nil {
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to queue notification")
		return
	}

	c.JSON(http.StatusAccepted, ack)
}

func (h *NotificationHandler) readMessage(c *gin.Context) (string, bool) {
	if message, ok := c.GetQuery("message"); ok {
		return message, true
	}

	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		if message, ok := c.GetPostForm("message"); ok {
			return message, true
		}
	case gin.MIMEJSON:
		var req NotifyRequest
		if !middleware.BindAndValidate(c, &req) {
			return "", false
		}
		return *req.Message, true
	}

	middleware.RespondWithValidationError(c, []middleware.ValidationError{{
		Field:   "message",
		Message: "This field is required",
		Type:    "required",
	}})
	return "", false
}
