package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/eaglebank/services/notification-service/internal/command"
	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/events"
	"github.com/eaglebank/services/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ---- mock implementation ----

type mockNotificationCommander struct {
	notifyFn func(cqrs.NotifyCommand) (*models.StatusResponse, error)
}

func (m *mockNotificationCommander) Notify(_ context.Context, cmd cqrs.NotifyCommand) (*models.StatusResponse, error) {
	if m.notifyFn != nil {
		return m.notifyFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newNotifyTestRouter(cmds NotificationCommander) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewNotificationHandler(cmds).RegisterRoutes(r)
	return r
}

func realCommander() NotificationCommander {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return command.NewNotificationCommandService(events.NopPublisher{}, logger.WithField("service", "test"))
}

// ---- tests ----

func TestNotify(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		contentType     string
		body            string
		expectedStatus  int
		expectedMessage *string
	}{
		{
			name:            "query parameter",
			target:          "/notify?message=" + url.QueryEscape("hello there"),
			expectedStatus:  http.StatusAccepted,
			expectedMessage: strPtr("hello there"),
		},
		{
			name:            "empty query parameter",
			target:          "/notify?message=",
			expectedStatus:  http.StatusAccepted,
			expectedMessage: strPtr(""),
		},
		{
			name:            "query wins over body",
			target:          "/notify?message=q",
			contentType:     "application/json",
			body:            `{"message":"b"}`,
			expectedStatus:  http.StatusAccepted,
			expectedMessage: strPtr("q"),
		},
		{
			name:            "json body",
			target:          "/notify",
			contentType:     "application/json",
			body:            `{"message":"from body"}`,
			expectedStatus:  http.StatusAccepted,
			expectedMessage: strPtr("from body"),
		},
		{
			name:            "form body",
			target:          "/notify",
			contentType:     "application/x-www-form-urlencoded",
			body:            "message=" + url.QueryEscape("form value"),
			expectedStatus:  http.StatusAccepted,
			expectedMessage: strPtr("form value"),
		},
		{
			name:           "missing message",
			target:         "/notify",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "json body without message",
			target:         "/notify",
			contentType:    "application/json",
			body:           `{"text":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json body",
			target:         "/notify",
			contentType:    "application/json",
			body:           `{"message":`,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *string
			cmds := &mockNotificationCommander{notifyFn: func(cmd cqrs.NotifyCommand) (*models.StatusResponse, error) {
				got = &cmd.Message
				return &models.StatusResponse{Status: "notification queued"}, nil
			}}
			router := newNotifyTestRouter(cmds)

			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedMessage != nil && (got == nil || *got != *tt.expectedMessage) {
				t.Errorf("[%s] expected message %q got %v", tt.name, *tt.expectedMessage, got)
			}
		})
	}
}

func TestNotify_FixedAcknowledgementForAnyContent(t *testing.T) {
	router := newNotifyTestRouter(realCommander())
	for _, msg := range []string{"", "ok", "☃ unicode", strings.Repeat("long ", 500), `{"json":"inside"}`} {
		req := httptest.NewRequest(http.MethodPost, "/notify?message="+url.QueryEscape(msg), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("message %q: expected 202 got %d", msg, w.Code)
		}
		if body := w.Body.String(); body != `{"status":"notification queued"}` {
			t.Errorf("message %q: unexpected body %s", msg, body)
		}
	}
}

func TestNotify_CommanderFailure(t *testing.T) {
	router := newNotifyTestRouter(&mockNotificationCommander{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notify?message=x", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 got %d", w.Code)
	}
}

func strPtr(s string) *string { return &s }
