package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/eaglebank/services/shared/config"
	"github.com/eaglebank/services/shared/events"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(service string) *config.Config {
	return &config.Config{
		Service:         service,
		ServerPort:      "0",
		GinMode:         gin.TestMode,
		ShutdownTimeout: time.Second,
	}
}

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("service", "test")
}

func TestNew_DefaultLivenessAndMetrics(t *testing.T) {
	s, err := New(context.Background(), testConfig("account-service"), testLogger())
	require.NoError(t, err)
	assert.IsType(t, events.NopPublisher{}, s.Publisher)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/health", nil),
		httptest.NewRequest(http.MethodGet, "/health?verbose=1", strings.NewReader("ignored")),
	} {
		w := httptest.NewRecorder()
		s.Engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, map[string]string{"status": "account-service-running"}, body)
	}

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eaglebank_http_requests_total")
}

func TestNew_CustomHealthHandler(t *testing.T) {
	s, err := New(context.Background(), testConfig("auth-service"), testLogger(),
		WithHealthHandler(func(c *gin.Context) { c.String(http.StatusOK, "custom") }))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "custom", w.Body.String())
}

func TestNew_FailsWhenRedisUnreachable(t *testing.T) {
	cfg := testConfig("account-service")
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := New(context.Background(), cfg, testLogger())
	assert.Error(t, err)
}

func TestNew_PublishesToRedisWhenConfigured(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig("account-service")
	cfg.RedisAddr = mr.Addr()

	s, err := New(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	defer s.close()
	require.IsType(t, &events.RedisPublisher{}, s.Publisher)

	require.NoError(t, s.Publisher.Publish(context.Background(), events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{AccountID: "a"}))
	entries, err := mr.Stream(events.AccountEventsStream)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s, err := New(context.Background(), testConfig("auth-service"), testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
