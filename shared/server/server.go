// Package server assembles the gin engine and process lifecycle shared by
// every service: recovery, request logging, metrics, liveness and graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eaglebank/services/shared/config"
	"github.com/eaglebank/services/shared/events"
	"github.com/eaglebank/services/shared/metrics"
	"github.com/eaglebank/services/shared/middleware"
	"github.com/eaglebank/services/shared/models"
	redisconn "github.com/eaglebank/services/shared/redis"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// streamMaxLen bounds each activity stream so an unconsumed stream cannot
// grow without limit.
const streamMaxLen = 10000

type Server struct {
	Engine    *gin.Engine
	Publisher events.Publisher

	cfg     *config.Config
	log     *logrus.Entry
	closers []func() error
}

// Option customises a Server before routes are registered.
type Option func(*options)

type options struct {
	health gin.HandlerFunc
}

// WithHealthHandler replaces the default liveness handler on GET /health.
func WithHealthHandler(h gin.HandlerFunc) Option {
	return func(o *options) { o.health = h }
}

// New builds the engine and, when REDIS_ADDR is set, the activity-event
// publisher. Without Redis a no-op publisher is installed.
func New(ctx context.Context, cfg *config.Config, log *logrus.Entry, opts ...Option) (*Server, error) {
	o := options{health: Liveness(cfg.Service)}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		Engine:    newEngine(cfg.GinMode, log),
		Publisher: events.NopPublisher{},
		cfg:       cfg,
		log:       log,
	}

	if cfg.EventsEnabled() {
		rdb, err := redisconn.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		s.Publisher = events.NewRedisPublisher(rdb, streamMaxLen)
		s.closers = append(s.closers, rdb.Close)
		log.WithField("redis_addr", cfg.RedisAddr).Info("activity events enabled")
	}

	s.Engine.GET("/health", o.health)
	s.Engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	return s, nil
}

func newEngine(mode string, log *logrus.Entry) *gin.Engine {
	gin.SetMode(mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(metrics.Middleware())
	return router
}

// Liveness answers with the fixed "<service>-running" payload whatever the
// request contains.
func Liveness(service string) gin.HandlerFunc {
	body := models.StatusResponse{Status: service + "-running"}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most SHUTDOWN_TIMEOUT and releases resources.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("port", s.cfg.ServerPort).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.close()
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			s.log.WithError(err).Warn("failed to release resource")
		}
	}
	s.closers = nil
}
