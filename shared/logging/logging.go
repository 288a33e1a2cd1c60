// Package logging builds the structured logger every service writes through.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger tagged with the service name. Unknown levels fall back
// to info with a warning; format is "json" or "text".
func New(service, level, format string) *logrus.Entry {
	return newWithOutput(os.Stdout, service, level, format)
}

func newWithOutput(out io.Writer, service, level, format string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)

	if strings.EqualFold(format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	entry := logger.WithField("service", service)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		entry.WithField("configured_level", level).Warn("invalid log level configured, using info")
		return entry
	}
	logger.SetLevel(parsed)
	return entry
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the ID stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext enriches log with the request ID carried by ctx, if any.
func FromContext(ctx context.Context, log *logrus.Entry) *logrus.Entry {
	if id := RequestID(ctx); id != "" {
		return log.WithField("request_id", id)
	}
	return log
}
