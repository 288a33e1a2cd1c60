package command

import (
	"context"
	"unicode/utf8"

	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/events"
	"github.com/eaglebank/services/shared/logging"
	"github.com/eaglebank/services/shared/metrics"
	"github.com/eaglebank/services/shared/models"
	"github.com/sirupsen/logrus"
)

// NotificationCommandService acknowledges notification requests. Messages are
// not queued or delivered anywhere; the acknowledgement is fixed.
type NotificationCommandService struct {
	publisher events.Publisher
	log       *logrus.Entry
}

func NewNotificationCommandService(publisher events.Publisher, log *logrus.Entry) *NotificationCommandService {
	return &NotificationCommandService{publisher: publisher, log: log}
}

// Notify accepts any message, including the empty string.
func (s *NotificationCommandService) Notify(ctx context.Context, cmd cqrs.NotifyCommand) (*models.StatusResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Only the size is recorded; message bodies stay out of logs and streams.
	length := utf8.RuneCountInString(cmd.Message)

	metrics.RecordOperation("notification.notify")
	logging.FromContext(ctx, s.log).WithField("message_length", length).Info("notification received")

	if err := s.publisher.Publish(ctx, events.NotificationEventsStream, events.NotificationReceived, events.NotificationReceivedEvent{
		Length: length,
	}); err != nil {
		logging.FromContext(ctx, s.log).WithError(err).Warn("failed to publish notification.received event")
	}

	return &models.StatusResponse{Status: models.NotificationStatusQueued}, nil
}
