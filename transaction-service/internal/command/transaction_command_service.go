package command

import (
	"context"

	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/events"
	"github.com/eaglebank/services/shared/logging"
	"github.com/eaglebank/services/shared/metrics"
	"github.com/eaglebank/services/shared/models"
	"github.com/sirupsen/logrus"
)

// TransactionCommandService acknowledges transfer requests. It has no ledger:
// nothing is stored, no balance moves and the account identifiers are not
// checked against any registry.
type TransactionCommandService struct {
	publisher events.Publisher
	log       *logrus.Entry
}

func NewTransactionCommandService(publisher events.Publisher, log *logrus.Entry) *TransactionCommandService {
	return &TransactionCommandService{publisher: publisher, log: log}
}

// AcceptTransaction echoes the request back with an "accepted" status.
func (s *TransactionCommandService) AcceptTransaction(ctx context.Context, cmd cqrs.AcceptTransactionCommand) (*models.TransactionReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	receipt := &models.TransactionReceipt{
		Status: models.TransactionStatusAccepted,
		From:   cmd.FromAccount,
		To:     cmd.ToAccount,
		Amount: cmd.Amount,
	}

	metrics.RecordOperation("transaction.accept")
	logging.FromContext(ctx, s.log).WithFields(logrus.Fields{
		"from_account": cmd.FromAccount,
		"to_account":   cmd.ToAccount,
		"amount":       cmd.Amount,
	}).Info("transaction accepted")

	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionAccepted, events.TransactionAcceptedEvent{
		FromAccount: cmd.FromAccount,
		ToAccount:   cmd.ToAccount,
		Amount:      cmd.Amount,
	}); err != nil {
		logging.FromContext(ctx, s.log).WithError(err).Warn("failed to publish transaction.accepted event")
	}

	return receipt, nil
}
