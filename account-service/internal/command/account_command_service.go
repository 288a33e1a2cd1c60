package command

import (
	"context"
	"fmt"

	"github.com/eaglebank/services/account-service/internal/repository"
	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/events"
	"github.com/eaglebank/services/shared/logging"
	"github.com/eaglebank/services/shared/metrics"
	"github.com/eaglebank/services/shared/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AccountCommandService writes account records and announces them on the
// activity stream.
type AccountCommandService struct {
	store     repository.AccountStore
	publisher events.Publisher
	log       *logrus.Entry
	newID     func() string
}

func NewAccountCommandService(
	store repository.AccountStore,
	publisher events.Publisher,
	log *logrus.Entry,
) *AccountCommandService {
	return &AccountCommandService{
		store:     store,
		publisher: publisher,
		log:       log,
		newID:     uuid.NewString,
	}
}

// CreateAccount stores {customer_id, balance} under a fresh UUID. Neither
// field is range-checked: empty customer IDs and negative balances are kept
// as given.
func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.AccountCreated, error) {
	accountID := s.newID()
	account := models.Account{
		CustomerID: cmd.CustomerID,
		Balance:    cmd.InitialBalance,
	}
	if err := s.store.Create(ctx, accountID, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	metrics.RecordOperation("account.create")
	logging.FromContext(ctx, s.log).WithField("account_id", accountID).Info("account created")

	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:  accountID,
		CustomerID: account.CustomerID,
		Balance:    account.Balance,
	}); err != nil {
		logging.FromContext(ctx, s.log).WithError(err).Warn("failed to publish account.created event")
	}

	return &models.AccountCreated{AccountID: accountID}, nil
}
