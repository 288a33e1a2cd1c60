package query

import (
	"context"

	"github.com/eaglebank/services/account-service/internal/repository"
	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/metrics"
	"github.com/eaglebank/services/shared/models"
)

type AccountQueryService struct {
	store repository.AccountStore
}

func NewAccountQueryService(store repository.AccountStore) *AccountQueryService {
	return &AccountQueryService{store: store}
}

// GetAccount returns the stored record, or repository.ErrAccountNotFound.
func (s *AccountQueryService) GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.Account, error) {
	account, err := s.store.Get(ctx, q.AccountID)
	if err != nil {
		return nil, err
	}
	metrics.RecordOperation("account.get")
	return &account, nil
}
