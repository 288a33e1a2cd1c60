package query

import (
	"context"
	"testing"

	"github.com/eaglebank/services/account-service/internal/repository"
	"github.com/eaglebank/services/shared/cqrs"
	"github.com/eaglebank/services/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccount(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryAccountStore()
	require.NoError(t, store.Create(ctx, "acc-1", models.Account{CustomerID: "cust-1", Balance: 250}))
	svc := NewAccountQueryService(store)

	got, err := svc.GetAccount(ctx, cqrs.GetAccountQuery{AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Equal(t, &models.Account{CustomerID: "cust-1", Balance: 250}, got)

	got, err = svc.GetAccount(ctx, cqrs.GetAccountQuery{AccountID: "never-created"})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.Nil(t, got)
}
