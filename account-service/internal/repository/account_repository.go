package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/eaglebank/services/shared/models"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

// AccountStore is the storage seam for account records. Records are only
// ever inserted and read; there is no update or delete.
type AccountStore interface {
	Create(ctx context.Context, accountID string, account models.Account) error
	Get(ctx context.Context, accountID string) (models.Account, error)
}

// MemoryAccountStore keeps records in a mutex-guarded map for the lifetime of
// the process.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]models.Account)}
}

// Create inserts a record. An existing ID is never overwritten.
func (s *MemoryAccountStore) Create(ctx context.Context, accountID string, account models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[accountID]; exists {
		return ErrAccountExists
	}
	s.accounts[accountID] = account
	return nil
}

func (s *MemoryAccountStore) Get(ctx context.Context, accountID string) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[accountID]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return account, nil
}

// Len reports how many records are held. It backs the accounts_stored gauge.
func (s *MemoryAccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
