package account_test

import (
	"context"
	"sync"

	"github.com/dmitrymomot/wordchain/modules/account"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

// memStore is an in-memory account.Store that counts lookups.
type memStore struct {
	mu      sync.Mutex
	rows    map[string]session.Account
	lookups int
	err     error
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]session.Account{}}
}

func (s *memStore) Create(_ context.Context, acc session.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.rows[acc.ID]; ok {
		return account.ErrDuplicateID
	}
	s.rows[acc.ID] = acc
	return nil
}

func (s *memStore) Lookup(_ context.Context, id string) (session.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if s.err != nil {
		return session.Account{}, s.err
	}
	acc, ok := s.rows[id]
	if !ok {
		return session.Account{}, session.ErrAccountNotFound
	}
	return acc, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.rows, id)
	return nil
}

func (s *memStore) Lookups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}

// memSchema records lifecycle calls.
type memSchema struct {
	mu         sync.Mutex
	migrated   int
	reset      int
	migrateErr error
}

func (s *memSchema) Migrate(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.migrated++
	return s.migrateErr
}

func (s *memSchema) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset++
	return nil
}
