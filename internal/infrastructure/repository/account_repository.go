package repository

import (
	"context"
	"sync"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/google/uuid"
)

// AccountRepository implements domain.AccountRepository with in-memory storage
type AccountRepository struct {
	accounts map[uuid.UUID]*domain.Account
	mu       sync.RWMutex
}

// NewAccountRepository creates a new in-memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Save inserts or updates by id, assigning an id on first save. The
// routing key uniqueness check mirrors the unique constraint the
// relational store enforces.
func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	for _, existing := range r.accounts {
		if existing.RoutingKey == account.RoutingKey && existing.ID != account.ID {
			return nil, domain.NewDuplicate("bank account with routing key %s already exists", account.RoutingKey)
		}
	}

	stored := *account
	r.accounts[account.ID] = &stored

	saved := stored
	return &saved, nil
}

// FindByID retrieves an account by its ID
func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[id]
	if !exists {
		return nil, domain.NewNotFound("bank account with id %s not found", id)
	}

	found := *account
	return &found, nil
}

// FindByRoutingKey retrieves an account by its routing key
func (r *AccountRepository) FindByRoutingKey(ctx context.Context, routingKey string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.RoutingKey == routingKey {
			found := *account
			return &found, nil
		}
	}

	return nil, domain.NewNotFound("bank account with routing key %s not found", routingKey)
}

// FindAll returns every stored account in map iteration order.
func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		found := *account
		accounts = append(accounts, &found)
	}

	return accounts, nil
}

// ExistsByID reports whether an account with the given id is stored
func (r *AccountRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.accounts[id]
	return exists, nil
}

// ExistsByRoutingKey reports whether any account holds the routing key
func (r *AccountRepository) ExistsByRoutingKey(ctx context.Context, routingKey string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.RoutingKey == routingKey {
			return true, nil
		}
	}

	return false, nil
}

// DeleteByID physically removes an account by ID
func (r *AccountRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[id]; !exists {
		return domain.NewNotFound("bank account with id %s not found", id)
	}

	delete(r.accounts, id)
	return nil
}
