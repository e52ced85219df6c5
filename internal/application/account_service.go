package application

import (
	"context"
	"time"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountService holds the account lifecycle rules: routing key
// uniqueness, creation defaults and status transitions. It depends only
// on the repository port.
type AccountService struct {
	repo   domain.AccountRepository
	logger *zap.Logger
}

func NewAccountService(repo domain.AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new account. The routing key check here is a
// best-effort pre-check for a friendly error; the storage unique
// constraint is the actual safety net under concurrent creators.
func (s *AccountService) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	exists, err := s.repo.ExistsByRoutingKey(ctx, account.RoutingKey)
	if err != nil {
		s.logger.Error("failed to check routing key", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("bank account with routing key %s already exists", account.RoutingKey)
	}

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	if account.Status == "" {
		account.Status = domain.AccountStatusActive
	}

	created, err := s.repo.Save(ctx, account)
	if err != nil {
		s.logger.Error("failed to create account", zap.Error(err))
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("account_id", created.ID.String()),
		zap.String("routing_key", created.RoutingKey))

	return created, nil
}

func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFound("bank account with id %s not found", id)
		}
		s.logger.Error("failed to get account", zap.Error(err))
		return nil, err
	}

	return account, nil
}

// GetAll returns every account in the order the repository yields them.
func (s *AccountService) GetAll(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list accounts", zap.Error(err))
		return nil, err
	}

	return accounts, nil
}

// Update applies the incoming payload to an existing account. A changed
// routing key is validated against the rest of the set but the key
// itself is not rewritten; see Account.UpdateFrom for the copy policy.
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, updated *domain.Account) (*domain.Account, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updated.RoutingKey != "" && updated.RoutingKey != existing.RoutingKey {
		taken, err := s.repo.ExistsByRoutingKey(ctx, updated.RoutingKey)
		if err != nil {
			s.logger.Error("failed to check routing key", zap.Error(err))
			return nil, err
		}
		if taken {
			return nil, domain.NewDuplicate("another bank account with routing key %s already exists", updated.RoutingKey)
		}
	}

	existing.UpdateFrom(updated)

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.Error("failed to update account", zap.Error(err))
		return nil, err
	}

	s.logger.Info("account updated", zap.String("account_id", saved.ID.String()))

	return saved, nil
}

// Delete closes the account instead of removing the row. Closing an
// already closed account succeeds and bumps UpdatedAt again.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Close()

	if _, err := s.repo.Save(ctx, existing); err != nil {
		s.logger.Error("failed to close account", zap.Error(err))
		return err
	}

	s.logger.Info("account closed", zap.String("account_id", id.String()))

	return nil
}
