package repository

import (
	"context"
	"testing"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(routingKey string) *domain.Account {
	account := domain.NewAccount("ACC-001", routingKey, "Test User", "30123456", domain.CurrencyARS, "001")
	account.Balance = decimal.RequireFromString("500.00")
	return account
}

func TestAccountRepository_SaveAssignsID(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newAccount("R1"))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
}

func TestAccountRepository_SaveRejectsDuplicateRoutingKey(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newAccount("R1"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newAccount("R1"))
	require.Error(t, err)
	assert.True(t, domain.IsDuplicate(err))
}

func TestAccountRepository_SaveUpdatesExisting(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newAccount("R1"))
	require.NoError(t, err)

	saved.OwnerName = "Renamed User"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", found.OwnerName)
}

func TestAccountRepository_FindByID_NotFound(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestAccountRepository_FindByRoutingKey(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newAccount("R1"))
	require.NoError(t, err)

	found, err := repo.FindByRoutingKey(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = repo.FindByRoutingKey(ctx, "R2")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestAccountRepository_FindAll(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	accounts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	_, err = repo.Save(ctx, newAccount("R1"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newAccount("R2"))
	require.NoError(t, err)

	accounts, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestAccountRepository_Exists(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newAccount("R1"))
	require.NoError(t, err)

	byID, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, byID)

	byKey, err := repo.ExistsByRoutingKey(ctx, "R1")
	require.NoError(t, err)
	assert.True(t, byKey)

	missing, err := repo.ExistsByRoutingKey(ctx, "R2")
	require.NoError(t, err)
	assert.False(t, missing)
}

func TestAccountRepository_DeleteByID(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newAccount("R1"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	err = repo.DeleteByID(ctx, saved.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestAccountRepository_ReturnedAccountsAreCopies(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newAccount("R1"))
	require.NoError(t, err)

	saved.OwnerName = "Mutated Aside"

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", found.OwnerName)
}
