package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewAccount_StampsDefaults(t *testing.T) {
	account := NewAccount("ACC-001", "1230000100000000000011", "Test User", "30123456", CurrencyARS, "001")

	assert.True(t, account.Balance.IsZero())
	assert.Equal(t, AccountStatusActive, account.Status)
	assert.False(t, account.CreatedAt.IsZero())
	assert.Equal(t, account.CreatedAt, account.UpdatedAt)
}

func TestUpdateFrom_CopiesMutableFields(t *testing.T) {
	account := NewAccount("ACC-001", "R1", "Test User", "30123456", CurrencyARS, "001")
	createdAt := account.CreatedAt

	account.UpdateFrom(&Account{
		AccountNumber: "ACC-002",
		RoutingKey:    "R2",
		OwnerName:     "Other User",
		OwnerDocument: "40123456",
		Currency:      CurrencyUSD,
		Balance:       decimal.RequireFromString("250.50"),
		BranchCode:    "002",
	})

	assert.Equal(t, "ACC-002", account.AccountNumber)
	assert.Equal(t, "Other User", account.OwnerName)
	assert.Equal(t, "40123456", account.OwnerDocument)
	assert.Equal(t, CurrencyUSD, account.Currency)
	assert.Equal(t, "250.5", account.Balance.String())
	assert.Equal(t, "002", account.BranchCode)
	// the routing key and createdAt are never rewritten by an update
	assert.Equal(t, "R1", account.RoutingKey)
	assert.Equal(t, createdAt, account.CreatedAt)
}

func TestUpdateFrom_AbsentStatusLeavesCurrentOne(t *testing.T) {
	account := NewAccount("ACC-001", "R1", "Test User", "30123456", CurrencyARS, "001")
	account.Close()

	account.UpdateFrom(&Account{AccountNumber: "ACC-001", OwnerName: "Test User"})

	assert.Equal(t, AccountStatusClosed, account.Status)
}

func TestUpdateFrom_ExplicitStatusIsApplied(t *testing.T) {
	account := NewAccount("ACC-001", "R1", "Test User", "30123456", CurrencyARS, "001")
	account.Close()

	// reopening via an explicit ACTIVE status is permitted
	account.UpdateFrom(&Account{Status: AccountStatusActive})

	assert.Equal(t, AccountStatusActive, account.Status)
}

func TestUpdateFrom_NilSourceIsNoop(t *testing.T) {
	account := NewAccount("ACC-001", "R1", "Test User", "30123456", CurrencyARS, "001")
	before := *account

	account.UpdateFrom(nil)

	assert.Equal(t, before, *account)
}

func TestClose_IsIdempotent(t *testing.T) {
	account := NewAccount("ACC-001", "R1", "Test User", "30123456", CurrencyARS, "001")

	account.Close()
	first := account.UpdatedAt
	assert.Equal(t, AccountStatusClosed, account.Status)

	time.Sleep(time.Millisecond)
	account.Close()

	assert.Equal(t, AccountStatusClosed, account.Status)
	assert.True(t, !account.UpdatedAt.Before(first))
}

func TestAccountStatus_Valid(t *testing.T) {
	assert.True(t, AccountStatusActive.Valid())
	assert.True(t, AccountStatusClosed.Valid())
	assert.False(t, AccountStatus("SUSPENDED").Valid())
	assert.False(t, AccountStatus("").Valid())
}

func TestCurrency_Valid(t *testing.T) {
	assert.True(t, CurrencyARS.Valid())
	assert.True(t, CurrencyUSD.Valid())
	assert.True(t, CurrencyEUR.Valid())
	assert.False(t, Currency("GBP").Valid())
}
