package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatus represents the lifecycle status of a bank account.
// The empty string models an absent status in update payloads.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// Valid reports whether the status is one of the known values.
func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusClosed
}

// Currency is the fixed set of currencies an account can hold.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid reports whether the currency is one of the known values.
func (c Currency) Valid() bool {
	return c == CurrencyARS || c == CurrencyUSD || c == CurrencyEUR
}

// Account is a bank account record. The ID is assigned by the repository
// on first save; a zero CreatedAt means the caller did not supply one.
type Account struct {
	ID            uuid.UUID       `json:"id"`
	AccountNumber string          `json:"account_number"`
	RoutingKey    string          `json:"routing_key"`
	OwnerName     string          `json:"owner_name"`
	OwnerDocument string          `json:"owner_document"`
	Currency      Currency        `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	Status        AccountStatus   `json:"status"`
	BranchCode    string          `json:"branch_code"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewAccount creates an account with defaults stamped: zero balance,
// ACTIVE status, both timestamps set to now.
func NewAccount(accountNumber, routingKey, ownerName, ownerDocument string, currency Currency, branchCode string) *Account {
	now := time.Now()
	return &Account{
		AccountNumber: accountNumber,
		RoutingKey:    routingKey,
		OwnerName:     ownerName,
		OwnerDocument: ownerDocument,
		Currency:      currency,
		Balance:       decimal.Zero,
		Status:        AccountStatusActive,
		BranchCode:    branchCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateFrom copies the mutable fields from src. ID, RoutingKey and
// CreatedAt are never touched. Status is copied only when present, so an
// absent status leaves the current one untouched, while an explicit
// status is applied as given (reopening a closed account included).
func (a *Account) UpdateFrom(src *Account) {
	if src == nil {
		return
	}
	a.OwnerName = src.OwnerName
	a.OwnerDocument = src.OwnerDocument
	a.AccountNumber = src.AccountNumber
	a.BranchCode = src.BranchCode
	a.Currency = src.Currency
	a.Balance = src.Balance
	if src.Status != "" {
		a.Status = src.Status
	}
	a.UpdatedAt = time.Now()
}

// Close marks the account as closed. Closing an already closed account
// just refreshes UpdatedAt.
func (a *Account) Close() {
	a.Status = AccountStatusClosed
	a.UpdatedAt = time.Now()
}

// AccountRepository is the storage port required by the lifecycle service.
type AccountRepository interface {
	// Save inserts or updates by identity and returns the account with
	// the identifier and storage-generated fields populated.
	Save(ctx context.Context, account *Account) (*Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByRoutingKey(ctx context.Context, routingKey string) (*Account, error)
	FindAll(ctx context.Context) ([]*Account, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByRoutingKey(ctx context.Context, routingKey string) (bool, error)
	// DeleteByID removes the row. The lifecycle service never calls it;
	// accounts are closed, not deleted.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// AccountFetcher loads a fully populated account through the same
// retrieval path as the public read endpoint. The summary view is built
// on top of it.
type AccountFetcher interface {
	FetchAccount(ctx context.Context, id uuid.UUID) (*Account, error)
}

// AccountService defines the account lifecycle operations.
type AccountService interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetAll(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, id uuid.UUID, updated *Account) (*Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountSummary is a read-only derived view of an account.
type AccountSummary struct {
	ID             uuid.UUID       `json:"id"`
	OwnerName      string          `json:"owner_name"`
	AccountNumber  string          `json:"account_number"`
	BranchCode     string          `json:"branch_code"`
	Currency       Currency        `json:"currency"`
	Balance        decimal.Decimal `json:"balance"`
	Status         AccountStatus   `json:"status"`
	LowBalanceRisk bool            `json:"low_balance_risk"`
}

// SummaryService builds derived account views.
type SummaryService interface {
	GetSummary(ctx context.Context, id uuid.UUID) (*AccountSummary, error)
}
