package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code raised when the routing key
// unique constraint rejects a write. The application-level pre-check is
// best effort; this constraint is the actual safety net.
const uniqueViolation = "23505"

// AccountRepository implements domain.AccountRepository on Postgres.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Save inserts when the account has no id yet and updates otherwise.
func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if account.ID == uuid.Nil {
		return r.insert(ctx, account)
	}
	return r.update(ctx, account)
}

func (r *AccountRepository) insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	const query = `
INSERT INTO bank_accounts (
	account_number,
	routing_key,
	owner_name,
	owner_document,
	currency,
	balance,
	status,
	branch_code,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx,
		query,
		account.AccountNumber,
		account.RoutingKey,
		account.OwnerName,
		account.OwnerDocument,
		account.Currency,
		account.Balance,
		account.Status,
		account.BranchCode,
		account.CreatedAt,
		account.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, translateError(err, account.RoutingKey, "insert account")
	}

	saved := *account
	saved.ID = id
	return &saved, nil
}

func (r *AccountRepository) update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	const query = `
UPDATE bank_accounts SET
	account_number = $2,
	routing_key = $3,
	owner_name = $4,
	owner_document = $5,
	currency = $6,
	balance = $7,
	status = $8,
	branch_code = $9,
	updated_at = $10
WHERE id = $1`

	result, err := r.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.AccountNumber,
		account.RoutingKey,
		account.OwnerName,
		account.OwnerDocument,
		account.Currency,
		account.Balance,
		account.Status,
		account.BranchCode,
		account.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, account.RoutingKey, "update account")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update account rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.NewNotFound("bank account with id %s not found", account.ID)
	}

	saved := *account
	return &saved, nil
}

const selectColumns = `
	id,
	account_number,
	routing_key,
	owner_name,
	owner_document,
	currency,
	balance,
	status,
	branch_code,
	created_at,
	updated_at`

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT` + selectColumns + ` FROM bank_accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("bank account with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) FindByRoutingKey(ctx context.Context, routingKey string) (*domain.Account, error) {
	query := `SELECT` + selectColumns + ` FROM bank_accounts WHERE routing_key = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, routingKey))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("bank account with routing key %s not found", routingKey)
	}
	if err != nil {
		return nil, fmt.Errorf("find account by routing key: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT` + selectColumns + ` FROM bank_accounts`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bank_accounts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check account exists by id: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) ExistsByRoutingKey(ctx context.Context, routingKey string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bank_accounts WHERE routing_key = $1)`, routingKey).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check account exists by routing key: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFound("bank account with id %s not found", id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.RoutingKey,
		&account.OwnerName,
		&account.OwnerDocument,
		&account.Currency,
		&account.Balance,
		&account.Status,
		&account.BranchCode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt
	return &account, nil
}

func translateError(err error, routingKey, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.NewDuplicate("bank account with routing key %s already exists", routingKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
