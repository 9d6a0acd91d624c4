package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/core/auth"
)

// uniqueViolation is the SQLSTATE for unique-constraint violations.
const uniqueViolation = "23505"

// querier is the subset of pgx operations the repository needs, satisfied by
// both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountRepository implements auth.Store on PostgreSQL. The accounts table
// must carry unique constraints on email and username; they are the source
// of truth for duplicate registrations under concurrency.
type AccountRepository struct {
	pool *pgxpool.Pool
}

var _ auth.Store = (*AccountRepository)(nil)

// NewAccountRepository creates a repository over the given pool.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// db returns the transaction carried in ctx, if any, or the pool.
func (r *AccountRepository) db(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

// FindByEmail looks up an account by its case-insensitively unique email.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	const query = `
		SELECT id, full_name, username, email, password_hash
		FROM accounts
		WHERE lower(email) = lower($1)`
	return r.scanAccount(r.db(ctx).QueryRow(ctx, query, email))
}

// FindByUsername looks up an account by its unique, case-sensitive username.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*auth.Account, error) {
	const query = `
		SELECT id, full_name, username, email, password_hash
		FROM accounts
		WHERE username = $1`
	return r.scanAccount(r.db(ctx).QueryRow(ctx, query, username))
}

// Create inserts the account and fills in its generated ID. A unique
// violation on email or username maps to auth.ErrAccountExists.
func (r *AccountRepository) Create(ctx context.Context, account *auth.Account) error {
	const query = `
		INSERT INTO accounts (full_name, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	row := r.db(ctx).QueryRow(ctx, query,
		account.FullName, account.Username, account.Email, account.PasswordHash)
	if err := row.Scan(&account.ID); err != nil {
		if isUniqueViolation(err) {
			return auth.ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) scanAccount(row pgx.Row) (*auth.Account, error) {
	var account auth.Account
	err := row.Scan(&account.ID, &account.FullName, &account.Username, &account.Email, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &account, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
