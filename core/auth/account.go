package auth

import "context"

// Account is the stored user-account record. PasswordHash holds a bcrypt
// hash; the plaintext password never leaves the registration call.
type Account struct {
	ID           int64
	FullName     string
	Username     string
	Email        string
	PasswordHash string
}

// Store is the account persistence contract. Implementations must enforce
// uniqueness on email and username at the storage layer; the service's
// pre-insert lookups are only a fast path for better error messages and do
// not protect against concurrent duplicate registrations.
//
// Lookups return ErrAccountNotFound on a miss. Create returns
// ErrAccountExists when a unique constraint is violated.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	Create(ctx context.Context, account *Account) error
}
