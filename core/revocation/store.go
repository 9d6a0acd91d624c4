package revocation

import (
	"context"
	"errors"
	"time"
)

const (
	// keyPrefix namespaces blacklist entries in a shared cache.
	keyPrefix = "blacklist:"
	// sentinel is the stored marker value. Its presence, not its content,
	// signals revocation.
	sentinel = "revoked"
)

// ErrStoreUnavailable wraps I/O failures talking to the underlying cache.
// Callers gating requests should treat it as "deny" (fail-closed).
var ErrStoreUnavailable = errors.New("revocation store unavailable")

// Cache is the TTL-capable key/value contract the blacklist is built on.
// Implementations must make Set a blind per-key upsert and must forget
// entries at their absolute expiration without any caller involvement.
// integration/database/redis provides the production implementation;
// MemoryCache serves tests and single-process deployments.
type Cache interface {
	// Set stores value under key until expiresAt.
	Set(ctx context.Context, key, value string, expiresAt time.Time) error
	// Get returns the stored value and whether the key is present.
	// An expired or missing key is reported as absent, not as an error.
	Get(ctx context.Context, key string) (string, bool, error)
}

// Store records tokens that must be treated as invalid before their natural
// expiry. Tokens are opaque string keys here: the store knows nothing about
// claim structure.
type Store struct {
	cache Cache
}

// NewStore creates a revocation store over the given cache.
func NewStore(cache Cache) *Store {
	return &Store{cache: cache}
}

// Revoke blacklists the token until expiresAt. An already-expired token is a
// no-op: ordinary expiry checking rejects it anyway, and skipping the write
// bounds store growth to currently-valid revoked tokens. The entry expires at
// exactly the token's own expiry, never later.
func (s *Store) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if time.Until(expiresAt) <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, keyPrefix+token, sentinel, expiresAt); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// IsRevoked reports whether the token is blacklisted. A lookup miss -
// including one caused by the cache's own TTL eviction - means not revoked.
func (s *Store) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, found, err := s.cache.Get(ctx, keyPrefix+token)
	if err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	return found, nil
}

// NoOpStore never revokes and never reports a token as revoked. Use it to
// wire components that require a revocation check when revocation is not
// needed, e.g. tests of pure token issuance.
type NoOpStore struct{}

// Revoke does nothing and returns nil.
func (NoOpStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	return nil
}

// IsRevoked always returns false.
func (NoOpStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	return false, nil
}
