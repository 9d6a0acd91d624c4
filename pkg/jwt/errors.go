package jwt

import "errors"

// Error variables cover the distinct failure modes of token generation and
// parsing. Check them with errors.Is to branch on the failure kind.
var (
	// ErrInvalidToken indicates a malformed token structure or a failed
	// not-before validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token is past its expiration time.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidSignature indicates signature verification failed.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrUnexpectedSigningMethod indicates the token header declares an
	// algorithm other than HS256.
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

	// ErrMissingSigningKey indicates the service was created without a key.
	ErrMissingSigningKey = errors.New("missing signing key")

	// ErrInvalidSigningKey indicates the signing key doesn't meet the minimum
	// length requirement for HMAC-SHA256.
	ErrInvalidSigningKey = errors.New("signing key must be at least 32 bytes")

	// ErrMissingClaims indicates Generate was called with nil claims.
	ErrMissingClaims = errors.New("missing claims")

	// ErrInvalidClaims indicates the claims payload couldn't be serialized
	// or deserialized.
	ErrInvalidClaims = errors.New("invalid claims")
)
