// Package jwt provides an RFC 7519 compliant JSON Web Token implementation
// using HMAC-SHA256.
//
// The package covers generation, validation, and parsing of JWTs with support
// for the registered claims and custom payload structures. Signature
// verification uses constant-time comparison, and temporal claims (exp, nbf)
// are validated on every parse.
//
// # Usage
//
// Create a service with a signing key of at least 32 bytes:
//
//	service, err := jwt.NewFromString("your-256-bit-secret-at-least-32b")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Generate a token with custom claims:
//
//	type SessionClaims struct {
//		jwt.StandardClaims
//		Email string `json:"email"`
//	}
//
//	now := time.Now()
//	token, err := service.Generate(SessionClaims{
//		StandardClaims: jwt.StandardClaims{
//			ID:        uuid.New().String(),
//			Subject:   "user123",
//			IssuedAt:  now.Unix(),
//			ExpiresAt: now.Add(time.Hour).Unix(),
//		},
//		Email: "user@example.com",
//	})
//
// Parse and validate:
//
//	var claims SessionClaims
//	if err := service.Parse(token, &claims); err != nil {
//		switch {
//		case errors.Is(err, jwt.ErrExpiredToken):
//			// token past its exp claim
//		case errors.Is(err, jwt.ErrInvalidSignature):
//			// tampered token or wrong key
//		default:
//			// malformed token
//		}
//	}
//
// # Security Notes
//
// Signing keys must come from a cryptographically secure random source and be
// stored outside the codebase. Always set ExpiresAt on session tokens and use
// the jti claim (StandardClaims.ID) as the handle for revocation lists.
package jwt
