package jwt

import "time"

// StandardClaims contains the RFC 7519 registered claims. Embed it in a
// custom struct to carry application-specific claims alongside the
// registered ones:
//
//	type SessionClaims struct {
//		jwt.StandardClaims
//		Email string `json:"email"`
//	}
type StandardClaims struct {
	ID        string `json:"jti,omitempty"` // Unique token identifier, useful for blacklisting
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"` // Unix timestamp
	NotBefore int64  `json:"nbf,omitempty"` // Unix timestamp
	IssuedAt  int64  `json:"iat,omitempty"` // Unix timestamp
}

// Valid checks the temporal claims against the given time.
// Zero-valued exp/nbf claims are treated as unset and skip validation.
func (c StandardClaims) Valid(now time.Time) error {
	if c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore != 0 && now.Unix() < c.NotBefore {
		return ErrInvalidToken
	}
	return nil
}
