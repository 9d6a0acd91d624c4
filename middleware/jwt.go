package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

// jwtClaimsContextKey is used as a key for storing JWT claims in the request
// context.
type jwtClaimsContextKey struct{}

// JWTConfig configures the JWT authentication middleware.
type JWTConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Service is the JWT service instance used for token parsing and validation
	Service *jwt.Service
	// TokenExtractor defines how to extract the token (default: Authorization header)
	TokenExtractor TokenExtractor
	// ClaimsFactory creates a new claims instance for token parsing (default: StandardClaims)
	ClaimsFactory func() any
}

// JWT creates a JWT authentication middleware with a signing key. It uses
// standard claims and stores them in the request context. Panics if the
// signing key is invalid, so a weak key is caught at wiring time.
func JWT(signingKey string) func(http.Handler) http.Handler {
	service, err := jwt.NewFromString(signingKey)
	if err != nil {
		panic("jwt middleware: " + err.Error())
	}
	return JWTWithConfig(JWTConfig{Service: service})
}

// JWTWithConfig creates a JWT authentication middleware with custom
// configuration. It validates the token signature and temporal claims and
// stores the parsed claims in the request context. Panics if the JWT service
// is not provided.
func JWTWithConfig(cfg JWTConfig) func(http.Handler) http.Handler {
	if cfg.Service == nil {
		panic("jwt middleware: service is required")
	}
	if cfg.TokenExtractor == nil {
		cfg.TokenExtractor = FromAuthHeader()
	}
	if cfg.ClaimsFactory == nil {
		cfg.ClaimsFactory = func() any {
			return &jwt.StandardClaims{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token := cfg.TokenExtractor(r)
			if token == "" {
				writeProblem(w, http.StatusUnauthorized, "Authentication required.")
				return
			}

			claims := cfg.ClaimsFactory()
			if err := cfg.Service.Parse(token, claims); err != nil {
				writeProblem(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}

			ctx := contextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithClaims(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, jwtClaimsContextKey{}, claims)
}

// GetClaims retrieves JWT claims of the specified type from the request
// context.
func GetClaims[T any](r *http.Request) (T, bool) {
	var zero T
	claims, ok := r.Context().Value(jwtClaimsContextKey{}).(T)
	if !ok {
		return zero, false
	}
	return claims, true
}

// GetStandardClaims retrieves standard JWT claims from the request context.
func GetStandardClaims(r *http.Request) (*jwt.StandardClaims, bool) {
	return GetClaims[*jwt.StandardClaims](r)
}
