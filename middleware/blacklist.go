package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/core/logger"
)

// revokedDetail is the problem detail for revoked tokens. It is deliberately
// distinct from a plain 401 so clients can detect logout-induced
// invalidation.
const revokedDetail = "This token has been revoked and cannot be used."

// Revoker answers whether a raw token string has been blacklisted.
// core/revocation.Store is the production implementation;
// core/revocation.NoOpStore disables the gate.
type Revoker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// TokenBlacklistConfig configures the revocation gate.
type TokenBlacklistConfig struct {
	// Skip defines a function to skip the gate for specific requests
	Skip func(r *http.Request) bool
	// Revoker is the revocation store consulted for each bearer token
	Revoker Revoker
	// TokenExtractor defines how to extract the token (default: Authorization header)
	TokenExtractor TokenExtractor
	// Logger records gate failures (default: discard)
	Logger *slog.Logger
}

// TokenBlacklist creates the revocation gate with default configuration.
// Requests without a token pass through untouched: authentication is the JWT
// middleware's job, this gate only rejects tokens that were explicitly
// revoked.
func TokenBlacklist(revoker Revoker) func(http.Handler) http.Handler {
	return TokenBlacklistWithConfig(TokenBlacklistConfig{Revoker: revoker})
}

// TokenBlacklistWithConfig creates the revocation gate with custom
// configuration. Panics if no Revoker is provided.
//
// A store I/O failure fails closed: the request is rejected and the error
// logged. Letting a token through because the blacklist is unreachable would
// silently void every logout issued during the outage.
func TokenBlacklistWithConfig(cfg TokenBlacklistConfig) func(http.Handler) http.Handler {
	if cfg.Revoker == nil {
		panic("blacklist middleware: revoker is required")
	}
	if cfg.TokenExtractor == nil {
		cfg.TokenExtractor = FromAuthHeader()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token := cfg.TokenExtractor(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			revoked, err := cfg.Revoker.IsRevoked(r.Context(), token)
			if err != nil {
				cfg.Logger.ErrorContext(r.Context(), "revocation check failed",
					logger.Component("blacklist"),
					logger.Error(err),
					logger.Elapsed(start),
				)
				writeProblem(w, http.StatusUnauthorized, revokedDetail)
				return
			}
			if revoked {
				writeProblem(w, http.StatusUnauthorized, revokedDetail)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// problemResponse is an RFC 7807 problem details body.
type problemResponse struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func writeProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problemResponse{Status: status, Detail: detail})
}
