package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/revocation"
	"github.com/dmitrymomot/authkit/middleware"
)

type failingRevoker struct{}

func (failingRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	return false, errors.New("connection refused")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenBlacklist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("revoked token is rejected before the handler runs", func(t *testing.T) {
		store := revocation.NewStore(revocation.NewMemoryCache())
		require.NoError(t, store.Revoke(ctx, "revoked-token", time.Now().Add(time.Hour)))

		called := false
		gate := middleware.TokenBlacklist(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.Header.Set("Authorization", "Bearer revoked-token")
		w := httptest.NewRecorder()
		gate.ServeHTTP(w, r)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

		var problem map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
		assert.Equal(t, "This token has been revoked and cannot be used.", problem["detail"])
	})

	t.Run("active token passes through", func(t *testing.T) {
		store := revocation.NewStore(revocation.NewMemoryCache())
		gate := middleware.TokenBlacklist(store)(okHandler())

		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.Header.Set("Authorization", "Bearer active-token")
		w := httptest.NewRecorder()
		gate.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("request without a token passes through", func(t *testing.T) {
		store := revocation.NewStore(revocation.NewMemoryCache())
		gate := middleware.TokenBlacklist(store)(okHandler())

		r := httptest.NewRequest(http.MethodGet, "/public", nil)
		w := httptest.NewRecorder()
		gate.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store failure fails closed", func(t *testing.T) {
		gate := middleware.TokenBlacklist(failingRevoker{})(okHandler())

		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()
		gate.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skip bypasses the gate", func(t *testing.T) {
		store := revocation.NewStore(revocation.NewMemoryCache())
		require.NoError(t, store.Revoke(ctx, "revoked-token", time.Now().Add(time.Hour)))

		gate := middleware.TokenBlacklistWithConfig(middleware.TokenBlacklistConfig{
			Revoker: store,
			Skip: func(r *http.Request) bool {
				return r.URL.Path == "/health"
			},
		})(okHandler())

		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set("Authorization", "Bearer revoked-token")
		w := httptest.NewRecorder()
		gate.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing revoker panics at wiring time", func(t *testing.T) {
		assert.Panics(t, func() {
			middleware.TokenBlacklistWithConfig(middleware.TokenBlacklistConfig{})
		})
	})
}
