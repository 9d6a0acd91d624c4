package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/pkg/jwt"
)

const testSigningKey = "test-secret-key-at-least-32-bytes-long"

// mockStore is a hand-rolled account store fake with per-method call counters
// so tests can pin down exactly which lookup paths ran.
type mockStore struct {
	byEmail    map[string]*auth.Account
	byUsername map[string]*auth.Account

	emailCalls    int
	usernameCalls int
	created       []*auth.Account
	createErr     error
}

func newMockStore(accounts ...*auth.Account) *mockStore {
	s := &mockStore{
		byEmail:    make(map[string]*auth.Account),
		byUsername: make(map[string]*auth.Account),
	}
	for _, a := range accounts {
		s.byEmail[a.Email] = a
		s.byUsername[a.Username] = a
	}
	return s
}

func (s *mockStore) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	s.emailCalls++
	if a, ok := s.byEmail[email]; ok {
		return a, nil
	}
	return nil, auth.ErrAccountNotFound
}

func (s *mockStore) FindByUsername(_ context.Context, username string) (*auth.Account, error) {
	s.usernameCalls++
	if a, ok := s.byUsername[username]; ok {
		return a, nil
	}
	return nil, auth.ErrAccountNotFound
}

func (s *mockStore) Create(_ context.Context, account *auth.Account) error {
	if s.createErr != nil {
		return s.createErr
	}
	account.ID = int64(len(s.created) + 1)
	s.created = append(s.created, account)
	s.byEmail[account.Email] = account
	s.byUsername[account.Username] = account
	return nil
}

func newTestService(t *testing.T, store auth.Store, opts ...auth.Option) *auth.Service {
	t.Helper()
	tokens, err := jwt.NewFromString(testSigningKey)
	require.NoError(t, err)
	return auth.New(store, tokens, opts...)
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("hashes password and creates account", func(t *testing.T) {
		store := newMockStore()
		svc := newTestService(t, store)

		require.NoError(t, svc.Register(ctx, validRequest()))
		require.Len(t, store.created, 1)

		created := store.created[0]
		assert.Equal(t, "Test User", created.FullName)
		assert.Equal(t, "testuser", created.Username)
		assert.Equal(t, "test@example.com", created.Email)
		assert.NotEqual(t, "StrongP@ssword1", created.PasswordHash)
		assert.True(t, auth.VerifyPassword(created.PasswordHash, "StrongP@ssword1"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		store := newMockStore(&auth.Account{ID: 1, Email: "test@example.com", Username: "other"})
		svc := newTestService(t, store)

		err := svc.Register(ctx, validRequest())
		assert.ErrorIs(t, err, auth.ErrAccountExists)
		assert.Empty(t, store.created)
		// Email hit short-circuits: the username lookup never runs.
		assert.Equal(t, 0, store.usernameCalls)
	})

	t.Run("duplicate username", func(t *testing.T) {
		store := newMockStore(&auth.Account{ID: 1, Email: "other@example.com", Username: "testuser"})
		svc := newTestService(t, store)

		err := svc.Register(ctx, validRequest())
		assert.ErrorIs(t, err, auth.ErrAccountExists)
		assert.Empty(t, store.created)
		assert.Equal(t, 1, store.emailCalls)
		assert.Equal(t, 1, store.usernameCalls)
	})

	t.Run("validation failure happens before any store access", func(t *testing.T) {
		store := newMockStore()
		svc := newTestService(t, store)

		req := validRequest()
		req.Email = "invalid-email"
		err := svc.Register(ctx, req)
		assert.True(t, auth.IsValidationError(err))
		assert.Equal(t, 0, store.emailCalls)
		assert.Equal(t, 0, store.usernameCalls)
		assert.Empty(t, store.created)
	})

	t.Run("storage-level duplicate surfaces unchanged", func(t *testing.T) {
		store := newMockStore()
		store.createErr = auth.ErrAccountExists
		svc := newTestService(t, store)

		assert.ErrorIs(t, svc.Register(ctx, validRequest()), auth.ErrAccountExists)
	})
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hash, err := auth.HashPassword("StrongP@ssword1")
	require.NoError(t, err)

	account := &auth.Account{
		ID:           42,
		FullName:     "Test User",
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: hash,
	}

	t.Run("by email runs only the email lookup", func(t *testing.T) {
		store := newMockStore(account)
		svc := newTestService(t, store)

		token, err := svc.Login(ctx, auth.LoginRequest{Identifier: "test@example.com", Password: "StrongP@ssword1"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, store.emailCalls)
		assert.Equal(t, 0, store.usernameCalls)
	})

	t.Run("by username runs only the username lookup", func(t *testing.T) {
		store := newMockStore(account)
		svc := newTestService(t, store)

		token, err := svc.Login(ctx, auth.LoginRequest{Identifier: "testuser", Password: "StrongP@ssword1"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 0, store.emailCalls)
		assert.Equal(t, 1, store.usernameCalls)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := newTestService(t, newMockStore())

		token, err := svc.Login(ctx, auth.LoginRequest{Identifier: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("wrong password yields the same error", func(t *testing.T) {
		svc := newTestService(t, newMockStore(account))

		token, err := svc.Login(ctx, auth.LoginRequest{Identifier: "test@example.com", Password: "WrongPassword1!"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}

func TestIssuedTokenClaims(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hash, err := auth.HashPassword("StrongP@ssword1")
	require.NoError(t, err)

	account := &auth.Account{
		ID:           42,
		FullName:     "Test User",
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: hash,
	}

	tokens, err := jwt.NewFromString(testSigningKey)
	require.NoError(t, err)
	svc := auth.New(newMockStore(account), tokens,
		auth.WithTokenTTL(30*time.Minute),
		auth.WithIssuer("mentoring-app"),
		auth.WithAudience("mentoring-api"),
	)

	login := auth.LoginRequest{Identifier: "testuser", Password: "StrongP@ssword1"}

	token, err := svc.Login(ctx, login)
	require.NoError(t, err)

	var claims auth.Claims
	require.NoError(t, tokens.Parse(token, &claims))

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.FullName)
	assert.Equal(t, "mentoring-app", claims.Issuer)
	assert.Equal(t, "mentoring-api", claims.Audience)
	assert.NotEmpty(t, claims.ID)

	// Expiry equals issued-at plus the configured window, exactly.
	assert.Equal(t, claims.IssuedAt+int64((30*time.Minute).Seconds()), claims.ExpiresAt)

	t.Run("fresh nonce and signature per issuance", func(t *testing.T) {
		second, err := svc.Login(ctx, login)
		require.NoError(t, err)

		var secondClaims auth.Claims
		require.NoError(t, tokens.Parse(second, &secondClaims))

		assert.NotEqual(t, claims.ID, secondClaims.ID)
		assert.NotEqual(t, strings.Split(token, ".")[2], strings.Split(second, ".")[2])
	})
}
