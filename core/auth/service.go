package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

// Claims is the session token payload. Email and full name are denormalized
// into the token for client convenience; the subject carries the account ID.
type Claims struct {
	jwt.StandardClaims
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// Service registers accounts and authenticates them, issuing session tokens.
// Successful logins persist nothing: token validity is determined by
// signature and expiry alone, so horizontal scaling needs no shared session
// state beyond the revocation store.
type Service struct {
	store    Store
	tokens   *jwt.Service
	tokenTTL time.Duration
	issuer   string
	audience string
	logger   *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithTokenTTL sets the session token validity window. Default is 1 hour.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

// WithIssuer sets the iss claim for issued tokens.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		if issuer != "" {
			s.issuer = issuer
		}
	}
}

// WithAudience sets the aud claim for issued tokens.
func WithAudience(audience string) Option {
	return func(s *Service) {
		if audience != "" {
			s.audience = audience
		}
	}
}

// WithLogger sets the logger for internal operations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an auth service backed by the given account store and JWT
// service.
func New(store Store, tokens *jwt.Service, opts ...Option) *Service {
	s := &Service{
		store:    store,
		tokens:   tokens,
		tokenTTL: time.Hour,
		issuer:   "authkit",
		audience: "authkit",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register validates the request, rejects duplicates, and persists a new
// account with a bcrypt password hash. Registration does not auto-login, so
// no token is returned.
//
// Validation runs before any store access. The duplicate pre-check looks up
// by email first and by username only when the email is free; either hit
// fails with ErrAccountExists and nothing is written. The storage-level
// unique constraint remains the source of truth under concurrency.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	if err := ValidateRegistration(req); err != nil {
		return err
	}

	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return fmt.Errorf("lookup account by email: %w", err)
	}
	if existing == nil {
		existing, err = s.store.FindByUsername(ctx, req.Username)
		if err != nil && !errors.Is(err, ErrAccountNotFound) {
			return fmt.Errorf("lookup account by username: %w", err)
		}
	}
	if existing != nil {
		return ErrAccountExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account := &Account{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.store.Create(ctx, account); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "account registered", slog.String("username", req.Username))
	return nil
}

// Login authenticates by email or username and returns a signed session
// token. The identifier kind is decided by the presence of '@': exactly one
// lookup path runs, never both. Any failure - unknown account or wrong
// password - yields ErrInvalidCredentials with no further distinction.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	var (
		account *Account
		err     error
	)
	if strings.Contains(req.Identifier, "@") {
		account, err = s.store.FindByEmail(ctx, req.Identifier)
	} else {
		account, err = s.store.FindByUsername(ctx, req.Identifier)
	}
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup account: %w", err)
	}

	if !VerifyPassword(account.PasswordHash, req.Password) {
		s.logger.DebugContext(ctx, "login rejected", slog.String("identifier", req.Identifier))
		return "", ErrInvalidCredentials
	}

	return s.issueToken(*account)
}

// issueToken builds the claim set and signs it. Each issuance gets a fresh
// jti nonce, so two tokens for the same account are never identical.
func (s *Service) issueToken(account Account) (string, error) {
	now := time.Now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatInt(account.ID, 10),
			Issuer:    s.issuer,
			Audience:  s.audience,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
		Email:    account.Email,
		FullName: account.FullName,
	}

	token, err := s.tokens.Generate(claims)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return token, nil
}

// TokenTTL returns the session token validity window.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}
