// Package auth implements the credential and token issuance core: ordered
// registration validation, bcrypt password hashing, duplicate-safe account
// registration, and login with stateless JWT session issuance.
//
// The package is storage-agnostic. Account persistence is abstracted behind
// the Store interface; integration/database/pg provides a PostgreSQL
// implementation. Token revocation lives in core/revocation and is
// intentionally decoupled from issuance: the service here never consults the
// blacklist.
//
// # Usage
//
//	store := pg.NewAccountRepository(pool)
//	svc, err := auth.NewFromConfig(cfg, store)
//	if err != nil {
//		log.Fatal(err) // bad signing key fails at startup, not per request
//	}
//
//	if err := svc.Register(ctx, auth.RegisterRequest{...}); err != nil {
//		var ve auth.ValidationError
//		switch {
//		case errors.As(err, &ve):
//			// field-specific message for the registration form
//		case errors.Is(err, auth.ErrAccountExists):
//			// generic duplicate message
//		}
//	}
//
//	token, err := svc.Login(ctx, auth.LoginRequest{Identifier: "user@example.com", Password: pw})
//	if errors.Is(err, auth.ErrInvalidCredentials) {
//		// uniform failure, no enumeration hints
//	}
package auth
