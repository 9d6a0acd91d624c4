package auth

import "errors"

var (
	// ErrAccountNotFound is returned by Store lookups when no account matches.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when registration collides with an existing
	// email or username. Terminal for that registration attempt.
	ErrAccountExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned by Login for any authentication
	// failure. It is deliberately uniform across "unknown account" and "wrong
	// password" to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed registration field. The message is
// human-readable and safe to surface to the registration form.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
