package pg

import "errors"

// Domain-specific PostgreSQL errors for consistent error handling. Use
// errors.Is() to check error types.
var (
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	ErrFailedToParseConnStr  = errors.New("failed to parse postgres connection string")
	ErrNotReady              = errors.New("postgres did not become ready within the given time period")
	ErrHealthcheckFailed     = errors.New("postgres healthcheck failed")
)
