package auth

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	specialRegex  = regexp.MustCompile(`[!@#$%^&*(),.?"{}|<>]`)
)

// RegisterRequest carries the registration input fields.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the login input. Identifier is either an email address
// or a username; the presence of '@' decides which lookup runs.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// ValidateRegistration checks registration input quality before any hashing
// or persistence happens. It is a pure function: checks run in a fixed order
// and stop at the first failure, returning a ValidationError with a
// field-attributable message.
func ValidateRegistration(req RegisterRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return ValidationError{Field: "email", Message: "Email is required."}
	}
	if strings.TrimSpace(req.Password) == "" {
		return ValidationError{Field: "password", Message: "Password is required."}
	}
	if strings.TrimSpace(req.FullName) == "" {
		return ValidationError{Field: "full_name", Message: "Full Name is required."}
	}
	if strings.TrimSpace(req.Username) == "" {
		return ValidationError{Field: "username", Message: "Username is required."}
	}

	if err := validateUsername(req.Username); err != nil {
		return err
	}
	if !emailRegex.MatchString(req.Email) {
		return ValidationError{Field: "email", Message: "Invalid email format."}
	}
	return validatePasswordStrength(req.Password)
}

func validateUsername(username string) error {
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return ValidationError{Field: "username", Message: "Username cannot contain spaces."}
	}
	if !usernameRegex.MatchString(username) {
		return ValidationError{
			Field:   "username",
			Message: "Username contains forbidden characters. Only letters, numbers, '-', and '_' are allowed.",
		}
	}
	return nil
}

func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "Password must be at least 8 characters long."}
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return ValidationError{Field: "password", Message: "Password must contain at least one uppercase letter."}
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return ValidationError{Field: "password", Message: "Password must contain at least one lowercase letter."}
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return ValidationError{Field: "password", Message: "Password must contain at least one number."}
	}
	if !specialRegex.MatchString(password) {
		return ValidationError{Field: "password", Message: "Password must contain at least one special character."}
	}
	return nil
}
