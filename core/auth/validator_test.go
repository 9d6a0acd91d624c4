package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/core/auth"
)

func validRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		FullName: "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "StrongP@ssword1",
	}
}

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, auth.ValidateRegistration(validRequest()))
	})

	t.Run("required fields checked in order", func(t *testing.T) {
		req := auth.RegisterRequest{}
		assert.EqualError(t, auth.ValidateRegistration(req), "Email is required.")

		req.Email = "test@example.com"
		assert.EqualError(t, auth.ValidateRegistration(req), "Password is required.")

		req.Password = "StrongP@ssword1"
		assert.EqualError(t, auth.ValidateRegistration(req), "Full Name is required.")

		req.FullName = "Test User"
		assert.EqualError(t, auth.ValidateRegistration(req), "Username is required.")
	})

	t.Run("whitespace-only fields are empty", func(t *testing.T) {
		req := validRequest()
		req.FullName = "   "
		assert.EqualError(t, auth.ValidateRegistration(req), "Full Name is required.")
	})

	t.Run("username with spaces", func(t *testing.T) {
		req := validRequest()
		req.Username = "user name"
		assert.EqualError(t, auth.ValidateRegistration(req), "Username cannot contain spaces.")
	})

	t.Run("username with forbidden characters", func(t *testing.T) {
		req := validRequest()
		req.Username = "user!name"
		err := auth.ValidateRegistration(req)
		assert.EqualError(t, err, "Username contains forbidden characters. Only letters, numbers, '-', and '_' are allowed.")
	})

	t.Run("username with allowed separators", func(t *testing.T) {
		req := validRequest()
		req.Username = "user_name-42"
		assert.NoError(t, auth.ValidateRegistration(req))
	})

	t.Run("invalid email format", func(t *testing.T) {
		for _, email := range []string{"plainaddress", "missing@tld", "two@@example.com", "spaces in@example.com"} {
			req := validRequest()
			req.Email = email
			assert.EqualError(t, auth.ValidateRegistration(req), "Invalid email format.", "email: %s", email)
		}
	})

	t.Run("password too short", func(t *testing.T) {
		req := validRequest()
		req.Password = "short1!"
		assert.EqualError(t, auth.ValidateRegistration(req), "Password must be at least 8 characters long.")
	})

	t.Run("password missing uppercase", func(t *testing.T) {
		req := validRequest()
		req.Password = "alllowercase1!"
		assert.EqualError(t, auth.ValidateRegistration(req), "Password must contain at least one uppercase letter.")
	})

	t.Run("password missing lowercase", func(t *testing.T) {
		req := validRequest()
		req.Password = "ALLUPPERCASE1!"
		assert.EqualError(t, auth.ValidateRegistration(req), "Password must contain at least one lowercase letter.")
	})

	t.Run("password missing digit", func(t *testing.T) {
		req := validRequest()
		req.Password = "NoNumbersHere!"
		assert.EqualError(t, auth.ValidateRegistration(req), "Password must contain at least one number.")
	})

	t.Run("password missing special character", func(t *testing.T) {
		req := validRequest()
		req.Password = "NoSpecials123"
		assert.EqualError(t, auth.ValidateRegistration(req), "Password must contain at least one special character.")
	})

	t.Run("errors carry the offending field", func(t *testing.T) {
		req := validRequest()
		req.Password = "short1!"

		var ve auth.ValidationError
		assert.ErrorAs(t, auth.ValidateRegistration(req), &ve)
		assert.Equal(t, "password", ve.Field)
		assert.True(t, auth.IsValidationError(auth.ValidateRegistration(req)))
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("StrongP@ssword1")
	assert.NoError(t, err)
	assert.NotEqual(t, "StrongP@ssword1", hash)

	assert.True(t, auth.VerifyPassword(hash, "StrongP@ssword1"))
	assert.False(t, auth.VerifyPassword(hash, "WrongPassword1!"))

	// Salted hashing must not be deterministic.
	other, err := auth.HashPassword("StrongP@ssword1")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, other)
}
