package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword computes an adaptive salted hash of the password. bcrypt is
// used so the cost can be raised as hardware improves; a fast general-purpose
// hash is never acceptable here.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
