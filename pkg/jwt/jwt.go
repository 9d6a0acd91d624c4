package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// minKeyLength is the minimum signing key size for HMAC-SHA256 (256 bits).
const minKeyLength = 32

// header is the fixed JOSE header for all tokens produced by this package.
// Only HS256 is supported; asymmetric algorithms are deliberately out of scope.
type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

var encodedHeader = encodeSegment(mustMarshal(header{Alg: "HS256", Typ: "JWT"}))

// Service generates and parses HMAC-SHA256 signed JWTs.
// A Service is safe for concurrent use.
type Service struct {
	signingKey []byte
}

// New creates a Service with the given signing key.
// The key must be at least 32 bytes; shorter keys are rejected so that a weak
// configuration fails at startup rather than at first request.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	if len(signingKey) < minKeyLength {
		return nil, ErrInvalidSigningKey
	}
	key := make([]byte, len(signingKey))
	copy(key, signingKey)
	return &Service{signingKey: key}, nil
}

// NewFromString creates a Service from a string signing key.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate signs the given claims and returns the encoded token in
// header.claims.signature form. Claims can be any JSON-serializable value,
// typically a struct embedding StandardClaims.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", errors.Join(ErrInvalidClaims, err)
	}

	signingInput := encodedHeader + "." + encodeSegment(payload)
	return signingInput + "." + encodeSegment(s.sign(signingInput)), nil
}

// Parse verifies the token signature and temporal claims, then unmarshals the
// payload into claims, which must be a pointer. The signature is verified
// before any claim data is trusted.
func (s *Service) Parse(token string, claims any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	headerBytes, err := decodeSegment(parts[0])
	if err != nil {
		return ErrInvalidToken
	}
	var h header
	if err := json.Unmarshal(headerBytes, &h); err != nil {
		return ErrInvalidToken
	}
	if h.Alg != "HS256" {
		return ErrUnexpectedSigningMethod
	}

	signature, err := decodeSegment(parts[2])
	if err != nil {
		return ErrInvalidToken
	}
	if !hmac.Equal(signature, s.sign(parts[0]+"."+parts[1])) {
		return ErrInvalidSignature
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return ErrInvalidToken
	}

	var std StandardClaims
	if err := json.Unmarshal(payload, &std); err != nil {
		return errors.Join(ErrInvalidClaims, err)
	}
	if err := std.Valid(time.Now()); err != nil {
		return err
	}

	if claims != nil {
		if err := json.Unmarshal(payload, claims); err != nil {
			return errors.Join(ErrInvalidClaims, err)
		}
	}

	return nil
}

// sign computes the HMAC-SHA256 signature over the signing input.
func (s *Service) sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}

func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(segment)
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
