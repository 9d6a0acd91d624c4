package middleware

import (
	"net/http"
	"strings"
)

// TokenExtractor pulls a token string out of a request, returning "" when
// absent.
type TokenExtractor func(r *http.Request) string

// FromAuthHeader extracts a bearer token from the Authorization header.
// A value without the "Bearer " prefix is accepted as-is.
func FromAuthHeader() TokenExtractor {
	return func(r *http.Request) string {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			return ""
		}
		const bearerPrefix = "Bearer "
		if strings.HasPrefix(auth, bearerPrefix) {
			return strings.TrimSpace(auth[len(bearerPrefix):])
		}
		return auth
	}
}

// FromHeader extracts the token from a custom header.
func FromHeader(name string) TokenExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(name)
	}
}

// FromQuery extracts the token from a URL query parameter.
func FromQuery(param string) TokenExtractor {
	return func(r *http.Request) string {
		return r.URL.Query().Get(param)
	}
}

// FromCookie extracts the token from an HTTP cookie.
func FromCookie(name string) TokenExtractor {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// FromMultiple tries extractors in order and returns the first non-empty
// token found.
func FromMultiple(extractors ...TokenExtractor) TokenExtractor {
	return func(r *http.Request) string {
		for _, extract := range extractors {
			if token := extract(r); token != "" {
				return token
			}
		}
		return ""
	}
}
