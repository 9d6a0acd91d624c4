// Package middleware provides net/http middleware for the authentication
// core: JWT validation and the token-revocation gate.
//
// The two concerns are deliberately separate. JWT validates signature and
// temporal claims and puts the parsed claims into the request context.
// TokenBlacklist consults the revocation store for tokens that are otherwise
// still valid. Chain them with the blacklist gate first, so a revoked token
// is rejected before any handler work:
//
//	handler := middleware.TokenBlacklist(revocationStore)(
//		middleware.JWT(signingKey)(mux),
//	)
//
// Revoked-token rejections carry a distinct problem+json detail so clients
// can tell logout-induced invalidation apart from ordinary unauthenticated
// access.
package middleware
