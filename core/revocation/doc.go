// Package revocation makes an otherwise-stateless token system support
// immediate invalidation (logout) without waiting for natural expiry.
//
// The design is a stateless-token + stateful-blacklist hybrid: token validity
// is normally decided by signature and expiry alone, and this package adds
// the one narrow piece of server-side state needed for logout. Revoked tokens
// are stored as opaque string keys with a sentinel value whose absolute
// expiration equals the token's own expiry, so the blacklist only ever holds
// tokens that are still valid but revoked. Eviction is fully delegated to the
// backing cache.
//
// A revoke is a blind per-key upsert with no read-modify-write step, so
// correctness under concurrency rests entirely on the cache's per-key
// atomicity. A request already in flight during a logout may still pass the
// gate; the only guarantee is that the revoke happens before the logout call
// returns.
package revocation
