// Package redis provides Redis client initialization with connection
// verification and health checking, plus a Cache adapter backing the token
// revocation blacklist.
//
// Connect validates the connection URL, attempts connection with retries,
// and verifies connectivity with a ping before returning the client:
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0"}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	blacklist := revocation.NewStore(redis.NewCache(client))
//
// The Cache adapter stores values with absolute expirations (SET ... EXAT),
// so a blacklist entry is forgotten by Redis at exactly the revoked token's
// own expiry with no cleanup step on the application side.
//
// Healthcheck returns a ping-based probe function suitable for readiness
// endpoints. Errors are wrapped in the package sentinels for errors.Is
// checks.
package redis
