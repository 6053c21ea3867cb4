package middleware

import (
	"vision-gateway/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers: request ids, rate
// limiting, and optional static-token auth.
type Middleware struct {
	l        log.Logger
	apiToken string
	limiter  *rateLimiter
}

// New creates the middleware set. An empty apiToken disables auth; a
// non-positive requestsPerMin disables rate limiting.
func New(l log.Logger, apiToken string, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:        l,
		apiToken: apiToken,
		limiter:  rl,
	}
}
