package middleware

import (
	"todopad/pkg/log"
)

type Middleware struct {
	l               log.Logger
	jwtSecret       []byte
	rateLimitPerMin int
	limiter         *rateLimiter
}

func New(l log.Logger, jwtSecret string, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		jwtSecret:       []byte(jwtSecret),
		rateLimitPerMin: rateLimitPerMin,
		limiter:         newRateLimiter(rateLimitPerMin),
	}
}
