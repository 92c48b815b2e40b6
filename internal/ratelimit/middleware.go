// Package ratelimit throttles credential-guessing against the login
// endpoint. State is in-process, matching the rest of the application.
package ratelimit

import (
	"net/http"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/noah-isme/backend-apotek/internal/common"
)

// New builds a limiter from a rate expression such as "10-M" (ten requests
// per minute) backed by an in-memory store.
func New(rate string) (*limiter.Limiter, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), parsed), nil
}

// Middleware enforces the limit per client IP.
func Middleware(l *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx, err := l.Get(r.Context(), common.ClientIP(r))
			if err != nil {
				common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "rate limiter error", nil)
				return
			}
			if ctx.Reached {
				common.JSONError(w, http.StatusTooManyRequests, common.CodeRateLimited, "too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
