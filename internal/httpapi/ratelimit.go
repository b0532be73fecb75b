package httpapi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"ocrd/pkg/types"
)

// Per-IP rate limiting (opt-in). RealIP middleware runs earlier in the chain,
// so RemoteAddr already reflects forwarded headers.
var (
	rlEnabled bool
	rlLimit   rate.Limit
	rlBurst   int

	limiters    sync.Map // ip -> *rate.Limiter
	rlJanitorUp sync.Once
)

// SetRateLimit configures per-IP request rate limiting. rps is the sustained
// requests-per-second allowance; burst the bucket size. Disabled when rps <= 0.
func SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		rlEnabled = false
		return
	}
	if burst <= 0 {
		burst = 1
	}
	rlEnabled = true
	rlLimit = rate.Limit(rps)
	rlBurst = burst
	rlJanitorUp.Do(func() {
		go func() {
			// Drop all limiters periodically so idle IPs do not accumulate.
			for range time.Tick(5 * time.Minute) {
				limiters.Range(func(k, _ any) bool {
					limiters.Delete(k)
					return true
				})
			}
		}()
	})
}

func limiterFor(ip string) *rate.Limiter {
	if v, ok := limiters.Load(ip); ok {
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(rlLimit, rlBurst)
	actual, _ := limiters.LoadOrStore(ip, l)
	return actual.(*rate.Limiter)
}

// RateLimitMiddleware rejects clients exceeding their per-IP allowance.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !limiterFor(ip).Allow() {
			rateLimitedTotal.Inc()
			writeJSON(w, http.StatusTooManyRequests, types.ErrorResponse{Message: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
