package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/utils"
)

// ipRateLimiter keeps one token bucket per client address.
type ipRateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// newIPRateLimiter returns nil, meaning no limit, when perSecond is not
// positive.
func newIPRateLimiter(perSecond float64, burst int) *ipRateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return &ipRateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *ipRateLimiter) allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// withRateLimit answers 429 Too Many Requests once a client address has
// used up its bucket. It runs after chi's RealIP so proxies are honored.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientAddress(r)
		if !h.limiter.allow(key) {
			logger.FromRequest(r).Warn().Str("client", key).Str("uri", r.RequestURI).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(h.limiter.limit)))
			utils.WriteError(w, http.StatusTooManyRequests, ErrTooManyRequests.Error(), "")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfterSeconds(limit rate.Limit) int {
	if limit >= 1 {
		return 1
	}
	return int(1/limit) + 1
}
