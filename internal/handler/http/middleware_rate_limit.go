package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/utils"
)

const (
	limiterIdleTTL   = time.Hour
	limiterPruneSize = 1024
)

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// ipRateLimiter keeps one token bucket per client IP.
// A non-positive rps disables limiting.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rps      float64
	burst    int
	now      func() time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	if burst <= 0 {
		burst = int(math.Max(1, math.Ceil(rps)))
	}
	return &ipRateLimiter{
		limiters: make(map[string]*limiterEntry),
		rps:      rps,
		burst:    burst,
		now:      time.Now,
	}
}

func (l *ipRateLimiter) enabled() bool {
	return l != nil && l.rps > 0
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if e, ok := l.limiters[ip]; ok {
		e.lastAccess = now
		return e.limiter
	}

	if len(l.limiters) >= limiterPruneSize {
		for key, e := range l.limiters {
			if now.Sub(e.lastAccess) > limiterIdleTTL {
				delete(l.limiters, key)
			}
		}
	}

	e := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst), lastAccess: now}
	l.limiters[ip] = e
	return e.limiter
}

// rateLimit throttles user decryption per client IP and answers 429 with a
// Retry-After header once the bucket is empty.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.enabled() {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		limiter := h.limiter.get(ip)
		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
			reservation.Cancel()

			logger.FromRequest(r).Debug().
				Str("client_ip", ip).
				Int("retry_after", retryAfter).
				Msg("user decryption rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			utils.WriteError(w, r, ErrTooManyRequests.Error(), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
