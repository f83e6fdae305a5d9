// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; idle entries are pruned once it
// is exceeded.
const maxTrackedClients = 10000

// ipRateLimiter keeps one token bucket per client IP. Each bucket holds
// `requests` tokens and refills completely over `window`.
type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter

	requests int
	window   time.Duration
	now      func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newIPRateLimiter returns nil when requests or window is not positive,
// which disables limiting.
func newIPRateLimiter(requests int, window time.Duration) *ipRateLimiter {
	if requests <= 0 || window <= 0 {
		return nil
	}

	return &ipRateLimiter{
		clients:  make(map[string]*clientLimiter),
		requests: requests,
		window:   window,
		now:      time.Now,
	}
}

// allow reports whether ip may issue one more request now.
func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	c, ok := l.clients[ip]
	if !ok {
		if len(l.clients) >= maxTrackedClients {
			l.prune(now)
		}
		every := l.window / time.Duration(l.requests)
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Every(every), l.requests)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// prune drops clients idle for a full window; their buckets are full again
// anyway. Callers hold l.mu.
func (l *ipRateLimiter) prune(now time.Time) {
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.window {
			delete(l.clients, ip)
		}
	}
}

// withRateLimit rejects a client with 429 once its bucket is empty.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	limit := strconv.Itoa(h.limiter.requests)
	retryAfter := strconv.Itoa(int(math.Ceil(h.limiter.window.Seconds() / float64(h.limiter.requests))))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("RateLimit-Limit", limit)

		if !h.limiter.allow(clientIP(r)) {
			w.Header().Set("Retry-After", retryAfter)
			writeErrorMessage(w, http.StatusTooManyRequests, app.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
