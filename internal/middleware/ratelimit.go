package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/portfolio/portfolio-server/internal/audit"
	apperrors "github.com/portfolio/portfolio-server/internal/errors"
	"github.com/portfolio/portfolio-server/internal/httputil"
)

const (
	maxEntries      = 10000
	cleanupInterval = time.Minute
)

// Limiter records one hit for key and reports whether it is within limit
// hits per window.
type Limiter interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, resetAt time.Time)
}

type memoryEntry struct {
	timestamps []time.Time
	lastAccess time.Time
}

// MemoryLimiter is the single-instance fallback when Redis is not configured.
type MemoryLimiter struct {
	mu          sync.Mutex
	store       map[string]*memoryEntry
	lastCleanup time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		store:       make(map[string]*memoryEntry),
		lastCleanup: time.Now(),
	}
}

func (l *MemoryLimiter) cleanup(now time.Time, window time.Duration) {
	if now.Sub(l.lastCleanup) < cleanupInterval {
		return
	}
	l.lastCleanup = now

	for key, entry := range l.store {
		if now.Sub(entry.lastAccess) > window {
			delete(l.store, key)
		}
	}

	// Still too big: drop an arbitrary fifth.
	if len(l.store) > maxEntries {
		drop := len(l.store) / 5
		for key := range l.store {
			if drop == 0 {
				break
			}
			delete(l.store, key)
			drop--
		}
	}
}

func (l *MemoryLimiter) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.cleanup(now, window)

	entry, exists := l.store[key]
	if !exists {
		entry = &memoryEntry{}
		l.store[key] = entry
	}
	entry.lastAccess = now

	windowStart := now.Add(-window)
	filtered := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(windowStart) {
			filtered = append(filtered, ts)
		}
	}
	entry.timestamps = filtered

	if len(entry.timestamps) >= limit {
		return false, entry.timestamps[0].Add(window)
	}

	entry.timestamps = append(entry.timestamps, now)
	return true, entry.timestamps[0].Add(window)
}

// ContactRateLimitMiddleware limits submissions per client IP. A limit of
// zero or less disables it.
type ContactRateLimitMiddleware struct {
	limiter Limiter
	limit   int
	window  time.Duration
}

func NewContactRateLimitMiddleware(limiter Limiter, limit int, window time.Duration) *ContactRateLimitMiddleware {
	return &ContactRateLimitMiddleware{
		limiter: limiter,
		limit:   limit,
		window:  window,
	}
}

func (m *ContactRateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limit <= 0 || m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		allowed, resetAt := m.limiter.CheckLimit(r.Context(), "contact:"+ip, m.limit, m.window)

		if !allowed {
			secondsLeft := int(time.Until(resetAt).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(secondsLeft))
			audit.LogFromRequest(r, audit.Event{Type: audit.EventRateLimitExceed})
			httputil.WriteError(w, apperrors.RateLimitExceeded())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which chi's RealIP middleware
// has already rewritten from proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
