package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

// MutationRateLimiter throttles write traffic per client IP. Entries idle
// longer than the client TTL are evicted by a background sweep so the map
// does not grow with one-off clients.
type MutationRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*rateLimiterEntry
	perSecond rate.Limit
	burst     int
	clientTTL time.Duration
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewMutationRateLimiter(perSecond, burst int, clientTTL time.Duration) *MutationRateLimiter {
	rl := &MutationRateLimiter{
		clients:   make(map[string]*rateLimiterEntry),
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		clientTTL: clientTTL,
	}
	go rl.sweep()
	return rl
}

func (rl *MutationRateLimiter) sweep() {
	for range time.Tick(rl.clientTTL) {
		rl.mu.Lock()
		for ip, entry := range rl.clients {
			if time.Since(entry.lastSeen) > rl.clientTTL {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *MutationRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.clients[ip]
	if !ok {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.perSecond, rl.burst)}
		rl.clients[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

// MutationRateLimit protects the booking and availability write endpoints.
// Read traffic goes through the coarser global limiter instead.
func (m *Middlewares) MutationRateLimit(rl *MutationRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !rl.allow(ip) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
