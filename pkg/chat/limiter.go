package chat

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// VisitorLimiter rate-limits chat requests per visitor. Unlike the
// middleware limiter that guards the whole API, this one is injected
// state with a defined lifecycle: visitors idle longer than the TTL are
// evicted by Sweep, and the clock is injected so eviction is testable.
type VisitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	r        rate.Limit
	b        int
	ttl      time.Duration
	clock    Clock
}

// NewVisitorLimiter allows requestsPerMinute sustained with the given
// burst per visitor; idle visitors are forgotten after ttl.
func NewVisitorLimiter(requestsPerMinute, burst int, ttl time.Duration, clock Clock) *VisitorLimiter {
	if clock == nil {
		clock = SystemClock()
	}
	return &VisitorLimiter{
		visitors: make(map[string]*visitor),
		r:        rate.Limit(float64(requestsPerMinute) / 60.0),
		b:        burst,
		ttl:      ttl,
		clock:    clock,
	}
}

// Allow reports whether this visitor may make a request now.
func (vl *VisitorLimiter) Allow(visitorID string) bool {
	vl.mu.Lock()
	defer vl.mu.Unlock()

	v, ok := vl.visitors[visitorID]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(vl.r, vl.b)}
		vl.visitors[visitorID] = v
	}
	v.lastSeen = vl.clock.Now()
	return v.limiter.Allow()
}

// Sweep evicts visitors idle longer than the TTL and returns how many
// were dropped.
func (vl *VisitorLimiter) Sweep() int {
	vl.mu.Lock()
	defer vl.mu.Unlock()

	cutoff := vl.clock.Now().Add(-vl.ttl)
	dropped := 0
	for id, v := range vl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(vl.visitors, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of tracked visitors.
func (vl *VisitorLimiter) Len() int {
	vl.mu.Lock()
	defer vl.mu.Unlock()
	return len(vl.visitors)
}
