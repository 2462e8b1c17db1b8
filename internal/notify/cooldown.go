package notify

import (
	"sync"
	"time"
)

// CooldownGate suppresses repeated notifications per key until a cooldown
// has elapsed. Each sampler run owns its own gate, so suppression state
// never leaks across sessions.
type CooldownGate struct {
	cooldown time.Duration
	last     map[string]time.Time
	now      func() time.Time
	mu       sync.Mutex
}

// NewCooldownGate creates a gate with the given cooldown
func NewCooldownGate(cooldown time.Duration) *CooldownGate {
	return &CooldownGate{
		cooldown: cooldown,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether a notification for key may fire now, and records
// the attempt when it may. The first call for a key always passes.
func (g *CooldownGate) Allow(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if last, ok := g.last[key]; ok && now.Sub(last) <= g.cooldown {
		return false
	}
	g.last[key] = now
	return true
}
