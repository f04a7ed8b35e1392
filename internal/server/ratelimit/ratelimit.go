// Package ratelimit provides per-client request limiting with token buckets.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Defaults applied when the environment sets nothing.
const (
	DefaultLimit  = 60
	DefaultWindow = time.Minute

	cleanupInterval = 5 * time.Minute
	bucketIdleTTL   = time.Hour
)

// Config holds limiter settings.
type Config struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

// LoadConfig reads RATE_LIMIT_ENABLED, RATE_LIMIT and RATE_LIMIT_WINDOW_SECONDS.
func LoadConfig() *Config {
	cfg := &Config{Enabled: true, Limit: DefaultLimit, Window: DefaultWindow}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.Limit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Window = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// Info reports the limiter state for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket is a token bucket refilled continuously at rate tokens/second.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	rate       float64
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (b *bucket) take(now time.Time) (bool, int, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
	b.lastAccess = now

	allowed := b.tokens >= 1
	if allowed {
		b.tokens--
	}

	reset := now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return allowed, int(b.tokens), reset
}

// Limiter tracks one bucket per client.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{Enabled: true, Limit: DefaultLimit, Window: DefaultWindow}
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}
	if config.Enabled {
		l.ticker = time.NewTicker(cleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may make another request now.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	now := time.Now()
	b := l.bucketFor(clientID)
	allowed, remaining, reset := b.take(now)

	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if retry := time.Until(reset); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return allowed, info
}

func (l *Limiter) bucketFor(clientID string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		capacity := float64(l.config.Limit)
		b = &bucket{
			capacity:   capacity,
			rate:       capacity / l.config.Window.Seconds(),
			tokens:     capacity,
			lastRefill: time.Now(),
		}
		l.buckets[clientID] = b
	}
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.dropIdle()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) dropIdle() {
	cutoff := time.Now().Add(-bucketIdleTTL)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		idle := b.lastAccess.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
