package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_WithinLimit(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 5, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed, "request %d should be allowed", i)
	}
}

func TestAllow_BlocksWhenExhausted(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 2, Window: time.Hour})
	defer l.Stop()

	l.Allow("client-a")
	l.Allow("client-a")
	allowed, info := l.Allow("client-a")

	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Hour})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	assert.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed)
}

func TestAllow_DisabledAlwaysAllows(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Hour})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, DefaultWindow, cfg.Window)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT", "7")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 7, cfg.Limit)
	assert.Equal(t, 30*time.Second, cfg.Window)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "-3")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "abc")

	cfg := LoadConfig()

	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, DefaultWindow, cfg.Window)
}
