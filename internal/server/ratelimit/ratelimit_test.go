package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(configs ...EndpointConfig) *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    5,
		DefaultWindow:   time.Minute,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: configs,
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig(EndpointConfig{
		Path: "/api/upload", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3,
	}))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/api/upload", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/upload", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(EndpointConfig{
		Path: "/api/upload", Method: "POST", Limit: 10, Window: time.Hour, Burst: 1,
	}))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/api/upload", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/api/upload", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/api/upload", "POST")
	assert.True(t, allowed)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/upload", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/api/results", "GET")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("10.0.0.2", "/api/results", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	cfg := MatchEndpoint("/api/upload", "POST", configs)
	require.NotNil(t, cfg)
	assert.Equal(t, 60, cfg.Limit)

	// Prefix match for path parameters.
	cfg = MatchEndpoint("/api/jobs/123", "DELETE", configs)
	require.NotNil(t, cfg)
	assert.Equal(t, 100, cfg.Limit)

	// Health is unlimited.
	cfg = MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, cfg)
	assert.Zero(t, cfg.Limit)

	// Reads fall through to the default limit.
	assert.Nil(t, MatchEndpoint("/api/results", "GET", configs))
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointConfigs = DefaultEndpointConfigs()
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}
