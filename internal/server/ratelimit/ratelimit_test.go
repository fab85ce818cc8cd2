package ratelimit

import (
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	// Should allow 10 requests immediately (burst)
	for i := 0; i < 10; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request should be denied (no tokens left)
	if bucket.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 5; i++ {
		bucket.allow()
	}

	remaining, resetTime := bucket.getStatus()
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if resetTime.Before(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_GenerationEndpointBurst(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"

	// Generation endpoint allows a burst of 5
	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow(clientID, "/api/generate-itinerary", "POST")
		if !allowed {
			t.Errorf("Expected generation request %d to be allowed", i+1)
		}
		if info.Limit != 20 {
			t.Errorf("Expected limit 20, got %d", info.Limit)
		}
	}

	allowed, info := limiter.Allow(clientID, "/api/generate-itinerary", "POST")
	if allowed {
		t.Error("Expected request after burst to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}

	// Other endpoints use the default limit
	allowed, info = limiter.Allow(clientID, "/api/trips", "GET")
	if !allowed {
		t.Error("Expected unrelated endpoint to be allowed")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}

func TestLimiter_WalletPrefixMatch(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	_, info := limiter.Allow("127.0.0.1", "/api/travel-wallet/documents", "POST")
	if info.Limit != 100 {
		t.Errorf("Expected wallet write limit 100, got %d", info.Limit)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    1,
		DefaultWindow:   time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET")
		if !allowed {
			t.Errorf("Expected health check %d to be allowed", i+1)
		}
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/api/trips", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/api/trips", "GET")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}
