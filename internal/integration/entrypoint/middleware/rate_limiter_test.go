package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("attempt over the limit should be denied")
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Error("first client should be allowed")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("second client should be allowed")
		}
		if rl.allow("10.0.0.1") {
			t.Error("first client should now be denied")
		}
	})

	t.Run("window expiry restores the budget", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Error("first attempt should be allowed")
		}
		if rl.allow("10.0.0.1") {
			t.Error("second attempt inside the window should be denied")
		}

		time.Sleep(20 * time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Error("attempt after the window should be allowed")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		rl.allow("10.0.0.1")
		rl.Reset()

		if !rl.allow("10.0.0.1") {
			t.Error("attempt after reset should be allowed")
		}
	})

	t.Run("cleanup drops expired entries only", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		rl.allow("stale")
		time.Sleep(20 * time.Millisecond)
		rl.allow("fresh")

		rl.Cleanup()

		if _, ok := rl.entries["stale"]; ok {
			t.Error("expired entry should be removed")
		}
		if _, ok := rl.entries["fresh"]; !ok {
			t.Error("live entry should be kept")
		}
	})
}
