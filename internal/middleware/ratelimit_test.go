package middleware

import (
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("1.2.3.4")
		if !ok {
			t.Fatalf("request %d denied within limit", i)
		}
	}
	ok, retryAfter := rl.Allow("1.2.3.4")
	if ok {
		t.Fatal("request over limit allowed")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Fatalf("retryAfter = %s", retryAfter)
	}
}

func TestAllowIsPerIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	if ok, _ := rl.Allow("1.1.1.1"); !ok {
		t.Fatal("first ip denied")
	}
	if ok, _ := rl.Allow("2.2.2.2"); !ok {
		t.Fatal("second ip denied")
	}
	if ok, _ := rl.Allow("1.1.1.1"); ok {
		t.Fatal("first ip not limited")
	}
}

func TestAllowWindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	rl.Allow("1.2.3.4")
	if ok, _ := rl.Allow("1.2.3.4"); ok {
		t.Fatal("second request allowed inside window")
	}
	time.Sleep(15 * time.Millisecond)
	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Fatal("request denied after window reset")
	}
}
