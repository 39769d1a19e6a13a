package middleware

import (
	"sync"
	"testing"
	"time"
)

// TestSessionStore_CreateAndGet verifies the round trip for a fresh session.
func TestSessionStore_CreateAndGet(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create("a1", "admin", "admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, ok := ss.Get(token)
	if !ok {
		t.Fatal("expected session for fresh token")
	}
	if got.AccountID != "a1" || got.Role != "admin" {
		t.Errorf("got session %+v", got)
	}
}

// TestSessionStore_GetExpired verifies that a session older than 24h
// is rejected and reclaimed.
func TestSessionStore_GetExpired(t *testing.T) {
	ss := NewSessionStore()
	ss.sessions["stale"] = Session{
		AccountID: "a1",
		Name:      "admin",
		Role:      "admin",
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}

	if _, ok := ss.Get("stale"); ok {
		t.Error("expected expired session to be rejected")
	}
	ss.mu.Lock()
	_, still := ss.sessions["stale"]
	ss.mu.Unlock()
	if still {
		t.Error("expected expired session to be reclaimed")
	}
}

// TestSessionStore_ConcurrentExpiredGet hammers Get with a stale token
// from many goroutines at once. Admin pages issue parallel requests,
// so two lookups of the same expired session can land simultaneously;
// the reclaim must not trip the runtime's concurrent map check.
// Run with -race.
func TestSessionStore_ConcurrentExpiredGet(t *testing.T) {
	ss := NewSessionStore()
	ss.sessions["stale"] = Session{
		AccountID: "a1",
		Name:      "admin",
		Role:      "admin",
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}
	token, err := ss.Create("a1", "admin", "admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := ss.Get("stale"); ok {
					t.Error("expired session returned as valid")
					return
				}
				if _, ok := ss.Get(token); !ok {
					t.Error("fresh session lost during concurrent expiry")
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestSessionStore_Delete verifies explicit logout removal.
func TestSessionStore_Delete(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create("a1", "admin", "admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("expected session to be gone after Delete")
	}
}
