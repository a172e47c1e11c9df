package cache

import (
	"testing"
	"time"
)

func TestGetReturnsSnapshotUntilExpiry(t *testing.T) {
	c := New(50 * time.Millisecond)
	c.Set("home:1", []byte("snapshot"))

	got, ok := c.Get("home:1")
	if !ok || string(got) != "snapshot" {
		t.Fatalf("Get = %q, %v; want snapshot hit", got, ok)
	}

	// A new value for the same key replaces the snapshot
	c.Set("home:1", []byte("snapshot2"))
	if got, _ = c.Get("home:1"); string(got) != "snapshot2" {
		t.Fatalf("Get after Set = %q", got)
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok = c.Get("home:1"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestGetMissingKey(t *testing.T) {
	c := New(time.Minute)
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("home:1", []byte("a"))
	c.Set("home:2", []byte("b"))
	c.Clear()
	if _, ok := c.Get("home:1"); ok {
		t.Fatal("expected miss after Clear")
	}
	if _, ok := c.Get("home:2"); ok {
		t.Fatal("expected miss after Clear")
	}
}
