package httputil

import (
	"errors"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	type payload struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}

	if err := c.Set("curriculum:42", payload{Title: "intro", Count: 7}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got payload
	hit, err := c.Get("curriculum:42", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.Title != "intro" || got.Count != 7 {
		t.Errorf("got %+v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	var v string
	hit, err := c.Get("missing", &v)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("expected miss for absent key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if err := c.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	var v string
	hit, err := c.Get("k", &v)
	if hit {
		t.Error("expected expired entry to miss")
	}
	if !errors.Is(err, ErrExpired) {
		t.Errorf("error = %v, want ErrExpired", err)
	}
}

func TestCacheNamespace(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	a := c.Namespace("a:")
	b := c.Namespace("b:")

	if err := a.Set("key", "from-a"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var v string
	if hit, _ := b.Get("key", &v); hit {
		t.Error("namespaces should not share keys")
	}
	if hit, _ := a.Get("key", &v); !hit || v != "from-a" {
		t.Errorf("a.Get = (%v, %q)", hit, v)
	}

	// Chained namespaces compose prefixes.
	nested := c.Namespace("a:").Namespace("x:")
	if err := nested.Set("key", "nested"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if hit, _ := c.Namespace("a:x:").Get("key", &v); !hit || v != "nested" {
		t.Errorf("chained namespace Get = (%v, %q)", hit, v)
	}
}
