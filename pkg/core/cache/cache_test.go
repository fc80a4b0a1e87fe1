package cache

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(DefaultConfig())
	defer c.Close()

	c.Set("a", 1.5)
	got, ok := c.Get("a")
	if !ok || got != 1.5 {
		t.Errorf("Get(a) = %v, %v, want 1.5, true", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate != 50 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 50%%", s)
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New(Config{MaxItems: 10})
	c.SetWithTTL("short", "v", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry returned")
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after expired read", c.Size())
	}

	c.SetWithTTL("forever", "v", 0)
	if _, ok := c.Get("forever"); !ok {
		t.Error("entry without TTL missing")
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	c := New(Config{MaxItems: 2})
	c.Set("first", 1)
	time.Sleep(time.Millisecond)
	c.Set("second", 2)
	time.Sleep(time.Millisecond)
	c.Set("third", 3)

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	if _, ok := c.Get("first"); ok {
		t.Error("oldest entry survived eviction")
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.Stats().Evictions)
	}

	// overwriting an existing key never evicts
	c.Set("third", 4)
	if c.Stats().Evictions != 1 {
		t.Errorf("overwrite evicted an entry")
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New(DefaultConfig())
	calls := 0
	fn := func() (interface{}, error) {
		calls++
		return 42, nil
	}

	v, hit, err := c.GetOrSet("k", fn)
	if err != nil || v != 42 || hit {
		t.Errorf("first GetOrSet = %v, %v, %v", v, hit, err)
	}
	v, hit, _ = c.GetOrSet("k", fn)
	if v != 42 || !hit || calls != 1 {
		t.Errorf("second GetOrSet = %v, hit %v, calls %d", v, hit, calls)
	}

	boom := errors.New("boom")
	if _, _, err := c.GetOrSet("bad", func() (interface{}, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation was cached")
	}
}

func TestCache_ClearDelete(t *testing.T) {
	c := New(DefaultConfig())
	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")
	if c.Size() != 1 {
		t.Errorf("Size() after Delete = %d, want 1", c.Size())
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", c.Size())
	}
}

func TestCache_CleanupLoop(t *testing.T) {
	c := New(Config{MaxItems: 10, CleanupInterval: time.Millisecond})
	defer c.Close()
	c.SetWithTTL("x", 1, time.Nanosecond)

	deadline := time.Now().Add(time.Second)
	for c.Size() > 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	if c.Size() != 0 {
		t.Error("cleanup loop did not remove the expired entry")
	}
	c.Close() // second Close is a no-op
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"identical", Key("limit", "sinc", 0.0, "both"), Key("limit", "sinc", 0.0, "both"), true},
		{"different point", Key("limit", "sinc", 0.0), Key("limit", "sinc", 1e-300), false},
		{"signed zero", Key("limit", 0.0), Key("limit", math.Copysign(0, -1)), false},
		{"different op", Key("limit", 1.0), Key("derivative", 1.0), false},
		{"string boundary", Key("op", "ab", "c"), Key("op", "a", "bc"), false},
		{"slice vs scalars", Key("op", []float64{1, 2}), Key("op", 1.0, 2.0), false},
		{"int and bool", Key("op", 3, true), Key("op", 3, true), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.a == tt.b) != tt.same {
				t.Errorf("Key equality = %v, want %v (%s vs %s)", tt.a == tt.b, tt.same, tt.a, tt.b)
			}
		})
	}
}

func BenchmarkKey(b *testing.B) {
	xs := make([]float64, 64)
	for i := 0; i < b.N; i++ {
		_ = Key("regression", xs, xs)
	}
}
