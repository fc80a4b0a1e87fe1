package inference

import (
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

func population(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func TestSimpleRandom(t *testing.T) {
	pop := population(100)
	got, err := SimpleRandom(pop, 10, mathx.NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	seen := map[int]bool{}
	for _, v := range got {
		if v < 0 || v >= 100 {
			t.Errorf("element %d not in population", v)
		}
		if seen[v] {
			t.Errorf("element %d drawn twice", v)
		}
		seen[v] = true
	}
	for i, v := range pop {
		if v != i {
			t.Fatal("population was modified")
		}
	}

	all, _ := SimpleRandom(pop, 100, mathx.NewRand(3))
	if len(all) != 100 {
		t.Errorf("census len = %d, want 100", len(all))
	}
}

func TestSamplingErrors(t *testing.T) {
	pop := population(5)
	rng := mathx.NewRand(1)
	tests := []struct {
		name string
		fn   func() error
		want func(error) bool
	}{
		{"n zero", func() error { _, err := SimpleRandom(pop, 0, rng); return err }, smerror.IsDomain},
		{"n above N", func() error { _, err := SimpleRandom(pop, 6, rng); return err }, smerror.IsDomain},
		{"nil rng", func() error { _, err := SimpleRandom(pop, 2, nil); return err }, smerror.IsInvalidInput},
		{"systematic n above N", func() error { _, err := Systematic(pop, 9, rng); return err }, smerror.IsDomain},
		{"stratified nil key", func() error { _, err := Stratified[int, int](pop, nil, 2, rng); return err }, smerror.IsInvalidInput},
		{"cluster too many", func() error {
			_, err := Cluster(pop, func(v int) bool { return v%2 == 0 }, 3, rng)
			return err
		}, smerror.IsDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !tt.want(err) {
				t.Errorf("error = %v", err)
			}
		})
	}
}

func TestSystematic(t *testing.T) {
	got, err := Systematic(population(100), 10, mathx.NewRand(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0] < 0 || got[0] >= 10 {
		t.Errorf("start = %d, want in [0, 10)", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i]-got[i-1] != 10 {
			t.Errorf("step %d = %d, want 10", i, got[i]-got[i-1])
		}
	}
}

func TestStratifiedAllocation(t *testing.T) {
	// 60 a, 30 b, 10 c
	pop := make([]string, 0, 100)
	for i := 0; i < 60; i++ {
		pop = append(pop, "a")
	}
	for i := 0; i < 30; i++ {
		pop = append(pop, "b")
	}
	for i := 0; i < 10; i++ {
		pop = append(pop, "c")
	}
	key := func(s string) string { return s }

	tests := []struct {
		n    int
		want map[string]int
	}{
		{10, map[string]int{"a": 6, "b": 3, "c": 1}},
		{7, map[string]int{"a": 4, "b": 2, "c": 1}},
		{100, map[string]int{"a": 60, "b": 30, "c": 10}},
	}
	for _, tt := range tests {
		got, err := Stratified(pop, key, tt.n, mathx.NewRand(11))
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.n {
			t.Errorf("n=%d: len = %d", tt.n, len(got))
		}
		counts := map[string]int{}
		for _, s := range got {
			counts[s]++
		}
		for k, v := range tt.want {
			if counts[k] != v {
				t.Errorf("n=%d: stratum %s = %d, want %d", tt.n, k, counts[k], v)
			}
		}
	}
}

func TestCluster(t *testing.T) {
	key := func(v int) int { return v / 10 }
	got, err := Cluster(population(100), key, 3, mathx.NewRand(8))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 30 {
		t.Fatalf("len = %d, want 30", len(got))
	}
	counts := map[int]int{}
	for i, v := range got {
		counts[key(v)]++
		if i > 0 && key(v) < key(got[i-1]) {
			t.Errorf("clusters out of order at %d", i)
		}
	}
	if len(counts) != 3 {
		t.Errorf("clusters = %d, want 3", len(counts))
	}
	for c, n := range counts {
		if n != 10 {
			t.Errorf("cluster %d has %d members, want 10", c, n)
		}
	}
}

func TestSamplingReproducible(t *testing.T) {
	a, _ := SimpleRandom(population(50), 20, mathx.NewRand(42))
	b, _ := SimpleRandom(population(50), 20, mathx.NewRand(42))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs with the same seed", i)
		}
	}
}
