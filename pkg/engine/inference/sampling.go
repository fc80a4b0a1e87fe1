// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     inference
// Description: Sampling designs, standard errors, confidence intervals,
//              bootstrap, hypothesis tests, power and effect size
// Created:     2026-03-11
// License:     MIT
// ============================================================================

package inference

import (
	"math/rand/v2"
	"sort"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/slicex"
)

func checkSampling(op string, size, n int, rng *rand.Rand) error {
	if rng == nil {
		return smerror.InvalidInput(op, "random source is nil")
	}
	if n < 1 || n > size {
		return smerror.Domain(op, "sample size must be between 1 and the population size").
			WithDetail("n", n).
			WithDetail("population", size)
	}
	return nil
}

// drawIndices picks n distinct indices of [0, size) with a partial
// Fisher–Yates shuffle.
func drawIndices(size, n int, rng *rand.Rand) []int {
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(size-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:n]
}

// SimpleRandom draws n elements without replacement, every subset equally likely
func SimpleRandom[T any](population []T, n int, rng *rand.Rand) ([]T, error) {
	if err := checkSampling("inference.SimpleRandom", len(population), n, rng); err != nil {
		return nil, err
	}
	return slicex.Pick(population, drawIndices(len(population), n, rng)), nil
}

// Systematic takes every k-th element, k = ⌊N/n⌋, from a random start in [0, k)
func Systematic[T any](population []T, n int, rng *rand.Rand) ([]T, error) {
	if err := checkSampling("inference.Systematic", len(population), n, rng); err != nil {
		return nil, err
	}
	k := len(population) / n
	start := rng.IntN(k)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = start + i*k
	}
	return slicex.Pick(population, idx), nil
}

// Stratified splits the population by key and samples each stratum in
// proportion to its size. Rounding uses largest remainders so the total is
// exactly n. Strata appear in order of first appearance.
func Stratified[T any, K comparable](population []T, key func(T) K, n int, rng *rand.Rand) ([]T, error) {
	const op = "inference.Stratified"
	if key == nil {
		return nil, smerror.InvalidInput(op, "key function is nil")
	}
	if err := checkSampling(op, len(population), n, rng); err != nil {
		return nil, err
	}

	strata := slicex.GroupBy(population, key)
	alloc := allocate(strata, len(population), n)

	out := make([]T, 0, n)
	for i, s := range strata {
		if alloc[i] == 0 {
			continue
		}
		out = append(out, slicex.Pick(s.Items, drawIndices(len(s.Items), alloc[i], rng))...)
	}
	return out, nil
}

// allocate splits n across strata by largest remainder
func allocate[K comparable, T any](strata []slicex.Group[K, T], total, n int) []int {
	alloc := make([]int, len(strata))
	type remainder struct {
		i    int
		frac float64
	}
	rems := make([]remainder, len(strata))
	assigned := 0
	for i, s := range strata {
		exact := float64(n) * float64(len(s.Items)) / float64(total)
		alloc[i] = int(exact)
		assigned += alloc[i]
		rems[i] = remainder{i, exact - float64(alloc[i])}
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for j := 0; assigned < n; j++ {
		alloc[rems[j].i]++
		assigned++
	}
	return alloc
}

// Cluster partitions the population by key and keeps every member of
// clusters randomly chosen groups, in their original order.
func Cluster[T any, K comparable](population []T, key func(T) K, clusters int, rng *rand.Rand) ([]T, error) {
	const op = "inference.Cluster"
	if key == nil {
		return nil, smerror.InvalidInput(op, "key function is nil")
	}
	groups := slicex.GroupBy(population, key)
	if err := checkSampling(op, len(groups), clusters, rng); err != nil {
		return nil, err
	}
	chosen := drawIndices(len(groups), clusters, rng)
	sort.Ints(chosen)
	return slicex.Flatten(slicex.Pick(groups, chosen)), nil
}
