// File: slicex.go
// Title: Generic Slice Utilities
// Description: Functional helpers over generic slices used by the population
//              sampling routines: filtering, mapping and order-preserving
//              grouping by key.
// Version: v0.2.0
// Created: 2026-03-05
// Modified: 2026-04-09
//
// Change History:
// - 2026-03-05 v0.1.0: Filter, Map, Take, Clone
// - 2026-04-09 v0.2.0: Ordered GroupBy for stratified and cluster sampling

package slicex

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Pick returns the elements at the given indices, in index order
func Pick[T any](slice []T, indices []int) []T {
	result := make([]T, len(indices))
	for i, idx := range indices {
		result[i] = slice[idx]
	}
	return result
}

// Take returns a copy of the first n elements
func Take[T any](slice []T, n int) []T {
	if slice == nil || n <= 0 {
		return nil
	}
	if n >= len(slice) {
		return Clone(slice)
	}

	result := make([]T, n)
	copy(result, slice[:n])
	return result
}

// Clone returns a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Group is one key and the elements that share it
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy groups elements by key. Groups appear in order of the first
// element carrying each key and keep their elements in input order, so the
// result is deterministic.
func GroupBy[T any, K comparable](slice []T, keyFunc func(T) K) []Group[K, T] {
	if slice == nil || keyFunc == nil {
		return nil
	}

	index := make(map[K]int)
	var groups []Group[K, T]
	for _, item := range slice {
		key := keyFunc(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[K, T]{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Flatten concatenates the items of the given groups in group order
func Flatten[K comparable, T any](groups []Group[K, T]) []T {
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	result := make([]T, 0, total)
	for _, g := range groups {
		result = append(result, g.Items...)
	}
	return result
}
