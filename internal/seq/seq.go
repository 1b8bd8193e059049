// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package seq provides general-purpose operations over slices.
package seq

import (
	"cmp"
	"iter"
	"slices"

	"github.com/jeranaias/duet-tui/internal/guard"
)

// =============================================================================
// MEMBERSHIP
// =============================================================================

// ContainsAny reports whether at least one element of other appears in items.
// Either sequence being nil is an answer (false), not an error.
func ContainsAny[T comparable](items, other []T) bool {
	if items == nil || other == nil {
		return false
	}
	set := make(map[T]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	for _, v := range other {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every element of other appears in items.
// Either sequence being nil yields false.
func ContainsAll[T comparable](items, other []T) bool {
	if items == nil || other == nil {
		return false
	}
	set := make(map[T]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	for _, v := range other {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// IndexOf returns the first index at or after start whose element equals
// target, or -1 if none exists. A negative start is treated as zero.
func IndexOf[T comparable](items []T, target T, start int) int {
	return IndexOfFunc(items, func(v T) bool { return v == target }, start)
}

// IndexOfFunc returns the first index at or after start whose element
// satisfies pred, or -1 if none exists. A negative start is treated as zero.
func IndexOfFunc[T any](items []T, pred func(T) bool, start int) int {
	if pred == nil {
		return -1
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < len(items); i++ {
		if pred(items[i]) {
			return i
		}
	}
	return -1
}

// =============================================================================
// COMPARISON
// =============================================================================

// Compare performs a lexicographic three-way comparison of left and right
// using cmp. Sequences are walked in lockstep; the first unequal position
// decides the result, and when one sequence is a prefix of the other the
// shorter compares as less. A nil slice or nil comparer is an invalid
// argument, never a comparison result.
func Compare[T any](left, right []T, cmp func(T, T) int) (int, error) {
	if _, err := guard.FailIf(left, left == nil, "left"); err != nil {
		return 0, err
	}
	if _, err := guard.FailIf(right, right == nil, "right"); err != nil {
		return 0, err
	}
	if _, err := guard.FailIf(cmp, cmp == nil, "cmp"); err != nil {
		return 0, err
	}

	n := min(len(left), len(right))
	for i := 0; i < n; i++ {
		if c := cmp(left[i], right[i]); c != 0 {
			if c < 0 {
				return -1, nil
			}
			return 1, nil
		}
	}
	switch {
	case len(left) < len(right):
		return -1, nil
	case len(left) > len(right):
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports element-wise equality in order. Sequences of different
// length are unequal. Nil inputs are an invalid argument.
func Equal[T comparable](a, b []T) (bool, error) {
	if _, err := guard.FailIf(a, a == nil, "a"); err != nil {
		return false, err
	}
	if _, err := guard.FailIf(b, b == nil, "b"); err != nil {
		return false, err
	}
	return slices.Equal(a, b), nil
}

// ContentsEqual reports whether a and b contain the same elements with the
// same multiplicities, ignoring order. Nil and empty both count as the empty
// multiset. Counting is used rather than sorting because T only defines
// equality, not ordering.
func ContentsEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// =============================================================================
// GROUPING
// =============================================================================

// ItemCount pairs a distinct element with its number of occurrences.
type ItemCount[T any] struct {
	Item  T
	Count int
}

// CountByItem groups items by equality and reports how many times each
// distinct element occurs. The order of the returned groups is not
// guaranteed and must not be relied upon.
func CountByItem[T comparable](items []T) []ItemCount[T] {
	counts := make(map[T]int, len(items))
	for _, v := range items {
		counts[v]++
	}
	result := make([]ItemCount[T], 0, len(counts))
	for v, n := range counts {
		result = append(result, ItemCount[T]{Item: v, Count: n})
	}
	return result
}

// CountByItemFunc groups items under a caller-supplied equality. It runs in
// quadratic time since an arbitrary equality admits no hashing; use
// CountByItem when the default equality is sufficient.
func CountByItemFunc[T any](items []T, eq func(T, T) bool) []ItemCount[T] {
	if eq == nil {
		return nil
	}
	var result []ItemCount[T]
	for _, v := range items {
		found := false
		for i := range result {
			if eq(result[i].Item, v) {
				result[i].Count++
				found = true
				break
			}
		}
		if !found {
			result = append(result, ItemCount[T]{Item: v, Count: 1})
		}
	}
	return result
}

// DistinctBy keeps, for each distinct key, only the first element
// encountered with that key, preserving first-occurrence order.
func DistinctBy[T any, K comparable](items []T, key func(T) K) []T {
	if key == nil {
		return nil
	}
	seen := make(map[K]struct{}, len(items))
	var result []T
	for _, v := range items {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, v)
	}
	return result
}

// =============================================================================
// ORDERING
// =============================================================================

// SortByKey returns a new slice sorted ascending by an integer key.
// The sort is stable; the input is not modified.
func SortByKey[T any](items []T, key func(T) int) []T {
	out := slices.Clone(items)
	// cmp.Compare, not subtraction: key(a)-key(b) wraps around for
	// keys of opposite sign near the int extremes.
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return out
}

// SortByKeyDesc returns a new slice sorted descending by an integer key.
// The sort is stable; the input is not modified.
func SortByKeyDesc[T any](items []T, key func(T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(key(b), key(a)) })
	return out
}

// =============================================================================
// IDENTITY
// =============================================================================

// ContainsSameRefTwice reports whether any single pointer appears more than
// once in items. Identity is pointer identity: two distinct objects that are
// value-equal do not count.
func ContainsSameRefTwice[T any](items []*T) bool {
	seen := make(map[*T]struct{}, len(items))
	for _, p := range items {
		if p == nil {
			continue
		}
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// NonNil returns a lazy, restartable sequence of the non-nil elements of
// items, preserving relative order.
func NonNil[T any](items []*T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, p := range items {
			if p == nil {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
