// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package seq provides general-purpose operations over slices, independent of
// any business meaning. Inputs are never mutated; sorting helpers return a
// fresh slice.
//
// # Key Functions
//
// Membership:
//   - ContainsAny, ContainsAll: set-style membership tests
//   - IndexOf, IndexOfFunc: first-index search with a start offset
//
// Comparison:
//   - Compare: lexicographic three-way comparison with a caller comparer
//   - Equal: ordered element-wise equality
//   - ContentsEqual: multiset equality, ignoring order
//
// Grouping and ordering:
//   - CountByItem, CountByItemFunc: occurrence counts per distinct element
//   - DistinctBy: first element per distinct key
//   - SortByKey, SortByKeyDesc: stable sort by integer key
//
// Identity:
//   - ContainsSameRefTwice: detects the same pointer appearing twice
//   - NonNil: lazy traversal of the non-nil elements
package seq
