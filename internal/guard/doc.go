// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package guard provides precondition checks for function arguments.
//
// Every helper evaluates a condition against a supplied value and returns the
// value unchanged on success, so checks can be chained inline at the top of a
// function. On violation a *ArgumentError is returned that wraps one of the
// package sentinels, so callers can classify failures with errors.Is.
//
// # Key Functions
//
// Condition checks:
//   - FailIf, FailIfFunc: fail when a condition or predicate holds
//   - FailIfWith: fail with a caller-produced error
//
// Nil and emptiness checks:
//   - FailIfNil, FailIfNilOrEmpty, FailIfContainsNil, FailIfEmpty
//
// Numeric checks:
//   - FailIfNegative, FailIfNotPositive, FailIfOutsideRange
//
// Type checks (reflect-based):
//   - FailIfNotAssignableTo, FailIfMissingDefaultConstructor
//
// # Usage
//
//	func NewStore(dir string, limit int) (*Store, error) {
//	    if _, err := guard.FailIfNilOrEmpty(dir, "dir"); err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.FailIfNegative(limit, "limit"); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
package guard
