// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package guard provides precondition checks for function arguments.
package guard

import (
	"fmt"
	"reflect"
)

// Number covers the built-in numeric types accepted by the numeric checks.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// =============================================================================
// CONDITION CHECKS
// =============================================================================

// FailIf returns v unchanged unless cond is true, in which case it returns an
// ErrInvalidArgument error naming label.
func FailIf[T any](v T, cond bool, label string) (T, error) {
	if cond {
		return v, invalidArg(label, "condition failed")
	}
	return v, nil
}

// FailIfFunc evaluates pred against v and fails when it returns true.
// A nil predicate is itself an invalid argument.
func FailIfFunc[T any](v T, pred func(T) bool, label string) (T, error) {
	if pred == nil {
		return v, invalidArg(label, "nil predicate")
	}
	if pred(v) {
		return v, invalidArg(label, "predicate failed")
	}
	return v, nil
}

// FailIfWith fails with the error produced by fail when cond is true.
// A factory that yields no error when invoked is an internal inconsistency,
// reported as ErrInternal rather than silently succeeding.
func FailIfWith[T any](v T, cond bool, fail func() error) (T, error) {
	if !cond {
		return v, nil
	}
	if fail == nil {
		return v, fmt.Errorf("%w: nil failure factory", ErrInternal)
	}
	err := fail()
	if err == nil {
		return v, fmt.Errorf("%w: failure factory produced no failure", ErrInternal)
	}
	return v, err
}

// =============================================================================
// NIL AND EMPTINESS CHECKS
// =============================================================================

// FailIfNil fails with ErrInvalidArgument when v is nil.
func FailIfNil[T any](v *T, label string) (*T, error) {
	if v == nil {
		return nil, invalidArg(label, "is nil")
	}
	return v, nil
}

// FailIfNilOrEmpty fails when s is the empty string.
func FailIfNilOrEmpty(s string, label string) (string, error) {
	if s == "" {
		return s, invalidArg(label, "is empty")
	}
	return s, nil
}

// FailIfNilOrEmptySlice fails when items is nil or has zero elements.
// The two cases report distinct reasons.
func FailIfNilOrEmptySlice[T any](items []T, label string) ([]T, error) {
	if items == nil {
		return nil, invalidArg(label, "is nil")
	}
	if len(items) == 0 {
		return items, invalidArg(label, "is empty")
	}
	return items, nil
}

// FailIfEmpty fails when items has zero elements. Unlike
// FailIfNilOrEmptySlice it does not treat nil specially: a sequence with no
// elements is the violation, however it was produced.
func FailIfEmpty[T any](items []T, label string) ([]T, error) {
	if len(items) == 0 {
		return items, invalidArg(label, "is empty")
	}
	return items, nil
}

// FailIfContainsNil scans items and fails on the first nil element.
// A nil or empty sequence passes; only the elements are checked.
func FailIfContainsNil[T any](items []*T, label string) ([]*T, error) {
	for i, item := range items {
		if item == nil {
			return items, invalidArg(label, fmt.Sprintf("element %d is nil", i))
		}
	}
	return items, nil
}

// =============================================================================
// NUMERIC CHECKS
// =============================================================================

// FailIfNegative fails with ErrInvalidArgument when n is below zero.
func FailIfNegative[T Number](n T, label string) (T, error) {
	if n < 0 {
		return n, invalidArg(label, "is negative")
	}
	return n, nil
}

// FailIfNotPositive fails with ErrInvalidArgument when n is zero or below.
func FailIfNotPositive[T Number](n T, label string) (T, error) {
	if n <= 0 {
		return n, invalidArg(label, "is not positive")
	}
	return n, nil
}

// FailIfOutsideRange fails with ErrOutOfRange when n falls outside
// [min, max]. Both bounds are inclusive.
func FailIfOutsideRange[T Number](n, min, max T, label string) (T, error) {
	if n < min || n > max {
		return n, outOfRange(label, fmt.Sprintf("%v not in [%v, %v]", n, min, max))
	}
	return n, nil
}

// =============================================================================
// TYPE CHECKS
// =============================================================================

// FailIfNotAssignableTo fails when the dynamic type of v cannot be assigned
// to target. A nil target or a nil v is an invalid argument in its own right.
func FailIfNotAssignableTo(v any, target reflect.Type, label string) (any, error) {
	if target == nil {
		return v, invalidArg(label, "nil target type")
	}
	if v == nil {
		return v, invalidArg(label, "is nil")
	}
	vt := reflect.TypeOf(v)
	if !vt.AssignableTo(target) {
		return v, invalidArg(label, vt.String()+" is not assignable to "+target.String())
	}
	return v, nil
}

// FailIfMissingDefaultConstructor fails when t cannot be instantiated with a
// usable zero value. The nil type reference is checked first and reported as
// its own violation. Interfaces have no concrete default, and the zero values
// of channels and funcs are nil handles that cannot be invoked, so all three
// fail the check.
func FailIfMissingDefaultConstructor(t reflect.Type, label string) (reflect.Type, error) {
	if t == nil {
		return nil, invalidArg(label, "is nil")
	}
	switch t.Kind() {
	case reflect.Invalid, reflect.Interface, reflect.Chan, reflect.Func:
		return t, invalidArg(label, t.String()+" has no default constructor")
	}
	return t, nil
}

// =============================================================================
// PANIC WRAPPER
// =============================================================================

// Must unwraps a (value, error) pair from any guard helper, panicking on
// error. Intended for construction-time invariants that cannot legitimately
// fail at runtime.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
