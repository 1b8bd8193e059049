// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package guard provides precondition checks for function arguments.
package guard

import "errors"

// =============================================================================
// ERROR KINDS
// =============================================================================

// Sentinel errors classifying every guard failure.
// Use errors.Is(err, guard.ErrInvalidArgument) etc. to test the kind.
var (
	// ErrInvalidArgument indicates a precondition on a supplied value failed
	// (nil, empty, negative, non-positive, or an explicit condition).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange indicates a numeric value fell outside an inclusive bound.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInternal indicates the guard machinery itself misbehaved, such as a
	// failure factory that produced no failure when invoked.
	ErrInternal = errors.New("internal inconsistency")
)

// =============================================================================
// ARGUMENT ERROR
// =============================================================================

// ArgumentError is the concrete error returned by the Fail* helpers.
// It names the offending argument and wraps one of the package sentinels.
type ArgumentError struct {
	// Label is the caller-supplied name of the argument being checked.
	Label string

	// Reason describes why the check failed.
	Reason string

	// Kind is the sentinel this error wraps (ErrInvalidArgument or ErrOutOfRange).
	Kind error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Label == "" {
		return e.Kind.Error() + ": " + e.Reason
	}
	return e.Kind.Error() + ": " + e.Label + ": " + e.Reason
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

// invalidArg builds an ArgumentError wrapping ErrInvalidArgument.
func invalidArg(label, reason string) error {
	return &ArgumentError{Label: label, Reason: reason, Kind: ErrInvalidArgument}
}

// outOfRange builds an ArgumentError wrapping ErrOutOfRange.
func outOfRange(label, reason string) error {
	return &ArgumentError{Label: label, Reason: reason, Kind: ErrOutOfRange}
}
