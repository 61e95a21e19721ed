// Package bperrors declares the error kinds shared by every layer of the
// solver: a fatal instance/search and IO, and a recoverable one used by
// Repair and crossover pruning to signal a refused bin operation.
package bperrors

import "errors"

// ErrInstanceInvalid marks a problem instance with a non-positive or
// over-capacity item weight. Fatal at load time.
var ErrInstanceInvalid = errors.New("instance invalid")

// ErrIOFailure marks an absent or malformed benchmark file.
var ErrIOFailure = errors.New("io failure")

// ErrInvariantViolation marks an internal bug: a component returned a
// Packing that fails I1-I4. The search must abort rather than expose it.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrBinOperationRefused marks a local, recoverable refusal: inserting a
// duplicate item, removing an absent one, or exceeding capacity. Callers
// such as Repair and GA crossover pruning catch this with errors.Is and
// choose an alternative placement; it must never propagate to the driver.
var ErrBinOperationRefused = errors.New("bin operation refused")

// Must panics if err is non-nil. Reserved for ErrInvariantViolation-class
// internal bugs where every caller would otherwise just re-panic.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Must0 panics if err is non-nil.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}
