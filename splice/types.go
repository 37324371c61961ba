// Package splice: strategy and destination contracts plus error definitions
// for the insertion-copy algorithm.
package splice

import "errors"

// Sentinel errors for insertion-copy execution.
var (
	// ErrNilInserter is returned by Copy when no strategy is supplied.
	ErrNilInserter = errors.New("splice: nil inserter strategy")

	// ErrNilDestination is returned by a strategy bound to a nil destination.
	ErrNilDestination = errors.New("splice: nil destination sequence")
)

// Inserter is the write strategy bound to one destination sequence. A
// strategy is selected once at the call site and consumed by Copy; Put is
// invoked once per copied element, in source order.
//
// Implementations may carry state between calls (Before tracks its moving
// insertion point), so an Inserter must not be shared across concurrent
// Copy calls.
type Inserter[T any] interface {
	// Put writes one element into the destination, or reports why it
	// cannot (propagated unwrapped by Copy).
	Put(v T) error
}

// AppendTarget is the destination contract of the append strategy:
// Append adds v after the last element in amortized O(1).
type AppendTarget[T any] interface {
	Append(v T)
}

// InsertTarget is the destination contract of the positional strategy:
// InsertBefore inserts v immediately before the element at denotes and
// returns a cursor that again denotes that original element, so repeated
// insertion preserves source order. at must belong to the destination
// instance (cursor.ErrInvalidPosition otherwise).
type InsertTarget[T, C any] interface {
	InsertBefore(at C, v T) (C, error)
}
