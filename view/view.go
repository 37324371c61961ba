package view

import (
	"errors"

	"github.com/katalvlaran/lvlseq/cursor"
)

// ErrBadBounds is returned by Sub when the requested half-open window does
// not satisfy 0 <= lo <= hi <= Len().
var ErrBadBounds = errors.New("view: invalid sub-view bounds")

// View is a non-owning window over a contiguous run of elements.
// The zero value is an empty view.
type View[T any] struct {
	elems []T
}

// Of wraps the given slice without copying it. The view aliases the slice's
// backing array: writes through the array remain visible, and the array must
// stay live and unmoved for the view's entire lifetime.
func Of[T any](elems []T) View[T] {
	return View[T]{elems: elems}
}

// Len returns the number of elements in the window. Always >= 0.
func (v View[T]) Len() int { return len(v.elems) }

// Empty reports whether the window holds no elements.
func (v View[T]) Empty() bool { return len(v.elems) == 0 }

// At returns the element at offset i, or ErrOutOfRange when i is outside
// [0, Len()).
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.elems) {
		var zero T

		return zero, cursor.ErrOutOfRange
	}

	return v.elems[i], nil
}

// First returns the first element, or ErrOutOfRange on an empty view.
func (v View[T]) First() (T, error) { return v.At(0) }

// Last returns the last element, or ErrOutOfRange on an empty view.
func (v View[T]) Last() (T, error) { return v.At(len(v.elems) - 1) }

// Sub returns the half-open sub-window [lo, hi) sharing the same backing
// array. Invalid bounds fail with ErrBadBounds; the receiver is never
// mutated.
func (v View[T]) Sub(lo, hi int) (View[T], error) {
	if lo < 0 || hi < lo || hi > len(v.elems) {
		return View[T]{}, ErrBadBounds
	}

	return View[T]{elems: v.elems[lo:hi:hi]}, nil
}

// Slice exposes the aliased backing slice. Mutating its elements mutates
// the store; growing it is the caller's affair and never affects the view.
func (v View[T]) Slice() []T { return v.elems }

// Begin returns a cursor at the first element (== End() when empty).
func (v View[T]) Begin() Cursor[T] {
	return Cursor[T]{elems: v.elems, i: 0}
}

// End returns the end-sentinel cursor, one past the last element.
func (v View[T]) End() Cursor[T] {
	return Cursor[T]{elems: v.elems, i: len(v.elems)}
}
