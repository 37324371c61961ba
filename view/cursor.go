package view

import "github.com/katalvlaran/lvlseq/cursor"

// Compile-time tier checks.
var (
	_ cursor.RandomAccess[Cursor[int]] = Cursor[int]{}
	_ cursor.Reader[int]               = Cursor[int]{}
)

// Cursor is a read-only random-access position inside a View. The zero
// value is the end sentinel of an empty view.
type Cursor[T any] struct {
	elems []T
	i     int
}

// Index returns the cursor's offset from the view's begin position.
func (c Cursor[T]) Index() int { return c.i }

// Value returns the denoted element; ErrInvalidPosition at the end sentinel.
func (c Cursor[T]) Value() (T, error) {
	if c.i < 0 || c.i >= len(c.elems) {
		var zero T

		return zero, cursor.ErrInvalidPosition
	}

	return c.elems[c.i], nil
}

// Step returns the cursor advanced by one; ErrOutOfRange past the end.
func (c Cursor[T]) Step() (Cursor[T], error) {
	return c.Seek(1)
}

// Back returns the cursor retreated by one; ErrOutOfRange before the start.
func (c Cursor[T]) Back() (Cursor[T], error) {
	return c.Seek(-1)
}

// Seek returns the cursor offset by n in O(1); a target outside [0, Len()]
// fails with ErrOutOfRange, returning the receiver unchanged.
func (c Cursor[T]) Seek(n int) (Cursor[T], error) {
	j := c.i + n
	if j < 0 || j > len(c.elems) {
		return c, cursor.ErrOutOfRange
	}

	return Cursor[T]{elems: c.elems, i: j}, nil
}

// DistanceTo returns other's offset minus the receiver's in O(1);
// ErrInvalidPosition when the cursors window different backing runs.
func (c Cursor[T]) DistanceTo(other Cursor[T]) (int, error) {
	if !sameRun(c.elems, other.elems) {
		return 0, cursor.ErrInvalidPosition
	}

	return other.i - c.i, nil
}

// Equal reports whether both cursors denote the same location of the same
// backing run. Capability plays no part in equality.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.i == other.i && sameRun(c.elems, other.elems)
}

// sameRun reports whether two slice headers window the same run: same
// length and, when non-empty, same first-element address. Two empty runs
// are indistinguishable and compare equal.
func sameRun[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	return &a[0] == &b[0]
}
