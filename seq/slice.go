package seq

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/view"
)

// Compile-time tier checks.
var (
	_ cursor.RandomAccess[SliceCursor[int]] = SliceCursor[int]{}
	_ cursor.Reader[int]                    = SliceCursor[int]{}
)

// Slice is a growable contiguous sequence backed by a Go slice.
// Its cursors sit at the random-access tier.
type Slice[T any] struct {
	elems []T
}

// NewSlice returns an empty Slice.
func NewSlice[T any]() *Slice[T] { return &Slice[T]{} }

// SliceOf returns a Slice holding a copy of the given elements.
func SliceOf[T any](vs ...T) *Slice[T] {
	return &Slice[T]{elems: append([]T(nil), vs...)}
}

// Len returns the element count. O(1).
func (s *Slice[T]) Len() int { return len(s.elems) }

// At returns the element at index i, or ErrOutOfRange.
func (s *Slice[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.elems) {
		var zero T

		return zero, cursor.ErrOutOfRange
	}

	return s.elems[i], nil
}

// Append adds v after the last element. Amortized O(1); may relocate the
// backing array, invalidating the store's Views (cursors keep working —
// they index the container, not the array).
func (s *Slice[T]) Append(v T) {
	s.elems = append(s.elems, v)
}

// InsertBefore inserts v immediately before the element at denotes and
// returns a cursor that again denotes that original element (now shifted
// one slot right). Inserting before End appends. O(m) in the shifted
// suffix. A cursor from another Slice fails with ErrInvalidPosition.
func (s *Slice[T]) InsertBefore(at SliceCursor[T], v T) (SliceCursor[T], error) {
	if at.s != s {
		return SliceCursor[T]{}, cursor.ErrInvalidPosition
	}
	if at.i < 0 || at.i > len(s.elems) {
		return SliceCursor[T]{}, cursor.ErrOutOfRange
	}

	s.elems = append(s.elems, v) // grow by one slot
	copy(s.elems[at.i+1:], s.elems[at.i:])
	s.elems[at.i] = v

	return SliceCursor[T]{s: s, i: at.i + 1}, nil
}

// Begin returns a cursor at the first element (== End() when empty).
func (s *Slice[T]) Begin() SliceCursor[T] { return SliceCursor[T]{s: s, i: 0} }

// End returns the end-sentinel cursor.
func (s *Slice[T]) End() SliceCursor[T] { return SliceCursor[T]{s: s, i: len(s.elems)} }

// Slice returns a copy of the contents; mutating it never touches the store.
func (s *Slice[T]) Slice() []T {
	return append([]T(nil), s.elems...)
}

// View returns a non-owning window over the store's current backing array.
// A later Append may relocate that array; take the View after the store has
// reached its final shape.
func (s *Slice[T]) View() view.View[T] {
	return view.Of(s.elems)
}

// SliceCursor is a random-access position inside a Slice. Cursors index the
// container rather than its backing array, so they survive reallocation but
// not removals or shifts before their index.
type SliceCursor[T any] struct {
	s *Slice[T]
	i int
}

// Index returns the cursor's offset from the store's begin position.
func (c SliceCursor[T]) Index() int { return c.i }

// Value returns the denoted element; ErrInvalidPosition at the end sentinel
// or for the zero-value cursor.
func (c SliceCursor[T]) Value() (T, error) {
	if c.s == nil || c.i < 0 || c.i >= len(c.s.elems) {
		var zero T

		return zero, cursor.ErrInvalidPosition
	}

	return c.s.elems[c.i], nil
}

// Step returns the cursor advanced by one; ErrOutOfRange past the end.
func (c SliceCursor[T]) Step() (SliceCursor[T], error) { return c.Seek(1) }

// Back returns the cursor retreated by one; ErrOutOfRange before the start.
func (c SliceCursor[T]) Back() (SliceCursor[T], error) { return c.Seek(-1) }

// Seek returns the cursor offset by n in O(1); ErrOutOfRange outside
// [0, Len()], ErrInvalidPosition for the zero-value cursor.
func (c SliceCursor[T]) Seek(n int) (SliceCursor[T], error) {
	if c.s == nil {
		return c, cursor.ErrInvalidPosition
	}

	j := c.i + n
	if j < 0 || j > len(c.s.elems) {
		return c, cursor.ErrOutOfRange
	}

	return SliceCursor[T]{s: c.s, i: j}, nil
}

// DistanceTo returns other's index minus the receiver's in O(1);
// ErrInvalidPosition when the cursors belong to different stores.
func (c SliceCursor[T]) DistanceTo(other SliceCursor[T]) (int, error) {
	if c.s == nil || c.s != other.s {
		return 0, cursor.ErrInvalidPosition
	}

	return other.i - c.i, nil
}

// Equal reports whether both cursors denote the same index of the same
// store instance.
func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool {
	return c.s == other.s && c.i == other.i
}
