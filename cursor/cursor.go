package cursor

// Forward is the minimal capability tier: one-way movement plus location
// equality. The type parameter C is the concrete cursor type itself
// (a self-referential constraint), so Step returns the same concrete type
// without boxing or reflection.
//
// Contract:
//   - Step returns a new cursor denoting the next element, or the end
//     sentinel when invoked on the last element. Stepping on the end
//     sentinel itself fails with ErrOutOfRange; on failure the receiver
//     is returned unchanged alongside the error.
//   - Equal compares the denoted location only — two cursors over the same
//     container and location are equal regardless of how they were reached.
type Forward[C any] interface {
	// Step returns the cursor advanced by one element.
	Step() (C, error)

	// Equal reports whether both cursors denote the same location in the
	// same sequence instance.
	Equal(other C) bool
}

// Bidirectional extends Forward with single-step retreat.
type Bidirectional[C any] interface {
	Forward[C]

	// Back returns the cursor retreated by one element. Retreating before
	// the first element fails with ErrOutOfRange. Back on the end sentinel
	// of a non-empty sequence yields the last element.
	Back() (C, error)
}

// RandomAccess extends Bidirectional with constant-time jumps and
// constant-time distance measurement.
type RandomAccess[C any] interface {
	Bidirectional[C]

	// Seek returns the cursor offset by n elements (n may be negative)
	// in O(1). A target outside [begin, end] fails with ErrOutOfRange.
	Seek(n int) (C, error)

	// DistanceTo returns the signed element count from the receiver to
	// other in O(1). A cursor from a different sequence instance fails
	// with ErrInvalidPosition.
	DistanceTo(other C) (int, error)
}

// Reader exposes the element a cursor denotes. Kept separate from the
// movement tiers so pure traversal algorithms need no element type.
type Reader[T any] interface {
	// Value returns the denoted element, or ErrInvalidPosition when the
	// cursor is the end sentinel (or otherwise not dereferenceable).
	Value() (T, error)
}

// ValueCursor combines forward movement with element access; the minimal
// contract for algorithms that copy elements out of a range.
type ValueCursor[C, T any] interface {
	Forward[C]
	Reader[T]
}
