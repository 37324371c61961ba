package seq

import "github.com/katalvlaran/lvlseq/cursor"

// Compile-time tier checks.
var (
	_ cursor.Bidirectional[ListCursor[int]] = ListCursor[int]{}
	_ cursor.Reader[int]                    = ListCursor[int]{}
)

// listNode is one element of a List's ring. The ring's root node is the end
// sentinel: root.next is the first element, root.prev the last.
type listNode[T any] struct {
	val  T
	prev *listNode[T]
	next *listNode[T]
}

// List is a doubly linked sequence with a sentinel root, in the
// container/list layout. Its cursors sit at the bidirectional tier; node
// addresses are stable, so InsertBefore never invalidates other cursors.
// The zero value is an empty list ready to use.
type List[T any] struct {
	root listNode[T]
	size int
}

// NewList returns an empty List.
func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()

	return l
}

// ListOf returns a List holding the given elements in order.
func ListOf[T any](vs ...T) *List[T] {
	l := NewList[T]()
	for _, v := range vs {
		l.Append(v)
	}

	return l
}

// lazyInit closes the ring of a zero-value List.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Len returns the element count. O(1).
func (l *List[T]) Len() int { return l.size }

// Append adds v after the last element. O(1).
func (l *List[T]) Append(v T) {
	l.lazyInit()
	l.insertBefore(&l.root, v)
}

// InsertBefore inserts v immediately before the element at denotes and
// returns a cursor that still denotes that element (node addresses are
// stable, so it is the input cursor). Inserting before End appends. O(1).
// A cursor from another List fails with ErrInvalidPosition.
func (l *List[T]) InsertBefore(at ListCursor[T], v T) (ListCursor[T], error) {
	l.lazyInit()
	if at.l != l || at.n == nil {
		return ListCursor[T]{}, cursor.ErrInvalidPosition
	}

	l.insertBefore(at.n, v)

	return at, nil
}

// insertBefore links a fresh node holding v in front of at.
func (l *List[T]) insertBefore(at *listNode[T], v T) {
	n := &listNode[T]{val: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++
}

// Begin returns a cursor at the first element (== End() when empty).
func (l *List[T]) Begin() ListCursor[T] {
	l.lazyInit()

	return ListCursor[T]{l: l, n: l.root.next}
}

// End returns the end-sentinel cursor.
func (l *List[T]) End() ListCursor[T] {
	l.lazyInit()

	return ListCursor[T]{l: l, n: &l.root}
}

// Slice returns a copy of the contents in order.
func (l *List[T]) Slice() []T {
	l.lazyInit()
	out := make([]T, 0, l.size)
	for n := l.root.next; n != &l.root; n = n.next {
		out = append(out, n.val)
	}

	return out
}

// ListCursor is a bidirectional position inside a List.
type ListCursor[T any] struct {
	l *List[T]
	n *listNode[T]
}

// Value returns the denoted element; ErrInvalidPosition at the end sentinel
// or for the zero-value cursor.
func (c ListCursor[T]) Value() (T, error) {
	if c.l == nil || c.n == nil || c.n == &c.l.root {
		var zero T

		return zero, cursor.ErrInvalidPosition
	}

	return c.n.val, nil
}

// Step returns the cursor advanced by one; ErrOutOfRange on the end
// sentinel, ErrInvalidPosition for the zero-value cursor.
func (c ListCursor[T]) Step() (ListCursor[T], error) {
	if c.l == nil || c.n == nil {
		return c, cursor.ErrInvalidPosition
	}
	if c.n == &c.l.root {
		return c, cursor.ErrOutOfRange
	}

	return ListCursor[T]{l: c.l, n: c.n.next}, nil
}

// Back returns the cursor retreated by one; ErrOutOfRange before the first
// element (which includes the end sentinel of an empty list).
func (c ListCursor[T]) Back() (ListCursor[T], error) {
	if c.l == nil || c.n == nil {
		return c, cursor.ErrInvalidPosition
	}
	if c.n.prev == &c.l.root {
		return c, cursor.ErrOutOfRange
	}

	return ListCursor[T]{l: c.l, n: c.n.prev}, nil
}

// Equal reports whether both cursors denote the same node of the same list.
func (c ListCursor[T]) Equal(other ListCursor[T]) bool {
	return c.l == other.l && c.n == other.n
}
