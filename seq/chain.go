package seq

import "github.com/katalvlaran/lvlseq/cursor"

// Compile-time tier checks: a ChainCursor is forward-only — it must NOT
// satisfy the bidirectional tier.
var (
	_ cursor.Forward[ChainCursor[int]] = ChainCursor[int]{}
	_ cursor.Reader[int]               = ChainCursor[int]{}
)

// chainNode is one element of a Chain.
type chainNode[T any] struct {
	val  T
	next *chainNode[T]
}

// Chain is a singly linked sequence with a tail pointer for O(1) Append.
// Its cursors sit at the forward-only tier, and it deliberately has no
// InsertBefore: a Chain can only serve as an append destination, and that
// limitation is visible at compile time. The zero value is an empty chain
// ready to use.
type Chain[T any] struct {
	head *chainNode[T]
	tail *chainNode[T]
	size int
}

// NewChain returns an empty Chain.
func NewChain[T any]() *Chain[T] { return &Chain[T]{} }

// ChainOf returns a Chain holding the given elements in order.
func ChainOf[T any](vs ...T) *Chain[T] {
	ch := NewChain[T]()
	for _, v := range vs {
		ch.Append(v)
	}

	return ch
}

// Len returns the element count. O(1).
func (ch *Chain[T]) Len() int { return ch.size }

// Append adds v after the last element. O(1) via the tail pointer.
func (ch *Chain[T]) Append(v T) {
	n := &chainNode[T]{val: v}
	if ch.tail == nil {
		ch.head = n
	} else {
		ch.tail.next = n
	}
	ch.tail = n
	ch.size++
}

// Begin returns a cursor at the first element (== End() when empty).
// A Begin taken while the chain is empty stays the end sentinel even after
// later appends; re-take it after mutation.
func (ch *Chain[T]) Begin() ChainCursor[T] {
	return ChainCursor[T]{ch: ch, n: ch.head}
}

// End returns the end-sentinel cursor.
func (ch *Chain[T]) End() ChainCursor[T] {
	return ChainCursor[T]{ch: ch}
}

// Slice returns a copy of the contents in order.
func (ch *Chain[T]) Slice() []T {
	out := make([]T, 0, ch.size)
	for n := ch.head; n != nil; n = n.next {
		out = append(out, n.val)
	}

	return out
}

// ChainCursor is a forward-only position inside a Chain. A nil node is the
// end sentinel.
type ChainCursor[T any] struct {
	ch *Chain[T]
	n  *chainNode[T]
}

// Value returns the denoted element; ErrInvalidPosition at the end sentinel
// or for the zero-value cursor.
func (c ChainCursor[T]) Value() (T, error) {
	if c.ch == nil || c.n == nil {
		var zero T

		return zero, cursor.ErrInvalidPosition
	}

	return c.n.val, nil
}

// Step returns the cursor advanced by one; ErrOutOfRange on the end
// sentinel, ErrInvalidPosition for the zero-value cursor.
func (c ChainCursor[T]) Step() (ChainCursor[T], error) {
	if c.ch == nil {
		return c, cursor.ErrInvalidPosition
	}
	if c.n == nil {
		return c, cursor.ErrOutOfRange
	}

	return ChainCursor[T]{ch: c.ch, n: c.n.next}, nil
}

// Equal reports whether both cursors denote the same node of the same chain
// (all end sentinels of one chain are equal).
func (c ChainCursor[T]) Equal(other ChainCursor[T]) bool {
	return c.ch == other.ch && c.n == other.n
}
