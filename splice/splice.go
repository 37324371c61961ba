package splice

import "github.com/katalvlaran/lvlseq/cursor"

// Append returns the append strategy bound to dst: every Put lands after
// dst's last element, so Copy yields dst ++ src.
func Append[T any](dst AppendTarget[T]) Inserter[T] {
	return &appendInserter[T]{dst: dst}
}

// appendInserter writes each element to the destination's logical end.
type appendInserter[T any] struct {
	dst AppendTarget[T]
}

func (a *appendInserter[T]) Put(v T) error {
	if a.dst == nil {
		return ErrNilDestination
	}
	a.dst.Append(v)

	return nil
}

// Before returns the positional strategy bound to dst: every Put lands
// immediately before the element at denotes, so earlier Puts stay earlier
// and the original at-element (with everything after it) ends up after the
// whole copied run. at must belong to dst; foreign cursors are rejected by
// the destination with cursor.ErrInvalidPosition on the first Put.
//
// The element type T cannot be inferred from dst alone, so call sites name
// it: splice.Before[int](dst, at).
func Before[T, C any](dst InsertTarget[T, C], at C) Inserter[T] {
	return &beforeInserter[T, C]{dst: dst, at: at}
}

// beforeInserter tracks the moving insertion point across Puts.
type beforeInserter[T, C any] struct {
	dst InsertTarget[T, C]
	at  C
}

func (b *beforeInserter[T, C]) Put(v T) error {
	if b.dst == nil {
		return ErrNilDestination
	}

	at, err := b.dst.InsertBefore(b.at, v)
	if err != nil {
		return err
	}
	b.at = at

	return nil
}

// Copy writes every element of the half-open source range [first, last)
// into ins's destination, in forward order, and returns the number of
// elements copied.
//
// Edge cases:
//   - an empty range (first == last) is a no-op returning (0, nil);
//   - a last not forward-reachable from first is a precondition violation;
//     with end-sentinel-aware cursors the walk surfaces the cursor's own
//     error (ErrInvalidPosition on dereference or ErrOutOfRange on Step)
//     rather than hanging;
//   - on failure the count of elements already written is returned, and
//     the destination keeps them (no rollback).
//
// Complexity: O(k) cursor operations for k copied elements, plus the
// strategy's per-Put cost.
func Copy[T any, C cursor.ValueCursor[C, T]](first, last C, ins Inserter[T]) (int, error) {
	if ins == nil {
		return 0, ErrNilInserter
	}

	var (
		v   T
		err error
	)
	copied := 0
	for cur := first; !cur.Equal(last); copied++ {
		if v, err = cur.Value(); err != nil {
			return copied, err
		}
		if err = ins.Put(v); err != nil {
			return copied, err
		}
		if cur, err = cur.Step(); err != nil {
			return copied, err
		}
	}

	return copied, nil
}
