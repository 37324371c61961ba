package traverse

import (
	"errors"

	"github.com/katalvlaran/lvlseq/cursor"
)

// Advance returns a cursor denoting the element n steps away from c.
//
// Algorithm Outline:
//  1. n == 0 — no-op, return c.
//  2. Random-access tier — one Seek(n), O(1).
//  3. n > 0 — forward Step loop, O(n).
//  4. n < 0 — requires the bidirectional tier (else cursor.ErrUnsupported),
//     then a Back loop, O(|n|).
//
// Advancing to the end sentinel is valid; moving past either bound surfaces
// the cursor's cursor.ErrOutOfRange. On failure the cursor reached so far
// is returned alongside the error; the input c is never mutated.
//
// Complexity: O(1) on random-access cursors, O(|n|) otherwise.
func Advance[C cursor.Forward[C]](c C, n int) (C, error) {
	if n == 0 {
		return c, nil
	}
	if ra, ok := any(c).(cursor.RandomAccess[C]); ok {
		return ra.Seek(n)
	}

	var err error
	if n > 0 {
		for ; n > 0; n-- {
			if c, err = c.Step(); err != nil {
				return c, err
			}
		}

		return c, nil
	}

	bd, ok := any(c).(cursor.Bidirectional[C])
	if !ok {
		return c, cursor.ErrUnsupported
	}
	for ; n < 0; n++ {
		if c, err = bd.Back(); err != nil {
			return c, err
		}
		bd = any(c).(cursor.Bidirectional[C])
	}

	return c, nil
}

// Next returns a copy of c advanced by n steps; c itself is never moved.
func Next[C cursor.Forward[C]](c C, n int) (C, error) {
	return Advance(c, n)
}

// Prev returns a copy of c retreated by n steps; c itself is never moved.
// For n > 0 the cursor must be at least bidirectional, otherwise Prev fails
// with cursor.ErrUnsupported.
func Prev[C cursor.Forward[C]](c C, n int) (C, error) {
	return Advance(c, -n)
}

// Distance returns the count of forward steps from first to last.
//
// On random-access cursors the result is DistanceTo's signed difference in
// O(1) (negative when last precedes first). Otherwise a counting Step loop
// runs from first toward last, O(n), under the precondition that last is
// forward-reachable from first. The loop is bounded two ways instead of
// reproducing the classic infinite scan:
//
//   - a Step that hits the sequence's own end sentinel before reaching
//     last fails with cursor.ErrUnreachable;
//   - WithMaxScan(n) caps the step count for backing stores whose end is
//     not detectable, also failing with cursor.ErrUnreachable.
//
// On failure the steps taken so far are returned alongside the error.
func Distance[C cursor.Forward[C]](first, last C, opts ...Option) (int, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	if ra, ok := any(first).(cursor.RandomAccess[C]); ok {
		return ra.DistanceTo(last)
	}

	steps := 0
	for cur := first; !cur.Equal(last); steps++ {
		if o.maxScan > 0 && steps >= o.maxScan {
			return steps, cursor.ErrUnreachable
		}
		if cur, err = cur.Step(); err != nil {
			if errors.Is(err, cursor.ErrOutOfRange) {
				return steps, cursor.ErrUnreachable
			}

			return steps, err
		}
	}

	return steps, nil
}
