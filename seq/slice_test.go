package seq_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSliceOf_CopiesItsArguments verifies the constructor detaches from the
// caller's slice.
func TestSliceOf_CopiesItsArguments(t *testing.T) {
	src := []int{1, 2, 3}
	s := seq.SliceOf(src...)

	src[0] = 99
	got, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "the store must own its own copy")
}

// TestSlice_AppendGrowsAtTheEnd verifies append order and Len bookkeeping.
func TestSlice_AppendGrowsAtTheEnd(t *testing.T) {
	s := seq.NewSlice[string]()
	s.Append("a")
	s.Append("b")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Slice())
}

// TestSlice_InsertBefore verifies the shift semantics: the returned cursor
// denotes the original element, now one slot right.
func TestSlice_InsertBefore(t *testing.T) {
	s := seq.SliceOf(1, 3)
	at, err := s.Begin().Seek(1) // denotes 3
	require.NoError(t, err)

	at, err = s.InsertBefore(at, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, s.Slice())

	got, err := at.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, got, "returned cursor must still denote the pre-insert element")
}

// TestSlice_InsertBeforeEdges verifies prepend (at Begin) and append
// (at End) through the same primitive.
func TestSlice_InsertBeforeEdges(t *testing.T) {
	s := seq.SliceOf(5)

	_, err := s.InsertBefore(s.Begin(), 4)
	require.NoError(t, err)
	_, err = s.InsertBefore(s.End(), 6)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5, 6}, s.Slice())
}

// TestSlice_InsertBeforeForeignCursor verifies ownership checking.
func TestSlice_InsertBeforeForeignCursor(t *testing.T) {
	a := seq.SliceOf(1)
	b := seq.SliceOf(1)

	_, err := a.InsertBefore(b.Begin(), 0)
	assert.ErrorIs(t, err, cursor.ErrInvalidPosition, "a cursor of another store must be rejected")
}

// TestSliceCursor_Bounds verifies every movement error on the edges.
func TestSliceCursor_Bounds(t *testing.T) {
	s := seq.SliceOf(1, 2)

	_, err := s.End().Step()
	assert.ErrorIs(t, err, cursor.ErrOutOfRange)
	_, err = s.Begin().Back()
	assert.ErrorIs(t, err, cursor.ErrOutOfRange)
	_, err = s.Begin().Seek(3)
	assert.ErrorIs(t, err, cursor.ErrOutOfRange)
	_, err = s.End().Value()
	assert.ErrorIs(t, err, cursor.ErrInvalidPosition)
}

// TestSliceCursor_ZeroValueIsInvalid verifies the zero cursor is rejected
// rather than dereferencing nil.
func TestSliceCursor_ZeroValueIsInvalid(t *testing.T) {
	var c seq.SliceCursor[int]

	_, err := c.Value()
	assert.ErrorIs(t, err, cursor.ErrInvalidPosition)
	_, err = c.Seek(1)
	assert.ErrorIs(t, err, cursor.ErrInvalidPosition)
	_, err = c.DistanceTo(c)
	assert.ErrorIs(t, err, cursor.ErrInvalidPosition)
}

// TestSlice_CursorsSurviveReallocation verifies that cursors index the
// container, so an append that relocates the array does not strand them.
func TestSlice_CursorsSurviveReallocation(t *testing.T) {
	s := seq.NewSlice[int]()
	s.Append(1)
	c := s.Begin()

	for i := 0; i < 100; i++ { // force at least one reallocation
		s.Append(i)
	}

	got, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// TestSlice_ViewBridgesToViewPackage verifies the non-owning bridge.
func TestSlice_ViewBridgesToViewPackage(t *testing.T) {
	s := seq.SliceOf(1, 2, 3)
	v := s.View()

	assert.Equal(t, 3, v.Len())
	got, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
