package view_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCursor_StepWalksToEnd verifies that stepping visits every element once
// and that the end sentinel refuses both Step and Value.
func TestCursor_StepWalksToEnd(t *testing.T) {
	v := view.Of([]int{10, 20, 30})

	c := v.Begin()
	var seen []int
	for !c.Equal(v.End()) {
		got, err := c.Value()
		require.NoError(t, err)
		seen = append(seen, got)
		c, err = c.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, []int{10, 20, 30}, seen)

	_, err := c.Value()
	assert.ErrorIs(t, err, cursor.ErrInvalidPosition, "end sentinel is not dereferenceable")
	_, err = c.Step()
	assert.ErrorIs(t, err, cursor.ErrOutOfRange, "stepping on the end sentinel must error")
}

// TestCursor_BackFromEndYieldsLast verifies retreat semantics on both edges.
func TestCursor_BackFromEndYieldsLast(t *testing.T) {
	v := view.Of([]int{1, 2, 3})

	last, err := v.End().Back()
	require.NoError(t, err)
	got, err := last.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, got, "Back from end must land on the last element")

	_, err = v.Begin().Back()
	assert.ErrorIs(t, err, cursor.ErrOutOfRange, "retreat before the first element must error")
}

// TestCursor_SeekBounds verifies the O(1) jump accepts [0, Len()] targets
// and rejects everything else.
func TestCursor_SeekBounds(t *testing.T) {
	v := view.Of([]int{1, 2, 3, 4})

	c, err := v.Begin().Seek(4)
	require.NoError(t, err)
	assert.True(t, c.Equal(v.End()), "seek to Len() lands on the end sentinel")

	_, err = v.Begin().Seek(5)
	assert.ErrorIs(t, err, cursor.ErrOutOfRange)
	_, err = v.Begin().Seek(-1)
	assert.ErrorIs(t, err, cursor.ErrOutOfRange)

	back, err := c.Seek(-4)
	require.NoError(t, err)
	assert.True(t, back.Equal(v.Begin()), "seek is reversible")
}

// TestCursor_DistanceTo verifies the O(1) signed distance, including the
// cross-view rejection.
func TestCursor_DistanceTo(t *testing.T) {
	v := view.Of([]int{1, 2, 3, 4, 5})

	d, err := v.Begin().DistanceTo(v.End())
	require.NoError(t, err)
	assert.Equal(t, 5, d)

	d, err = v.End().DistanceTo(v.Begin())
	require.NoError(t, err)
	assert.Equal(t, -5, d, "distance is signed on the random-access tier")

	other := view.Of([]int{1, 2, 3})
	_, err = v.Begin().DistanceTo(other.Begin())
	assert.ErrorIs(t, err, cursor.ErrInvalidPosition, "cursors of different runs must be rejected")
}

// TestCursor_IndexTracksOffset verifies Index for diagnostics.
func TestCursor_IndexTracksOffset(t *testing.T) {
	v := view.Of([]int{9, 9, 9})

	c, err := v.Begin().Seek(2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 3, v.End().Index())
}
