package batching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTensor(t *testing.T, seqs [][]int) *PaddedTensor {
	t.Helper()
	pt, err := NewPaddedTensor(seqs, 0)
	require.NoError(t, err)
	return pt
}

func TestOptional(t *testing.T) {
	none := None()
	got, ok := none.Get()
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, none.Present())
	assert.False(t, Some(nil).Present())

	pt := mustTensor(t, [][]int{{1}})
	some := Some(pt)
	got, ok = some.Get()
	assert.True(t, ok)
	assert.Same(t, pt, got)
}

func TestNewPaddedBatch(t *testing.T) {
	source := mustTensor(t, [][]int{{1, 2}, {3}})
	features := mustTensor(t, [][]int{{4}, {5, 6, 7}})
	target := mustTensor(t, [][]int{{8}, {9}})

	t.Run("all fields", func(t *testing.T) {
		pb, err := NewPaddedBatch(source, Some(features), Some(target))
		require.NoError(t, err)
		assert.Equal(t, 2, pb.Size())
		assert.Same(t, source, pb.Source())
		assert.True(t, pb.HasFeatures())
		assert.True(t, pb.HasTarget())
		f, _ := pb.Features().Get()
		assert.Equal(t, 3, f.Cols())
	})

	t.Run("source only", func(t *testing.T) {
		pb, err := NewPaddedBatch(source, None(), None())
		require.NoError(t, err)
		assert.False(t, pb.HasFeatures())
		assert.False(t, pb.HasTarget())
		_, ok := pb.Target().Get()
		assert.False(t, ok)
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewPaddedBatch(nil, None(), None())
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		short := mustTensor(t, [][]int{{1}})
		_, err := NewPaddedBatch(source, None(), Some(short))
		assert.ErrorIs(t, err, ErrShapeInvariant)
	})
}
