package export

import (
	"testing"

	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	source, err := batching.NewPaddedTensor([][]int{{5, 7}, {3}}, 0)
	require.NoError(t, err)
	target, err := batching.NewPaddedTensor([][]int{{1}, {2, 2, 2}}, 0)
	require.NoError(t, err)
	pb, err := batching.NewPaddedBatch(source, batching.None(), batching.Some(target))
	require.NoError(t, err)

	fields := flatten(pb)
	require.Len(t, fields, 4)

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
		assert.Equal(t, 2, f.rows)
		assert.Len(t, f.data, f.rows*f.cols)
	}
	assert.Equal(t, []string{SourceName, SourceMaskName, TargetName, TargetMaskName}, names)
	assert.Equal(t, []int64{5, 7, 3, 0}, fields[0].data)
	assert.Equal(t, []int64{1, 1, 1, 0}, fields[1].data)
	assert.Equal(t, []int64{1, 0, 0, 2, 2, 2}, fields[2].data)
	assert.Equal(t, []int64{1, 0, 0, 1, 1, 1}, fields[3].data)
}
