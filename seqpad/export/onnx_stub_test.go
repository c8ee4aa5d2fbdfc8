//go:build !onnx
// +build !onnx

package export

import (
	"testing"

	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestORTInputsUnavailable(t *testing.T) {
	source, err := batching.NewPaddedTensor([][]int{{1}}, 0)
	require.NoError(t, err)
	pb, err := batching.NewPaddedBatch(source, batching.None(), batching.None())
	require.NoError(t, err)

	inputs, release, err := ORTInputs(pb)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, inputs)
	assert.Nil(t, release)
}
