//go:build !onnx
// +build !onnx

package export

import (
	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"
)

// ORTInputs is a stub used when built without the "onnx" build tag.
func ORTInputs(pb *batching.PaddedBatch) (map[string]any, func(), error) {
	return nil, nil, ErrUnavailable
}
