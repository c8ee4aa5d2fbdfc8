//go:build onnx
// +build onnx

package export

import (
	"fmt"

	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"

	ort "github.com/yalue/onnxruntime_go"
)

// ORTInputs builds an int64 ONNX Runtime tensor of shape [N, L] for every
// present field and mask of pb, keyed by input name. The returned release
// func destroys all tensors and must be called once the session has run.
func ORTInputs(pb *batching.PaddedBatch) (map[string]ort.Value, func(), error) {
	fields := flatten(pb)
	inputs := make(map[string]ort.Value, len(fields))
	release := func() {
		for _, v := range inputs {
			v.Destroy()
		}
	}
	for _, f := range fields {
		shape := ort.NewShape(int64(f.rows), int64(f.cols))
		t, err := ort.NewTensor(shape, f.data)
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("%s tensor: %w", f.name, err)
		}
		inputs[f.name] = t
	}
	return inputs, release, nil
}
