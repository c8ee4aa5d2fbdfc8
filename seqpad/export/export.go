// Package export converts padded batches into model runtime inputs.
package export

import (
	"errors"

	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"
)

// ErrUnavailable is returned when the binary was built without ONNX support.
var ErrUnavailable = errors.New("onnx export not available: build with -tags onnx")

// Input names used for each padded field and its mask.
const (
	SourceName       = "source"
	SourceMaskName   = "source_mask"
	FeaturesName     = "features"
	FeaturesMaskName = "features_mask"
	TargetName       = "target"
	TargetMaskName   = "target_mask"
)

// field is one named tensor of a batch flattened to row-major int64.
type field struct {
	name string
	rows int
	cols int
	data []int64
}

// flatten returns values and 0/1 mask for every present field, in the
// order source, features, target.
func flatten(pb *batching.PaddedBatch) []field {
	var out []field
	add := func(name, maskName string, pt *batching.PaddedTensor) {
		rows, cols := pt.Shape()
		vals := make([]int64, rows*cols)
		mask := make([]int64, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				vals[i*cols+j] = int64(pt.At(i, j))
				if pt.Valid(i, j) {
					mask[i*cols+j] = 1
				}
			}
		}
		out = append(out,
			field{name: name, rows: rows, cols: cols, data: vals},
			field{name: maskName, rows: rows, cols: cols, data: mask},
		)
	}
	add(SourceName, SourceMaskName, pb.Source())
	if f, ok := pb.Features().Get(); ok {
		add(FeaturesName, FeaturesMaskName, f)
	}
	if t, ok := pb.Target().Get(); ok {
		add(TargetName, TargetMaskName, t)
	}
	return out
}
