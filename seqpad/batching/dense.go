package batching

import (
	"gonum.org/v1/gonum/mat"
)

// Dense returns the values as a float64 matrix of shape [rows, cols].
func (pt *PaddedTensor) Dense() *mat.Dense {
	buf := make([]float64, len(pt.data))
	for k, v := range pt.data {
		buf[k] = float64(v)
	}
	return mat.NewDense(pt.rows, pt.cols, buf)
}

// MaskDense returns the mask as a 1/0 float64 matrix of shape [rows, cols].
func (pt *PaddedTensor) MaskDense() *mat.Dense {
	buf := make([]float64, len(pt.mask))
	for k, ok := range pt.mask {
		if ok {
			buf[k] = 1
		}
	}
	return mat.NewDense(pt.rows, pt.cols, buf)
}
