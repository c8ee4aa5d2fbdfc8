package batching

import (
	"fmt"
)

// PaddedTensor is an immutable [rows, cols] int tensor with its mask.
// Storage is row-major.
type PaddedTensor struct {
	data    []int
	mask    []bool
	lengths []int
	rows    int
	cols    int
	padIdx  int
}

// NewPaddedTensor right-pads sequences to the longest one using padIdx.
// Row order follows input order.
func NewPaddedTensor(sequences [][]int, padIdx int) (*PaddedTensor, error) {
	if len(sequences) == 0 {
		return nil, ErrEmptyBatch
	}
	rows := len(sequences)
	cols := 0
	lengths := make([]int, rows)
	for i, seq := range sequences {
		lengths[i] = len(seq)
		if len(seq) > cols {
			cols = len(seq)
		}
	}
	if cols == 0 {
		return nil, ErrZeroWidth
	}

	data := make([]int, rows*cols)
	mask := make([]bool, rows*cols)
	for i, seq := range sequences {
		row := data[i*cols : (i+1)*cols]
		n := copy(row, seq)
		for j := n; j < cols; j++ {
			row[j] = padIdx
		}
		rowMask := mask[i*cols : (i+1)*cols]
		for j := 0; j < n; j++ {
			rowMask[j] = true
		}
	}

	pt := &PaddedTensor{
		data:    data,
		mask:    mask,
		lengths: lengths,
		rows:    rows,
		cols:    cols,
		padIdx:  padIdx,
	}
	if err := pt.check(); err != nil {
		return nil, err
	}
	return pt, nil
}

// check verifies that storage, mask and lengths agree with [rows, cols].
func (pt *PaddedTensor) check() error {
	size := pt.rows * pt.cols
	ok := len(pt.data) == size && len(pt.mask) == size && len(pt.lengths) == pt.rows
	assertShape(ok, "padded tensor storage does not match shape",
		"rows", pt.rows, "cols", pt.cols, "data", len(pt.data), "mask", len(pt.mask))
	if !ok {
		return fmt.Errorf("%w: shape [%d %d], data %d, mask %d, lengths %d",
			ErrShapeInvariant, pt.rows, pt.cols, len(pt.data), len(pt.mask), len(pt.lengths))
	}
	for i, n := range pt.lengths {
		if n > pt.cols {
			assertShape(false, "row longer than tensor width", "row", i, "length", n, "cols", pt.cols)
			return fmt.Errorf("%w: row %d has length %d > %d", ErrShapeInvariant, i, n, pt.cols)
		}
	}
	return nil
}

// Shape returns [rows, cols]. The mask always has the same shape.
func (pt *PaddedTensor) Shape() (rows, cols int) { return pt.rows, pt.cols }

// Rows returns the batch size.
func (pt *PaddedTensor) Rows() int { return pt.rows }

// Cols returns the padded length.
func (pt *PaddedTensor) Cols() int { return pt.cols }

// PadIdx returns the value written into padding positions.
func (pt *PaddedTensor) PadIdx() int { return pt.padIdx }

// At returns the value at row i, column j.
func (pt *PaddedTensor) At(i, j int) int {
	pt.bounds(i, j)
	return pt.data[i*pt.cols+j]
}

// Valid reports whether row i, column j holds an original (non-pad) value.
func (pt *PaddedTensor) Valid(i, j int) bool {
	pt.bounds(i, j)
	return pt.mask[i*pt.cols+j]
}

func (pt *PaddedTensor) bounds(i, j int) {
	if i < 0 || i >= pt.rows || j < 0 || j >= pt.cols {
		panic(fmt.Sprintf("batching: index (%d, %d) out of range [%d %d]", i, j, pt.rows, pt.cols))
	}
}

// Row returns a copy of row i including padding.
func (pt *PaddedTensor) Row(i int) []int {
	pt.bounds(i, 0)
	out := make([]int, pt.cols)
	copy(out, pt.data[i*pt.cols:(i+1)*pt.cols])
	return out
}

// Lengths returns a copy of the original (unpadded) row lengths.
func (pt *PaddedTensor) Lengths() []int {
	out := make([]int, len(pt.lengths))
	copy(out, pt.lengths)
	return out
}

// Values returns a copy of the tensor as nested rows.
func (pt *PaddedTensor) Values() [][]int {
	out := make([][]int, pt.rows)
	for i := range out {
		out[i] = pt.Row(i)
	}
	return out
}

// Mask returns a copy of the mask as nested rows.
func (pt *PaddedTensor) Mask() [][]bool {
	out := make([][]bool, pt.rows)
	for i := range out {
		row := make([]bool, pt.cols)
		copy(row, pt.mask[i*pt.cols:(i+1)*pt.cols])
		out[i] = row
	}
	return out
}

// PadCount returns the number of padding positions.
func (pt *PaddedTensor) PadCount() int {
	n := 0
	for _, l := range pt.lengths {
		n += pt.cols - l
	}
	return n
}
