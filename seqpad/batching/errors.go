package batching

import "errors"

var (
	// ErrEmptyBatch is returned when there are no sequences to pad.
	ErrEmptyBatch = errors.New("empty batch: no items to pad")
	// ErrZeroWidth is returned when every sequence of a field is empty.
	ErrZeroWidth = errors.New("zero width: all sequences are empty")
	// ErrShapeInvariant signals a tensor whose shapes disagree. It indicates
	// an internal bug and is not expected from valid input.
	ErrShapeInvariant = errors.New("shape invariant violation")
)
