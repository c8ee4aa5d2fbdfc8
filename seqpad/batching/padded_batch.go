package batching

import "fmt"

// PaddedBatch is the collated form of one batch of items.
type PaddedBatch struct {
	source   *PaddedTensor
	features Optional
	target   Optional
}

// NewPaddedBatch assembles a batch. All present fields must have the same
// number of rows as source.
func NewPaddedBatch(source *PaddedTensor, features, target Optional) (*PaddedBatch, error) {
	if source == nil {
		return nil, ErrEmptyBatch
	}
	for name, field := range map[string]Optional{"features": features, "target": target} {
		t, ok := field.Get()
		if !ok {
			continue
		}
		if t.rows != source.rows {
			assertShape(false, "field row count differs from source", "field", name, "rows", t.rows, "source", source.rows)
			return nil, fmt.Errorf("%w: %s has %d rows, source has %d", ErrShapeInvariant, name, t.rows, source.rows)
		}
	}
	return &PaddedBatch{source: source, features: features, target: target}, nil
}

// Source returns the padded source (or source with features appended).
func (pb *PaddedBatch) Source() *PaddedTensor { return pb.source }

// Features returns the separately padded features, if any.
func (pb *PaddedBatch) Features() Optional { return pb.features }

// Target returns the padded target, if any.
func (pb *PaddedBatch) Target() Optional { return pb.target }

// HasFeatures reports whether features were padded as their own field.
func (pb *PaddedBatch) HasFeatures() bool { return pb.features.Present() }

// HasTarget reports whether a target field is present.
func (pb *PaddedBatch) HasTarget() bool { return pb.target.Present() }

// Size returns the number of items in the batch.
func (pb *PaddedBatch) Size() int { return pb.source.rows }
