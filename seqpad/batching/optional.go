package batching

// Optional is a padded field that may be absent.
type Optional struct {
	t *PaddedTensor
}

// Some wraps a present tensor. Some(nil) is equivalent to None().
func Some(t *PaddedTensor) Optional { return Optional{t: t} }

// None returns an absent field.
func None() Optional { return Optional{} }

// Get returns the tensor and whether it is present.
func (o Optional) Get() (*PaddedTensor, bool) { return o.t, o.t != nil }

// Present reports whether the field holds a tensor.
func (o Optional) Present() bool { return o.t != nil }
