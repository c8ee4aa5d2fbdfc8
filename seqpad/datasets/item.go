// Package datasets holds the example type produced by upstream dataset
// readers and consumed by the collator.
package datasets

// Item is one already-encoded example. A nil or empty Features or Target
// slice means the field is absent; there is no empty-but-present sequence.
type Item struct {
	Source   []int
	Features []int
	Target   []int
}

// NewItem builds an Item. Pass nil for absent features or target.
func NewItem(source, features, target []int) Item {
	return Item{Source: source, Features: features, Target: target}
}

// HasFeatures reports whether this item carries a feature sequence.
func (i Item) HasFeatures() bool { return len(i.Features) > 0 }

// HasTarget reports whether this item carries a target sequence.
func (i Item) HasTarget() bool { return len(i.Target) > 0 }
