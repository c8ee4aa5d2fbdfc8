// Package collate pads batches of dataset items into PaddedBatch values.
//
// Whether features get their own padded field or are appended to the
// source depends on the target architecture; see RequiresSeparateFeatures.
package collate

import (
	internal "github.com/ZanzyTHEbar/seqpad/seqpad"
	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"
	"github.com/ZanzyTHEbar/seqpad/seqpad/config"
	"github.com/ZanzyTHEbar/seqpad/seqpad/datasets"

	"github.com/rs/zerolog"
)

// Config is the fixed configuration of a Collator.
type Config struct {
	PadIdx      int
	HasFeatures bool
	HasTarget   bool
	Arch        string
}

// Collator pads batches according to the longest sequence in each batch.
// It holds no per-call state and may be shared between goroutines.
type Collator struct {
	padIdx           int
	hasFeatures      bool
	hasTarget        bool
	separateFeatures bool
	arch             string
	logger           zerolog.Logger
	metrics          *Metrics
}

// Option configures a Collator.
type Option func(*Collator)

// WithLogger sets the logger used for per-batch debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Collator) { c.logger = logger }
}

// WithMetrics records every Collate call into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Collator) { c.metrics = m }
}

// New creates a Collator. Features are kept separate only when the dataset
// has features and the architecture requires it.
func New(cfg Config, opts ...Option) *Collator {
	c := &Collator{
		padIdx:           cfg.PadIdx,
		hasFeatures:      cfg.HasFeatures,
		hasTarget:        cfg.HasTarget,
		separateFeatures: cfg.HasFeatures && RequiresSeparateFeatures(cfg.Arch),
		arch:             cfg.Arch,
		logger:           internal.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a Collator from loaded application configuration.
// Options passed here override the config-derived logger.
func NewFromConfig(cfg *config.Config, opts ...Option) *Collator {
	base := []Option{WithLogger(internal.GetLogger(cfg.Log.Level))}
	return New(Config{
		PadIdx:      cfg.Data.PadIdx,
		HasFeatures: cfg.Data.HasFeatures,
		HasTarget:   cfg.Data.HasTarget,
		Arch:        cfg.Model.Arch,
	}, append(base, opts...)...)
}

// PadIdx returns the pad value used for every field.
func (c *Collator) PadIdx() int { return c.padIdx }

// SeparateFeatures reports whether features are padded as their own field.
func (c *Collator) SeparateFeatures() bool { return c.separateFeatures }

// ConcatenateSourceAndFeatures returns, per item, the source followed by
// the features when the item has any. Inputs are never modified.
func ConcatenateSourceAndFeatures(items []datasets.Item) [][]int {
	out := make([][]int, len(items))
	for i, item := range items {
		if !item.HasFeatures() {
			out[i] = item.Source
			continue
		}
		seq := make([]int, 0, len(item.Source)+len(item.Features))
		seq = append(seq, item.Source...)
		seq = append(seq, item.Features...)
		out[i] = seq
	}
	return out
}

// PadSource pads the source sequences alone.
func (c *Collator) PadSource(items []datasets.Item) (*batching.PaddedTensor, error) {
	seqs := make([][]int, len(items))
	for i, item := range items {
		seqs[i] = item.Source
	}
	return batching.NewPaddedTensor(seqs, c.padIdx)
}

// PadSourceFeatures pads source sequences with features appended.
func (c *Collator) PadSourceFeatures(items []datasets.Item) (*batching.PaddedTensor, error) {
	return batching.NewPaddedTensor(ConcatenateSourceAndFeatures(items), c.padIdx)
}

// PadFeatures pads the feature sequences. Every item must have features.
func (c *Collator) PadFeatures(items []datasets.Item) (*batching.PaddedTensor, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := requirePresence("features", ErrInconsistentFeaturePresence, len(items), func(i int) bool {
		return items[i].HasFeatures()
	}); err != nil {
		return nil, err
	}
	seqs := make([][]int, len(items))
	for i, item := range items {
		seqs[i] = item.Features
	}
	return batching.NewPaddedTensor(seqs, c.padIdx)
}

// PadTarget pads the target sequences. Every item must have a target.
func (c *Collator) PadTarget(items []datasets.Item) (*batching.PaddedTensor, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := requirePresence("target", ErrInconsistentTargetPresence, len(items), func(i int) bool {
		return items[i].HasTarget()
	}); err != nil {
		return nil, err
	}
	seqs := make([][]int, len(items))
	for i, item := range items {
		seqs[i] = item.Target
	}
	return batching.NewPaddedTensor(seqs, c.padIdx)
}

// Collate pads one batch. It either returns a complete batch or an error;
// nothing partial is returned.
func (c *Collator) Collate(items []datasets.Item) (*batching.PaddedBatch, error) {
	pb, err := c.collate(items)
	if c.metrics != nil {
		c.metrics.record(pb, err)
	}
	if err != nil {
		c.logger.Debug().Err(err).Int("batch_size", len(items)).Str("arch", c.arch).Msg("collate failed")
		return nil, err
	}
	ev := c.logger.Debug().
		Int("batch_size", pb.Size()).
		Int("source_len", pb.Source().Cols()).
		Bool("separate_features", c.separateFeatures)
	if f, ok := pb.Features().Get(); ok {
		ev = ev.Int("features_len", f.Cols())
	}
	if t, ok := pb.Target().Get(); ok {
		ev = ev.Int("target_len", t.Cols())
	}
	ev.Msg("collated batch")
	return pb, nil
}

func (c *Collator) collate(items []datasets.Item) (*batching.PaddedBatch, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}

	target := batching.None()
	if c.hasTarget {
		t, err := c.PadTarget(items)
		if err != nil {
			return nil, err
		}
		target = batching.Some(t)
	}

	if c.separateFeatures {
		features, err := c.PadFeatures(items)
		if err != nil {
			return nil, err
		}
		source, err := c.PadSource(items)
		if err != nil {
			return nil, err
		}
		return batching.NewPaddedBatch(source, batching.Some(features), target)
	}

	source, err := c.PadSourceFeatures(items)
	if err != nil {
		return nil, err
	}
	return batching.NewPaddedBatch(source, batching.None(), target)
}
