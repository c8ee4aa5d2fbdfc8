// Package batching turns ragged integer sequences into rectangular tensors.
//
// A PaddedTensor holds N rows right-padded to the length L of the longest
// row, together with a boolean mask of the same [N, L] shape. The mask is
// derived from each row's original length, never from comparing values with
// the pad index, so a real token that happens to equal the pad index is
// still marked as real.
//
// A PaddedBatch groups the padded source with optional padded features and
// target. Absent fields are represented by an empty Optional, never by a
// zero-filled tensor.
package batching
