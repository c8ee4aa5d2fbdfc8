package collate

import (
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"

	roaring "github.com/RoaringBitmap/roaring"
)

var (
	// ErrEmptyBatch is returned when Collate receives no items.
	ErrEmptyBatch = batching.ErrEmptyBatch
	// ErrInconsistentFeaturePresence is returned when features are padded
	// separately but some items carry none.
	ErrInconsistentFeaturePresence = errors.New("inconsistent feature presence")
	// ErrInconsistentTargetPresence is returned when targets are enabled but
	// some items carry none.
	ErrInconsistentTargetPresence = errors.New("inconsistent target presence")
	// ErrUnknownArchitecture is returned by LookupArchitecture.
	ErrUnknownArchitecture = errors.New("unknown architecture")
)

// PresenceError lists the batch rows that lack a required field.
type PresenceError struct {
	Field string
	Rows  *roaring.Bitmap
	kind  error
}

func (e *PresenceError) Error() string {
	kind := e.kind
	if kind == nil {
		kind = errors.New("missing field")
	}
	if e.Rows == nil {
		return fmt.Sprintf("%v: %s missing", kind, e.Field)
	}
	return fmt.Sprintf("%v: %s missing on %d row(s) %v", kind, e.Field, e.Rows.GetCardinality(), e.Rows.ToArray())
}

func (e *PresenceError) Unwrap() error { return e.kind }

// requirePresence returns a *PresenceError naming every row for which has
// is false, or nil when all rows pass.
func requirePresence(field string, kind error, n int, has func(i int) bool) error {
	var missing *roaring.Bitmap
	for i := 0; i < n; i++ {
		if has(i) {
			continue
		}
		if missing == nil {
			missing = roaring.New()
		}
		missing.Add(uint32(i))
	}
	if missing == nil {
		return nil
	}
	return &PresenceError{Field: field, Rows: missing, kind: kind}
}
