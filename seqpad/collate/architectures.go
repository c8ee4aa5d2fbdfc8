package collate

import (
	"fmt"

	"github.com/armon/go-radix"
)

// Architecture describes how a model consumes feature sequences.
type Architecture struct {
	Name string
	// SeparateFeatures is true when the model encodes features on their
	// own instead of reading them appended to the source.
	SeparateFeatures bool
}

// Known architecture names.
const (
	ArchAttentiveLSTM               = "attentive_lstm"
	ArchLSTM                        = "lstm"
	ArchPointerGeneratorLSTM        = "pointer_generator_lstm"
	ArchPointerGeneratorTransformer = "pointer_generator_transformer"
	ArchTransducer                  = "transducer"
	ArchTransformer                 = "transformer"
)

// architectures is built once at init and only read afterwards.
var architectures = newArchitectureTable(
	Architecture{Name: ArchAttentiveLSTM},
	Architecture{Name: ArchLSTM},
	Architecture{Name: ArchPointerGeneratorLSTM, SeparateFeatures: true},
	Architecture{Name: ArchPointerGeneratorTransformer},
	Architecture{Name: ArchTransducer, SeparateFeatures: true},
	Architecture{Name: ArchTransformer},
)

func newArchitectureTable(archs ...Architecture) *radix.Tree {
	t := radix.New()
	for _, a := range archs {
		t.Insert(a.Name, a)
	}
	return t
}

// LookupArchitecture returns the registered architecture with this exact name.
func LookupArchitecture(name string) (Architecture, error) {
	v, ok := architectures.Get(name)
	if !ok {
		return Architecture{}, fmt.Errorf("%w: %q", ErrUnknownArchitecture, name)
	}
	return v.(Architecture), nil
}

// RequiresSeparateFeatures reports whether arch pads features into their
// own field. Unregistered names concatenate features into the source.
func RequiresSeparateFeatures(arch string) bool {
	a, err := LookupArchitecture(arch)
	return err == nil && a.SeparateFeatures
}

// Architectures lists the registered architectures ordered by name.
func Architectures() []Architecture {
	out := make([]Architecture, 0, architectures.Len())
	architectures.Walk(func(_ string, v interface{}) bool {
		out = append(out, v.(Architecture))
		return false
	})
	return out
}
