package collate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiresSeparateFeatures(t *testing.T) {
	tests := []struct {
		arch string
		want bool
	}{
		{ArchPointerGeneratorLSTM, true},
		{ArchTransducer, true},
		{ArchAttentiveLSTM, false},
		{ArchLSTM, false},
		{ArchPointerGeneratorTransformer, false},
		{ArchTransformer, false},
		{"not_a_model", false},
		{"", false},
		{"Transducer", false},
	}
	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresSeparateFeatures(tt.arch))
		})
	}
}

func TestLookupArchitecture(t *testing.T) {
	a, err := LookupArchitecture(ArchTransducer)
	require.NoError(t, err)
	assert.Equal(t, Architecture{Name: ArchTransducer, SeparateFeatures: true}, a)

	_, err = LookupArchitecture("transduce")
	assert.ErrorIs(t, err, ErrUnknownArchitecture)
}

func TestArchitecturesSorted(t *testing.T) {
	archs := Architectures()
	require.Len(t, archs, 6)

	names := make([]string, len(archs))
	for i, a := range archs {
		names[i] = a.Name
	}
	assert.IsIncreasing(t, names)

	var separate []string
	for _, a := range archs {
		if a.SeparateFeatures {
			separate = append(separate, a.Name)
		}
	}
	assert.Equal(t, []string{ArchPointerGeneratorLSTM, ArchTransducer}, separate)
}
