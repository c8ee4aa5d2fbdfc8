package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemPresence(t *testing.T) {
	tests := []struct {
		name         string
		item         Item
		wantFeatures bool
		wantTarget   bool
	}{
		{"source only", NewItem([]int{1, 2}, nil, nil), false, false},
		{"with features", NewItem([]int{1}, []int{4}, nil), true, false},
		{"empty features are absent", NewItem([]int{1}, []int{}, nil), false, false},
		{"empty target is absent", NewItem([]int{1}, nil, []int{}), false, false},
		{"with target", NewItem([]int{1}, nil, []int{9}), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFeatures, tt.item.HasFeatures())
			assert.Equal(t, tt.wantTarget, tt.item.HasTarget())
		})
	}
}
