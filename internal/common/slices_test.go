package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []int{1}, Dedupe([]int{1}))
	assert.Empty(t, Dedupe([]int(nil)))
}

func TestIsSingle(t *testing.T) {
	assert.True(t, IsSingle([]string{"x"}))
	assert.False(t, IsSingle([]string{}))
	assert.False(t, IsSingle([]int{1, 2}))
	assert.True(t, IsEmpty([]int(nil)))
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"type", true},
		{"tType", true},
		{"_x1", true},
		{"1x", false},
		{"a-b", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsIdent(tt.input))
		})
	}
}
