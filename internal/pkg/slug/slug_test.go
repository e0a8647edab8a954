package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Hello", "hello"},
		{"keeps digits", "abc123", "abc123"},
		{"collapses separators", "hello   world", "hello-world"},
		{"collapses mixed runs", "a--_-b", "a-b"},
		{"strips edges", "--hello--", "hello"},
		{"uuid form survives", "9b2c3d4e-1f2a-4b5c-8d6e-7f8a9b0c1d2e", "9b2c3d4e-1f2a-4b5c-8d6e-7f8a9b0c1d2e"},
		{"drops non-ascii", "café au lait", "caf-au-lait"},
		{"empty input", "", ""},
		{"only separators", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	first := New()
	second := New()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	// A generated slug must already be in normal form.
	assert.Equal(t, first, Make(first))
}
