package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkTypeValid(t *testing.T) {
	for _, mt := range MarkTypes() {
		assert.True(t, mt.Valid(), "mark type %q should be valid", mt)
	}

	assert.False(t, MarkType("").Valid())
	assert.False(t, MarkType("exam").Valid())
	assert.False(t, MarkType("HASAP").Valid())
}

func TestMarkValueValid(t *testing.T) {
	for _, mv := range MarkValues() {
		assert.True(t, mv.Valid(), "mark value %q should be valid", mv)
	}

	assert.False(t, MarkValue("").Valid())
	assert.False(t, MarkValue("1").Valid())
	assert.False(t, MarkValue("6").Valid())
	assert.False(t, MarkValue("hasap dal").Valid())
}
