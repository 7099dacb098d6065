package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("hero")
	assert.True(t, strings.HasPrefix(id, "hero_"))
	assert.Len(t, id, len("hero_")+16)

	assert.Len(t, GenerateID(""), 16)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID("h")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
