package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumberGenerator_Prefix(t *testing.T) {
	gen := NewOrderNumberGenerator()

	number := gen.Next()
	require.True(t, strings.HasPrefix(number, "ORD"), "order number should start with ORD, got %s", number)
}

func TestOrderNumberGenerator_UniqueWithinSameMillisecond(t *testing.T) {
	gen := NewOrderNumberGenerator()

	seen := make(map[string]bool)
	// Tight loop so many calls land in the same millisecond.
	for i := 0; i < 1000; i++ {
		number := gen.Next()
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}
