// internal/utils/prng_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPRNGServiceSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)

	for i := 0; i < 200; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.Perm(6), b.Perm(6))
	}
}

func TestPRNGServiceFloatRange(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 500; i++ {
		v := s.FloatRange(-1, 1)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestPRNGServicePermCoversRange(t *testing.T) {
	s := NewPRNGService(3)
	seen := make(map[int]bool)
	for _, v := range s.Perm(6) {
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}
