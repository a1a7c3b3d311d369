// internal/component/component_test.go
package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationAdvance(t *testing.T) {
	t.Run("frame switches once per interval", func(t *testing.T) {
		a := NewAnimation(4, 8)
		for i := 0; i < 7; i++ {
			a.Advance()
			assert.Equal(t, 0, a.Frame)
		}
		a.Advance()
		assert.Equal(t, 1, a.Frame)
	})

	t.Run("frames cycle back to zero", func(t *testing.T) {
		a := NewAnimation(4, 8)
		for i := 0; i < 4*8; i++ {
			a.Advance()
		}
		assert.Equal(t, 0, a.Frame)
	})

	t.Run("single frame never advances", func(t *testing.T) {
		a := NewAnimation(1, 8)
		for i := 0; i < 100; i++ {
			a.Advance()
		}
		assert.Equal(t, 0, a.Frame)
	})
}

func TestTimedFlag(t *testing.T) {
	t.Run("expires exactly when the counter reaches zero", func(t *testing.T) {
		var f TimedFlag
		f.Set(3)
		assert.False(t, f.Tick())
		assert.False(t, f.Tick())
		assert.True(t, f.Tick())
		assert.False(t, f.Active)
		assert.False(t, f.Tick())
	})

	t.Run("set refreshes instead of stacking", func(t *testing.T) {
		var f TimedFlag
		f.Set(10)
		f.Tick()
		f.Set(10)
		assert.Equal(t, 10, f.Ticks)
	})
}
