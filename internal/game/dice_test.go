package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWin(t *testing.T) {
	assert.True(t, IsWin(3, 4))
	assert.True(t, IsWin(1, 6))
	assert.True(t, IsWin(6, 1))
	assert.False(t, IsWin(2, 2))
	assert.False(t, IsWin(6, 6))
	assert.False(t, IsWin(1, 1))
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 0.0, SuccessRate(0, 0))
	assert.Equal(t, 75.0, SuccessRate(3, 4))
	assert.Equal(t, 100.0, SuccessRate(5, 5))
	assert.Equal(t, 0.0, SuccessRate(0, 7))
	assert.InDelta(t, 16.666, SuccessRate(1, 6), 0.001)
}

func TestRandRollerStaysInRange(t *testing.T) {
	roller := NewRandRoller()
	for i := 0; i < 1000; i++ {
		d1, d2 := roller.Roll()
		assert.GreaterOrEqual(t, d1, 1)
		assert.LessOrEqual(t, d1, 6)
		assert.GreaterOrEqual(t, d2, 1)
		assert.LessOrEqual(t, d2, 6)
	}
}

func TestScriptedRollerReplaysSequence(t *testing.T) {
	roller := &ScriptedRoller{Rolls: [][2]int{{3, 4}, {2, 2}}}

	d1, d2 := roller.Roll()
	assert.Equal(t, 3, d1)
	assert.Equal(t, 4, d2)

	d1, d2 = roller.Roll()
	assert.Equal(t, 2, d1)
	assert.Equal(t, 2, d2)
}
