package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollDiceBounds(t *testing.T) {
	d := New(42)

	for i := 0; i < 1000; i++ {
		roll := d.RollDice(1, 100)
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 100)
	}

	for i := 0; i < 1000; i++ {
		roll := d.RollDice(3, 6)
		assert.GreaterOrEqual(t, roll, 3)
		assert.LessOrEqual(t, roll, 18)
	}
}

func TestRangeBounds(t *testing.T) {
	d := New(42)

	for i := 0; i < 1000; i++ {
		v := d.Range(5, 10)
		assert.GreaterOrEqual(t, v, 5)
		assert.Less(t, v, 10)
	}

	// Degenerate intervals collapse to min
	assert.Equal(t, 7, d.Range(7, 7))
	assert.Equal(t, 7, d.Range(7, 3))
}

func TestSeedDeterminism(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.RollDice(1, 20), b.RollDice(1, 20))
		assert.Equal(t, a.Range(0, 1000), b.Range(0, 1000))
	}
}

func TestReseedRestartsStream(t *testing.T) {
	d := New(99)
	first := d.RollDice(4, 8)

	d.Reseed(99)
	assert.Equal(t, first, d.RollDice(4, 8))
}
