package dice

import "math/rand"

// Roller is the random source the generation pipeline is built against.
// Tests substitute fixed-outcome implementations to pin down generator
// behavior; the game threads a single seeded *Dice through a whole run.
type Roller interface {
	// RollDice returns the sum of n rolls of a die with the given number
	// of sides, so RollDice(1, 100) is a value in [1, 100].
	RollDice(n, die int) int
	// Range returns a value in the half-open interval [min, max).
	Range(min, max int) int
}

// Dice is the standard Roller backed by math/rand.
type Dice struct {
	rng *rand.Rand
}

// New creates a dice roller with the given seed. The same seed always
// produces the same roll sequence.
func New(seed int64) *Dice {
	return &Dice{rng: rand.New(rand.NewSource(seed))}
}

// Reseed resets the roller to a fresh stream for the given seed.
func (d *Dice) Reseed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
}

// RollDice returns the sum of n rolls of a die-sided die.
func (d *Dice) RollDice(n, die int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += d.rng.Intn(die) + 1
	}
	return total
}

// Range returns a value in [min, max). A degenerate interval returns min.
func (d *Dice) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + d.rng.Intn(max-min)
}
