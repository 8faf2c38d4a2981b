// Package dice implements a polyhedral die roller.
package dice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Sides lists the supported dice, in menu order.
var Sides = []int{4, 6, 12, 20}

// DefaultSides is the die selected on start.
const DefaultSides = 6

// ErrUnsupportedDie is returned for dice not in Sides.
var ErrUnsupportedDie = errors.New("unsupported die")

// Die holds the selected die and the last result.
type Die struct {
	sides  int
	result int
	rng    *rand.Rand
}

// New returns a d6 showing 1. src supplies randomness; nil uses a random seed.
func New(src rand.Source) *Die {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Die{sides: DefaultSides, result: 1, rng: rand.New(src)}
}

// Sides returns the selected die size.
func (d *Die) Sides() int { return d.sides }

// Result returns the last rolled value.
func (d *Die) Result() int { return d.result }

// Select switches to a die with the given number of sides and resets the result to 1.
func (d *Die) Select(sides int) error {
	if !slices.Contains(Sides, sides) {
		return fmt.Errorf("%w: d%d", ErrUnsupportedDie, sides)
	}
	d.sides = sides
	d.result = 1
	return nil
}

// Roll draws a uniform value in [1, Sides()].
func (d *Die) Roll() int {
	d.result = 1 + d.rng.IntN(d.sides)
	return d.result
}

// Label renders a die name like "d20".
func Label(sides int) string {
	return fmt.Sprintf("d%d", sides)
}
