package dice

import "fmt"

// RollExploding rolls a die with the given number of sides, rolling again and
// adding for as long as the maximum face comes up. There is no cap on the
// number of rerolls; capping would skew the distribution.
func RollExploding(r Roller, sides int) (int, error) {
	if r == nil {
		return 0, ErrNilRoller
	}
	// A one-sided die always rolls its max face and would never stop.
	if sides <= 1 {
		return 0, fmt.Errorf("%w: cannot explode a d%d", ErrInvalidDie, sides)
	}

	total := 0
	for {
		roll := r.Roll(sides)
		total += roll
		if roll != sides {
			return total, nil
		}
	}
}
