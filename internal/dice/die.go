package dice

import "fmt"

// Die is one of the fixed die sizes. Its value is its side count.
type Die int

const (
	D4  Die = 4
	D6  Die = 6
	D8  Die = 8
	D10 Die = 10
	D12 Die = 12
	D20 Die = 20
)

// Chain is the morph chain, smallest die first
var Chain = []Die{D4, D6, D8, D10, D12, D20}

// ParseDie converts a raw side count into a Die
func ParseDie(sides int) (Die, error) {
	d := Die(sides)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: d%d is not one of %v", ErrInvalidDie, sides, Chain)
	}
	return d, nil
}

// Sides returns the number of faces on the die
func (d Die) Sides() int {
	return int(d)
}

// Valid reports whether d is one of the six chain dice
func (d Die) Valid() bool {
	return d.Index() >= 0
}

// Index returns the position of d in Chain, or -1
func (d Die) Index() int {
	for i, c := range Chain {
		if c == d {
			return i
		}
	}
	return -1
}

// Next returns the next larger die in the chain.
// D20 is terminal and invalid dice have no successor.
func (d Die) Next() (Die, bool) {
	i := d.Index()
	if i < 0 || i+1 >= len(Chain) {
		return 0, false
	}
	return Chain[i+1], true
}

func (d Die) String() string {
	return fmt.Sprintf("d%d", int(d))
}
