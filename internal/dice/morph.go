package dice

import "fmt"

// MorphStep is a single roll within a morph sequence
type MorphStep struct {
	Die  Die
	Face int
}

// MorphTrace records every roll of a morph sequence
type MorphTrace struct {
	Start Die
	Steps []MorphStep
	Total int
}

// NaturalTwenty reports whether the sequence ended on a 20 rolled on the d20
func (t *MorphTrace) NaturalTwenty() bool {
	if len(t.Steps) == 0 {
		return false
	}
	last := t.Steps[len(t.Steps)-1]
	return last.Die == D20 && last.Face == 20
}

// RollMorph rolls a morph die starting at start and returns the total
func RollMorph(r Roller, start Die) (int, error) {
	trace, err := RollMorphTrace(r, start)
	if err != nil {
		return 0, err
	}
	return trace.Total, nil
}

// RollMorphTrace rolls a morph die starting at start. A max-face roll promotes
// the roll to the next die in Chain; any other face ends the sequence. A 20 on
// the d20 also ends it, so a sequence has at most len(Chain)-start.Index() rolls.
func RollMorphTrace(r Roller, start Die) (*MorphTrace, error) {
	if r == nil {
		return nil, ErrNilRoller
	}
	index := start.Index()
	if index < 0 {
		return nil, fmt.Errorf("%w: morph die must start on one of %v, got %s", ErrInvalidDie, Chain, start)
	}

	trace := &MorphTrace{
		Start: start,
		Steps: make([]MorphStep, 0, len(Chain)-index),
	}

	for index < len(Chain) {
		die := Chain[index]
		roll := r.Roll(die.Sides())
		trace.Total += roll
		trace.Steps = append(trace.Steps, MorphStep{Die: die, Face: roll})

		if die == D20 && roll == 20 {
			break
		}
		if roll != die.Sides() {
			break
		}
		index++
	}

	return trace, nil
}
