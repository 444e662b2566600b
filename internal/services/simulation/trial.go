package simulation

import (
	"fmt"

	"github.com/KirkDiggler/dcsim/internal/dice"
)

// trialSpec describes how one trial total is built
type trialSpec struct {
	pool       []dice.Die
	modifier   int
	useMorph   bool
	morphStart dice.Die
}

// validate checks every die before any randomness is consumed
func (t trialSpec) validate() error {
	for i, d := range t.pool {
		if !d.Valid() {
			return fmt.Errorf("%w: pool entry %d is %s, want one of %v", dice.ErrInvalidDie, i, d, dice.Chain)
		}
	}
	// The start die only matters when the morph die is rolled
	if t.useMorph && !t.morphStart.Valid() {
		return fmt.Errorf("%w: morph start %s, want one of %v", dice.ErrInvalidDie, t.morphStart, dice.Chain)
	}
	return nil
}

// roll returns one trial total: every pool die exploded, plus the morph die
// when enabled, plus the modifier once
func (t trialSpec) roll(r dice.Roller) (int, error) {
	total := 0
	for _, d := range t.pool {
		v, err := dice.RollExploding(r, d.Sides())
		if err != nil {
			return 0, err
		}
		total += v
	}
	if t.useMorph {
		v, err := dice.RollMorph(r, t.morphStart)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total + t.modifier, nil
}

// rollBreakdown rolls a trial exactly like roll, keeping every component
func (t trialSpec) rollBreakdown(r dice.Roller) (*SampleTrialOutput, error) {
	output := &SampleTrialOutput{
		PoolRolls: make([]PoolRoll, 0, len(t.pool)),
		Modifier:  t.modifier,
	}
	for _, d := range t.pool {
		v, err := dice.RollExploding(r, d.Sides())
		if err != nil {
			return nil, err
		}
		output.PoolRolls = append(output.PoolRolls, PoolRoll{Die: d, Total: v})
		output.Total += v
	}
	if t.useMorph {
		trace, err := dice.RollMorphTrace(r, t.morphStart)
		if err != nil {
			return nil, err
		}
		output.Morph = trace
		output.Total += trace.Total
	}
	output.Total += t.modifier
	return output, nil
}
