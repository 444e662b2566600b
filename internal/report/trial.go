package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/dcsim/internal/services/simulation"
)

// RenderTrial writes one sampled trial as a sum, for example
// "Sample: d4(6) + morph d8->d10(8+3=11) + 1 = 18 (success)"
func RenderTrial(w io.Writer, trial *simulation.SampleTrialOutput) error {
	if trial == nil {
		return errors.New("trial cannot be nil")
	}

	var parts []string
	for _, roll := range trial.PoolRolls {
		parts = append(parts, fmt.Sprintf("%s(%d)", roll.Die, roll.Total))
	}
	if trial.Morph != nil {
		dice := make([]string, 0, len(trial.Morph.Steps))
		faces := make([]string, 0, len(trial.Morph.Steps))
		for _, step := range trial.Morph.Steps {
			dice = append(dice, step.Die.String())
			faces = append(faces, fmt.Sprint(step.Face))
		}
		morph := fmt.Sprintf("morph %s(%s=%d)", strings.Join(dice, "->"), strings.Join(faces, "+"), trial.Morph.Total)
		if trial.Morph.NaturalTwenty() {
			morph += " nat20"
		}
		parts = append(parts, morph)
	}
	sum := strings.Join(parts, " + ")
	switch {
	case len(parts) == 0:
		sum = fmt.Sprint(trial.Modifier)
	case trial.Modifier < 0:
		sum += fmt.Sprintf(" - %d", -trial.Modifier)
	default:
		sum += fmt.Sprintf(" + %d", trial.Modifier)
	}

	outcome := "failure"
	if trial.Success {
		outcome = "success"
	}
	_, err := fmt.Fprintf(w, "Sample: %s = %d (%s)\n", sum, trial.Total, outcome)
	return err
}
