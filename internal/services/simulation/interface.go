package simulation

import "context"

// Service defines the interface for dice simulations
type Service interface {
	// Simulate runs many independent trials and reports the success rate
	// against a DC along with the distribution of totals
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)

	// SampleTrial rolls a single trial and reports how its total was built
	SampleTrial(ctx context.Context, input *SampleTrialInput) (*SampleTrialOutput, error)
}
