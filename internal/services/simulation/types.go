package simulation

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/dcsim/internal/common/clock"
	"github.com/KirkDiggler/dcsim/internal/common/uuid"
	"github.com/KirkDiggler/dcsim/internal/dice"
	"github.com/KirkDiggler/dcsim/internal/models"
)

// RollerFactory builds an independent roller for one batch of trials
type RollerFactory func(seed int64) dice.Roller

// Config holds configuration for the simulation service
type Config struct {
	// Workers is the number of batches rolled concurrently.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// BatchSize is the number of trials rolled by one roller.
	// Zero means DefaultBatchSize.
	BatchSize int

	// Seed fixes the base seed of every run. Zero draws a fresh seed per run.
	Seed int64

	// Service dependencies
	RollerFactory RollerFactory
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// SimulateInput contains parameters for a simulation run
type SimulateInput struct {
	// Pool is rolled once per trial, every die exploding
	Pool []dice.Die

	// Modifier is added to every trial total exactly once
	Modifier int

	// DC is the threshold a trial total must meet or beat
	DC int

	// Trials is the number of independent trials to roll
	Trials int

	// UseMorph adds one morph die starting at MorphStart to every trial
	UseMorph   bool
	MorphStart dice.Die
}

// SimulateOutput contains the result of a simulation run
type SimulateOutput struct {
	// RunID identifies the run in logs
	RunID string

	// Seed is the base seed the run's batch rollers were derived from
	Seed int64

	// SuccessRate is Successes / Trials
	SuccessRate float64
	Successes   int
	Trials      int

	// Distribution maps each observed total to its number of trials
	Distribution *models.Distribution

	StartedAt time.Time
	Elapsed   time.Duration
}

// SampleTrialInput contains parameters for rolling a single trial
type SampleTrialInput struct {
	Pool       []dice.Die
	Modifier   int
	DC         int
	UseMorph   bool
	MorphStart dice.Die

	// Seed fixes the roller for this sample. Zero draws a fresh seed.
	Seed int64
}

// PoolRoll is the exploding roll of one pool die
type PoolRoll struct {
	Die   dice.Die
	Total int
}

// SampleTrialOutput breaks down one trial total
type SampleTrialOutput struct {
	PoolRolls []PoolRoll

	// Morph is nil when the trial did not use a morph die
	Morph *dice.MorphTrace

	Modifier int
	Total    int
	Success  bool
}
