package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dcsim/internal/common/clock"
	"github.com/KirkDiggler/dcsim/internal/common/uuid"
	"github.com/KirkDiggler/dcsim/internal/dice"
	"github.com/KirkDiggler/dcsim/internal/models"
)

// DefaultBatchSize is the number of trials one roller handles when the
// config leaves BatchSize unset
const DefaultBatchSize = 10000

// service implements the Service interface
type service struct {
	workers       int
	batchSize     int
	seed          int64
	rollerFactory RollerFactory
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new simulation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Workers < 0 {
		return nil, ErrInvalidWorkers
	}
	if cfg.BatchSize < 0 {
		return nil, ErrInvalidBatchSize
	}

	svc := &service{
		workers:       cfg.Workers,
		batchSize:     cfg.BatchSize,
		seed:          cfg.Seed,
		rollerFactory: cfg.RollerFactory,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
	}

	// Fill in defaults for optional dependencies
	if svc.workers == 0 {
		svc.workers = runtime.GOMAXPROCS(0)
	}
	if svc.batchSize == 0 {
		svc.batchSize = DefaultBatchSize
	}
	if svc.rollerFactory == nil {
		svc.rollerFactory = func(seed int64) dice.Roller {
			return dice.New(&dice.Config{Seed: seed})
		}
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.New()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc, nil
}

// batchResult is the partial aggregate of one batch of trials
type batchResult struct {
	successes    int
	distribution *models.Distribution
}

// Simulate runs input.Trials independent trials. Trials are split into
// batches, each rolled by its own roller seeded from the run seed and the
// batch index, so a fixed seed gives the same output for any worker count.
// A run is never cancelled once validation passes; ctx only carries logging
// values.
func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidArgument)
	}
	if input.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidArgument, input.Trials)
	}
	spec := trialSpec{
		pool:       input.Pool,
		modifier:   input.Modifier,
		useMorph:   input.UseMorph,
		morphStart: input.MorphStart,
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	seed, err := s.runSeed(s.seed)
	if err != nil {
		return nil, err
	}

	runID := s.uuidGenerator.NewUUID()
	startedAt := s.clock.Now()
	logger := s.logger.With("run_id", runID)

	batches := planBatches(input.Trials, s.batchSize)
	logger.DebugContext(ctx, "simulation started",
		"pool", input.Pool,
		"modifier", input.Modifier,
		"dc", input.DC,
		"trials", input.Trials,
		"use_morph", input.UseMorph,
		"batches", len(batches),
		"workers", s.workers,
		"seed", seed,
	)

	partials := make([]*batchResult, len(batches))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, trials := range batches {
		g.Go(func() error {
			roller := s.rollerFactory(batchSeed(seed, i))
			partial, err := runBatch(roller, spec, input.DC, trials)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "simulation failed", "err", err)
		return nil, err
	}

	successes := 0
	distribution := models.NewDistribution()
	for _, partial := range partials {
		successes += partial.successes
		distribution.Merge(partial.distribution)
	}

	output := &SimulateOutput{
		RunID:        runID,
		Seed:         seed,
		SuccessRate:  float64(successes) / float64(input.Trials),
		Successes:    successes,
		Trials:       input.Trials,
		Distribution: distribution,
		StartedAt:    startedAt,
		Elapsed:      s.clock.Since(startedAt),
	}

	logger.InfoContext(ctx, "simulation complete",
		"trials", output.Trials,
		"successes", output.Successes,
		"success_rate", output.SuccessRate,
		"distinct_totals", distribution.Len(),
		"elapsed", output.Elapsed,
	)
	logger.DebugContext(ctx, "simulation distribution", "distribution", distribution)

	return output, nil
}

// SampleTrial rolls one trial and returns its breakdown
func (s *service) SampleTrial(ctx context.Context, input *SampleTrialInput) (*SampleTrialOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidArgument)
	}
	spec := trialSpec{
		pool:       input.Pool,
		modifier:   input.Modifier,
		useMorph:   input.UseMorph,
		morphStart: input.MorphStart,
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	seed, err := s.runSeed(input.Seed)
	if err != nil {
		return nil, err
	}

	output, err := spec.rollBreakdown(s.rollerFactory(seed))
	if err != nil {
		return nil, err
	}
	output.Success = output.Total >= input.DC

	s.logger.DebugContext(ctx, "sampled trial",
		"total", output.Total,
		"dc", input.DC,
		"success", output.Success,
	)

	return output, nil
}

// runSeed returns seed, or a fresh crypto seed when it is zero
func (s *service) runSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	fresh, err := dice.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("failed to seed simulation: %w", err)
	}
	return fresh, nil
}

// runBatch rolls trials trials with a single roller
func runBatch(roller dice.Roller, spec trialSpec, dc, trials int) (*batchResult, error) {
	result := &batchResult{
		distribution: models.NewDistribution(),
	}
	for range trials {
		total, err := spec.roll(roller)
		if err != nil {
			return nil, err
		}
		result.distribution.Add(total)
		if total >= dc {
			result.successes++
		}
	}
	return result, nil
}

// planBatches splits trials into chunks of at most size
func planBatches(trials, size int) []int {
	batches := make([]int, 0, (trials+size-1)/size)
	for remaining := trials; remaining > 0; remaining -= size {
		batches = append(batches, min(remaining, size))
	}
	return batches
}

// batchSeed derives a well-spread seed for batch i using the SplitMix64
// finalizer, so neighbouring batches do not get neighbouring seeds.
func batchSeed(seed int64, i int) int64 {
	z := uint64(seed) + uint64(i+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		// zero asks the roller for a fresh crypto seed
		z = 1
	}
	return int64(z)
}
