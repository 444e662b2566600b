package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/dcsim/internal/common/clock"
	"github.com/KirkDiggler/dcsim/internal/common/uuid"
	"github.com/KirkDiggler/dcsim/internal/config"
	"github.com/KirkDiggler/dcsim/internal/dice"
	"github.com/KirkDiggler/dcsim/internal/report"
	"github.com/KirkDiggler/dcsim/internal/services/simulation"
)

// Example check: 1d4 plus a morph die starting at d8 against DC 7
var example = simulation.SimulateInput{
	Pool:       []dice.Die{dice.D4},
	Modifier:   0,
	DC:         7,
	Trials:     10000,
	UseMorph:   true,
	MorphStart: dice.D8,
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	runtimeCfg, err := config.LoadRuntime()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, err := runtimeCfg.Level()
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout carries only the report
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	simSvc, err := simulation.New(&simulation.Config{
		Workers:       runtimeCfg.Workers,
		Seed:          runtimeCfg.Seed,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create simulation service: %w", err)
	}

	if runtimeCfg.Sample {
		trial, err := simSvc.SampleTrial(ctx, &simulation.SampleTrialInput{
			Pool:       example.Pool,
			Modifier:   example.Modifier,
			DC:         example.DC,
			UseMorph:   example.UseMorph,
			MorphStart: example.MorphStart,
			Seed:       runtimeCfg.Seed,
		})
		if err != nil {
			return fmt.Errorf("sampling trial: %w", err)
		}
		if err := report.RenderTrial(os.Stdout, trial); err != nil {
			return err
		}
	}

	input := example
	output, err := simSvc.Simulate(ctx, &input)
	if err != nil {
		return fmt.Errorf("simulating: %w", err)
	}

	return report.Render(os.Stdout, &report.RenderInput{
		SuccessRate:  output.SuccessRate,
		Distribution: output.Distribution,
		Histogram:    runtimeCfg.Histogram,
	})
}
