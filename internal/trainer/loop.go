package trainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quadnet/internal/dataset"
	"quadnet/internal/label"
	"quadnet/internal/metrics"
	"quadnet/internal/model"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Steps    int
	LogEvery int
	Seed     int64
	// Metrics is optional.
	Metrics *metrics.Collector
}

// Report summarises a finished training run.
type Report struct {
	RunID    string
	Steps    int
	Duration time.Duration
	LastLoss float64
}

// Run trains mdl for cfg.Steps single-sample steps drawn with replacement
// from points. Every label is encoded before the first step, so an unknown
// label fails the run without touching the weights.
func Run(ctx context.Context, cfg RunConfig, mdl model.Model, space label.Space, points []dataset.Point) (Report, error) {
	if cfg.Steps <= 0 {
		return Report{}, errors.New("trainer: steps must be > 0")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 1000
	}
	for i, p := range points {
		if _, err := space.Encode(p.Label); err != nil {
			return Report{}, fmt.Errorf("trainer: point %d: %w", i, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	samples, err := dataset.StartSampler(ctx, dataset.SamplerOptions{
		Points: points,
		Count:  cfg.Steps,
		Seed:   cfg.Seed,
	})
	if err != nil {
		return Report{}, err
	}

	report := Report{RunID: uuid.New().String()}
	var window metrics.Window
	start := time.Now()

	log.Info().
		Str("run", report.RunID).
		Int("steps", cfg.Steps).
		Int("points", len(points)).
		Msg("training started")

	for sample := range samples {
		target, err := space.Encode(sample.Point.Label)
		if err != nil {
			return report, err
		}
		inputs := sample.Point.Inputs()

		startCompute := time.Now()
		output, err := mdl.Step(inputs, target)
		if err != nil {
			return report, fmt.Errorf("trainer: step %d: %w", sample.Step, err)
		}
		computeTime := time.Since(startCompute)

		loss := metrics.SquaredError(target, output)
		window.Record(computeTime, loss)
		if cfg.Metrics != nil {
			cfg.Metrics.ObserveStep(computeTime)
		}
		report.Steps = sample.Step
		report.LastLoss = loss

		if sample.Step%cfg.LogEvery == 0 {
			snap := window.Snapshot()
			if cfg.Metrics != nil {
				cfg.Metrics.SetLoss(snap.AvgLoss)
			}
			log.Info().
				Str("run", report.RunID).
				Int("step", sample.Step).
				Float64("steps_per_sec", snap.StepsPerSec).
				Float64("compute_ms", snap.AvgComputeMS).
				Float64("loss", snap.LastLoss).
				Float64("avg_loss", snap.AvgLoss).
				Msg("training progress")
		}
	}
	report.Duration = time.Since(start)

	if report.Steps < cfg.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		return report, fmt.Errorf("trainer: sampler stopped after %d of %d steps", report.Steps, cfg.Steps)
	}

	log.Info().
		Str("run", report.RunID).
		Int("steps", report.Steps).
		Dur("duration", report.Duration).
		Str("weights", fmt.Sprintf("%v", mdl)).
		Msg("training complete")

	return report, nil
}
