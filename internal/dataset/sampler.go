package dataset

import (
	"context"
	"errors"
	"math/rand"
)

const defaultSeed = 42

// Sample is one training draw.
type Sample struct {
	Step  int
	Point Point
}

// SamplerOptions configures the training sampler.
type SamplerOptions struct {
	Points []Point
	Count  int
	Seed   int64
	Buffer int
}

// StartSampler launches a producer that emits Count samples drawn uniformly
// with replacement from Points. The channel is closed after the last sample
// or when ctx is cancelled.
func StartSampler(ctx context.Context, opts SamplerOptions) (<-chan Sample, error) {
	if len(opts.Points) == 0 {
		return nil, errors.New("sampler: no training points provided")
	}
	if opts.Count <= 0 {
		return nil, errors.New("sampler: count must be > 0")
	}
	if opts.Seed == 0 {
		opts.Seed = defaultSeed
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 64
	}

	points := append([]Point(nil), opts.Points...)
	rng := rand.New(rand.NewSource(opts.Seed))
	out := make(chan Sample, opts.Buffer)

	go func() {
		defer close(out)
		for step := 1; step <= opts.Count; step++ {
			sample := Sample{Step: step, Point: Draw(rng, points)}
			select {
			case <-ctx.Done():
				return
			case out <- sample:
			}
		}
	}()

	return out, nil
}

// Draw picks one point uniformly at random.
func Draw(rng *rand.Rand, points []Point) Point {
	return points[rng.Intn(len(points))]
}
