package trainer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"quadnet/internal/dataset"
	"quadnet/internal/label"
	"quadnet/internal/metrics"
	"quadnet/internal/model"
)

// Classified is a point together with its predicted label.
type Classified struct {
	Point      dataset.Point
	Predicted  label.Label
	Output     []float64
	Confidence float64
}

// Classify predicts every point using up to workers goroutines.
// Predict is read-only, but the caller must not run Learn on mdl until
// Classify returns.
func Classify(ctx context.Context, mdl model.Model, space label.Space, points []dataset.Point, workers int, collector *metrics.Collector) ([]Classified, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Classified, len(points))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range points {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := classifyOne(mdl, space, points[i])
			if err != nil {
				return fmt.Errorf("classify point %d: %w", i, err)
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if collector != nil {
		for _, c := range results {
			collector.ObservePrediction(string(c.Predicted))
		}
	}
	return results, nil
}

func classifyOne(mdl model.Model, space label.Space, p dataset.Point) (Classified, error) {
	out, err := mdl.Predict(p.Inputs())
	if err != nil {
		return Classified{}, err
	}
	predicted, err := space.Decode(out)
	if err != nil {
		return Classified{}, err
	}
	idx, err := space.Index(predicted)
	if err != nil {
		return Classified{}, err
	}
	return Classified{Point: p, Predicted: predicted, Output: out, Confidence: out[idx]}, nil
}

// Evaluation reports how well a model fits a labelled set.
type Evaluation struct {
	Total    int
	Correct  int
	Accuracy float64
	Loss     float64
	Misses   []Classified
}

// Evaluate classifies labelled points and reports accuracy and mean squared error.
func Evaluate(mdl model.Model, space label.Space, points []dataset.Point) (Evaluation, error) {
	eval := Evaluation{Total: len(points)}
	if len(points) == 0 {
		return eval, nil
	}
	losses := make([]float64, 0, len(points))
	for i, p := range points {
		target, err := space.Encode(p.Label)
		if err != nil {
			return Evaluation{}, fmt.Errorf("evaluate point %d: %w", i, err)
		}
		c, err := classifyOne(mdl, space, p)
		if err != nil {
			return Evaluation{}, fmt.Errorf("evaluate point %d: %w", i, err)
		}
		losses = append(losses, metrics.SquaredError(target, c.Output))
		if c.Predicted == p.Label {
			eval.Correct++
		} else {
			eval.Misses = append(eval.Misses, c)
		}
	}
	eval.Accuracy = float64(eval.Correct) / float64(eval.Total)
	eval.Loss = stat.Mean(losses, nil)
	return eval, nil
}
