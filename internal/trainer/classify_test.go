package trainer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadnet/internal/dataset"
	"quadnet/internal/label"
	"quadnet/internal/metrics"
	"quadnet/internal/model"
)

func TestClassifyUntrainedPicksFirstLabel(t *testing.T) {
	clf := newReference(t, model.InitZero)
	points := dataset.RandomPoints(rand.New(rand.NewSource(1)), 20)

	results, err := Classify(context.Background(), clf, label.Quadrants(), points, 4, nil)
	require.NoError(t, err)
	require.Len(t, results, 20)
	for i, c := range results {
		assert.Equal(t, points[i], c.Point)
		assert.Equal(t, label.Blue, c.Predicted)
		assert.Equal(t, 0.5, c.Confidence)
	}
}

func TestClassifyAfterTrainingFollowsQuadrants(t *testing.T) {
	clf := newReference(t, model.InitZero)
	_, err := Run(context.Background(), RunConfig{Steps: 10000, Seed: 42}, clf, label.Quadrants(), dataset.QuadrantPoints())
	require.NoError(t, err)

	probe := []dataset.Point{
		{X: -0.8, Y: -0.6},
		{X: 0.7, Y: -0.9},
		{X: -0.4, Y: 0.9},
		{X: 0.6, Y: 0.5},
	}
	want := []label.Label{label.Blue, label.Red, label.Green, label.Purple}

	collector := metrics.NewCollector()
	results, err := Classify(context.Background(), clf, label.Quadrants(), probe, 2, collector)
	require.NoError(t, err)
	for i, c := range results {
		assert.Equal(t, want[i], c.Predicted, "point %+v", c.Point)
		assert.True(t, c.Confidence > 0.5)
	}

	count, err := testutil.GatherAndCount(collector.Registry(), "quadnet_predictions_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestClassifyPropagatesErrors(t *testing.T) {
	clf, err := model.NewLinearClassifier(2, 3, 0.1, model.InitZero)
	require.NoError(t, err)

	_, err = Classify(context.Background(), clf, label.Quadrants(), dataset.QuadrantPoints(), 2, nil)
	assert.ErrorIs(t, err, label.ErrDimensionMismatch)
}

func TestEvaluateUntrained(t *testing.T) {
	eval, err := Evaluate(newReference(t, model.InitZero), label.Quadrants(), dataset.QuadrantPoints())
	require.NoError(t, err)
	assert.Equal(t, 4, eval.Total)
	assert.Equal(t, 1, eval.Correct)
	assert.Len(t, eval.Misses, 3)
	assert.InDelta(t, 1.0, eval.Loss, 1e-12)
}

func TestEvaluateEmpty(t *testing.T) {
	eval, err := Evaluate(newReference(t, model.InitZero), label.Quadrants(), nil)
	require.NoError(t, err)
	assert.Zero(t, eval.Total)
}
