package dataset

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplerDeterministicStream(t *testing.T) {
	opts := SamplerOptions{Points: QuadrantPoints(), Count: 500, Seed: 123}

	run1 := collectSamples(t, opts)
	run2 := collectSamples(t, opts)

	require.Len(t, run1, 500)
	assert.Equal(t, run1, run2)
	for i, s := range run1 {
		assert.Equal(t, i+1, s.Step)
	}
}

func TestSamplerDrawsWithReplacement(t *testing.T) {
	samples := collectSamples(t, SamplerOptions{Points: QuadrantPoints(), Count: 4000, Seed: 5})

	counts := map[Point]int{}
	for _, s := range samples {
		counts[s.Point]++
	}
	require.Len(t, counts, 4)
	for p, n := range counts {
		assert.InDelta(t, 1000, n, 150, "point %v drawn %d times", p, n)
	}
}

func TestSamplerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stream, err := StartSampler(ctx, SamplerOptions{Points: QuadrantPoints(), Count: 1 << 30, Buffer: 1})
	require.NoError(t, err)

	<-stream
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-stream:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("sampler did not stop after cancel")
		}
	}
}

func TestSamplerRejectsBadOptions(t *testing.T) {
	_, err := StartSampler(context.Background(), SamplerOptions{Count: 10})
	assert.Error(t, err)

	_, err = StartSampler(context.Background(), SamplerOptions{Points: QuadrantPoints()})
	assert.Error(t, err)
}

func TestRandomPointsRange(t *testing.T) {
	points := RandomPoints(rand.New(rand.NewSource(1)), 100)
	require.Len(t, points, 100)
	for _, p := range points {
		assert.True(t, p.X >= -1 && p.X < 1)
		assert.True(t, p.Y >= -1 && p.Y < 1)
		assert.Empty(t, p.Label)
	}
}

func collectSamples(t *testing.T, opts SamplerOptions) []Sample {
	t.Helper()
	stream, err := StartSampler(context.Background(), opts)
	require.NoError(t, err)

	out := make([]Sample, 0, opts.Count)
	for s := range stream {
		out = append(out, s)
	}
	return out
}
