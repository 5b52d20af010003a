package model

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidConfiguration is returned for bad constructor arguments.
	ErrInvalidConfiguration = errors.New("model: invalid configuration")
	// ErrDimensionMismatch is returned when a vector length does not match the model.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")
)

// InitPolicy selects how weights are initialised.
type InitPolicy int

const (
	// InitZero sets every weight to 0.
	InitZero InitPolicy = iota
	// InitUniform draws every weight independently from [0, 1).
	InitUniform
)

func (p InitPolicy) String() string {
	switch p {
	case InitZero:
		return "zero"
	case InitUniform:
		return "uniform"
	default:
		return fmt.Sprintf("InitPolicy(%d)", int(p))
	}
}

// ParseInitPolicy maps a config value to an InitPolicy.
func ParseInitPolicy(s string) (InitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "zero", "zeros":
		return InitZero, nil
	case "uniform", "random", "uniform_random":
		return InitUniform, nil
	default:
		return 0, fmt.Errorf("%w: unknown init policy %q", ErrInvalidConfiguration, s)
	}
}

// Option customises a LinearClassifier.
type Option func(*LinearClassifier)

// WithRand sets the random source used by InitUniform.
func WithRand(rng *rand.Rand) Option {
	return func(c *LinearClassifier) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed seeds the random source used by InitUniform.
func WithSeed(seed int64) Option {
	return func(c *LinearClassifier) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// LinearClassifier is a single-layer network: one weight row per output,
// a sigmoid on every output and online gradient descent.
// It is not safe for concurrent use while Learn is running.
type LinearClassifier struct {
	inputs  int
	outputs int
	lr      float64
	policy  InitPolicy
	weights *mat.Dense
	rng     *rand.Rand
}

// NewLinearClassifier constructs a classifier with outputs x inputs weights.
func NewLinearClassifier(inputs, outputs int, lr float64, policy InitPolicy, opts ...Option) (*LinearClassifier, error) {
	if inputs < 1 {
		return nil, fmt.Errorf("%w: input count must be >= 1 (got %d)", ErrInvalidConfiguration, inputs)
	}
	if outputs < 1 {
		return nil, fmt.Errorf("%w: output count must be >= 1 (got %d)", ErrInvalidConfiguration, outputs)
	}
	if !(lr > 0) || math.IsInf(lr, 1) {
		return nil, fmt.Errorf("%w: learning rate must be > 0 (got %v)", ErrInvalidConfiguration, lr)
	}
	if policy != InitZero && policy != InitUniform {
		return nil, fmt.Errorf("%w: unknown init policy %v", ErrInvalidConfiguration, policy)
	}
	c := &LinearClassifier{
		inputs:  inputs,
		outputs: outputs,
		lr:      lr,
		policy:  policy,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.Reset()
	return c, nil
}

// Reset reinitialises the weights according to the init policy.
func (c *LinearClassifier) Reset() {
	data := make([]float64, c.outputs*c.inputs)
	if c.policy == InitUniform {
		for i := range data {
			data[i] = c.rng.Float64()
		}
	}
	c.weights = mat.NewDense(c.outputs, c.inputs, data)
}

// Predict runs the forward pass. It does not modify the classifier.
func (c *LinearClassifier) Predict(inputs []float64) ([]float64, error) {
	if len(inputs) != c.inputs {
		return nil, fmt.Errorf("%w: got %d inputs, want %d", ErrDimensionMismatch, len(inputs), c.inputs)
	}
	return c.forward(inputs), nil
}

// Learn performs one gradient step on a single sample:
//
//	w[i][j] += lr * (target[i]-out[i]) * out[i] * (1-out[i]) * inputs[j]
//
// Both vectors are checked before any weight changes.
func (c *LinearClassifier) Learn(inputs, target []float64) error {
	_, err := c.Step(inputs, target)
	return err
}

// Step is Learn returning the pre-update output, so callers can score the
// sample without a second forward pass.
func (c *LinearClassifier) Step(inputs, target []float64) ([]float64, error) {
	if len(inputs) != c.inputs {
		return nil, fmt.Errorf("%w: got %d inputs, want %d", ErrDimensionMismatch, len(inputs), c.inputs)
	}
	if len(target) != c.outputs {
		return nil, fmt.Errorf("%w: got %d targets, want %d", ErrDimensionMismatch, len(target), c.outputs)
	}
	output := c.forward(inputs)
	for i := 0; i < c.outputs; i++ {
		e := target[i] - output[i]
		row := c.weights.RawRowView(i)
		for j := range row {
			row[j] += float64(c.lr * e * output[i] * (1 - output[i]) * inputs[j])
		}
	}
	return output, nil
}

func (c *LinearClassifier) forward(inputs []float64) []float64 {
	out := make([]float64, c.outputs)
	for i := range out {
		row := c.weights.RawRowView(i)
		z := 0.0
		for j, w := range row {
			z += float64(w * inputs[j])
		}
		out[i] = Sigmoid(z)
	}
	return out
}

// Inputs returns the configured input count.
func (c *LinearClassifier) Inputs() int { return c.inputs }

// Outputs returns the configured output count.
func (c *LinearClassifier) Outputs() int { return c.outputs }

// LearningRate returns the fixed learning rate.
func (c *LinearClassifier) LearningRate() float64 { return c.lr }

// Policy returns the init policy.
func (c *LinearClassifier) Policy() InitPolicy { return c.policy }

// Weights returns a copy of the weight matrix.
func (c *LinearClassifier) Weights() *mat.Dense {
	return mat.DenseCopyOf(c.weights)
}

func (c *LinearClassifier) String() string {
	return fmt.Sprintf("%v", mat.Formatted(c.weights, mat.FormatMATLAB()))
}
