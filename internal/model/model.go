package model

import "math"

// Model defines the two operations a driver needs from a classifier.
type Model interface {
	Predict(inputs []float64) ([]float64, error)
	Learn(inputs, target []float64) error
	// Step is Learn that also returns the output computed before the update.
	Step(inputs, target []float64) ([]float64, error)
}

// Sigmoid is the logistic function 1/(1+e^-z).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
