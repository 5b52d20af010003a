package dataset

import (
	"math/rand"

	"quadnet/internal/label"
)

// PointDims is the length of Point.Inputs.
const PointDims = 2

// Point is a 2-D sample. Label is empty for points awaiting classification.
type Point struct {
	X     float64     `yaml:"x"`
	Y     float64     `yaml:"y"`
	Label label.Label `yaml:"label,omitempty"`
}

// Inputs returns the point as a classifier input vector.
func (p Point) Inputs() []float64 {
	return []float64{p.X, p.Y}
}

// QuadrantPoints returns the reference training set, one point per quadrant.
func QuadrantPoints() []Point {
	return []Point{
		{X: -0.5, Y: -0.5, Label: label.Blue},
		{X: 0.5, Y: -0.5, Label: label.Red},
		{X: -0.5, Y: 0.5, Label: label.Green},
		{X: 0.5, Y: 0.5, Label: label.Purple},
	}
}

// RandomPoints returns n unlabelled points uniform in [-1,1) x [-1,1).
func RandomPoints(rng *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		}
	}
	return points
}
