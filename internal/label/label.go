package label

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrUnknownLabel is returned when encoding a label outside the space.
	ErrUnknownLabel = errors.New("label: unknown label")
	// ErrDimensionMismatch is returned when an output vector does not match the space size.
	ErrDimensionMismatch = errors.New("label: dimension mismatch")
	// ErrInvalidSpace is returned for empty or duplicated label sets.
	ErrInvalidSpace = errors.New("label: invalid label space")
)

// Label names one class of the classifier output.
type Label string

const (
	Blue   Label = "blue"
	Red    Label = "red"
	Green  Label = "green"
	Purple Label = "purple"
)

// Space is a fixed, ordered set of labels. The position of a label is the
// output index the classifier uses for it.
type Space struct {
	labels []Label
}

// Quadrants is the reference space, one label per quadrant of the plane.
func Quadrants() Space {
	return Space{labels: []Label{Blue, Red, Green, Purple}}
}

// NewSpace validates labels and returns the space in the given order.
func NewSpace(labels ...Label) (Space, error) {
	if len(labels) == 0 {
		return Space{}, fmt.Errorf("%w: no labels", ErrInvalidSpace)
	}
	seen := make(map[Label]struct{}, len(labels))
	for i, l := range labels {
		if strings.TrimSpace(string(l)) == "" {
			return Space{}, fmt.Errorf("%w: blank label at index %d", ErrInvalidSpace, i)
		}
		if _, ok := seen[l]; ok {
			return Space{}, fmt.Errorf("%w: duplicate label %q", ErrInvalidSpace, l)
		}
		seen[l] = struct{}{}
	}
	return Space{labels: append([]Label(nil), labels...)}, nil
}

// Parse builds a space from plain strings, as read from configuration.
func Parse(names []string) (Space, error) {
	labels := make([]Label, len(names))
	for i, n := range names {
		labels[i] = Label(strings.TrimSpace(n))
	}
	return NewSpace(labels...)
}

// Len returns the number of labels.
func (s Space) Len() int {
	return len(s.labels)
}

// Labels returns a copy of the ordered labels.
func (s Space) Labels() []Label {
	return append([]Label(nil), s.labels...)
}

// At returns the label at index i.
func (s Space) At(i int) (Label, error) {
	if i < 0 || i >= len(s.labels) {
		return "", fmt.Errorf("%w: index %d outside [0,%d)", ErrDimensionMismatch, i, len(s.labels))
	}
	return s.labels[i], nil
}

// Index returns the position of l.
func (s Space) Index(l Label) (int, error) {
	for i, candidate := range s.labels {
		if candidate == l {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownLabel, l)
}

// Encode returns the one-hot target vector for l.
func (s Space) Encode(l Label) ([]float64, error) {
	idx, err := s.Index(l)
	if err != nil {
		return nil, err
	}
	target := make([]float64, len(s.labels))
	target[idx] = 1
	return target, nil
}

// Decode maps an output vector to the label with the highest activation.
// Ties resolve to the lowest index.
func (s Space) Decode(output []float64) (Label, error) {
	if len(output) != len(s.labels) || len(output) == 0 {
		return "", fmt.Errorf("%w: got %d values for %d labels", ErrDimensionMismatch, len(output), len(s.labels))
	}
	return s.At(floats.MaxIdx(output))
}
