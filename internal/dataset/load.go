package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPoints reads a labelled training set from a YAML list of {x, y, label}.
func LoadPoints(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open points: %w", err)
	}
	defer f.Close()

	var points []Point
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&points); err != nil {
		return nil, fmt.Errorf("parse points: %w", err)
	}
	if len(points) == 0 {
		return nil, errors.New("parse points: no points in file")
	}
	for i, p := range points {
		if p.Label == "" {
			return nil, fmt.Errorf("point %d: missing label", i)
		}
	}
	return points, nil
}
