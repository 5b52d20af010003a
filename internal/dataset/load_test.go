package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadnet/internal/label"
)

func TestLoadPoints(t *testing.T) {
	path := mustWrite(t, `
- {x: -0.5, y: -0.5, label: blue}
- {x: 0.5, y: 0.5, label: purple}
`)
	points, err := LoadPoints(path)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{X: -0.5, Y: -0.5, Label: label.Blue},
		{X: 0.5, Y: 0.5, Label: label.Purple},
	}, points)
}

func TestLoadPointsErrors(t *testing.T) {
	_, err := LoadPoints(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadPoints(mustWrite(t, "- {x: 1, y: 1}\n"))
	assert.ErrorContains(t, err, "missing label")

	_, err = LoadPoints(mustWrite(t, "- {x: 1, y: 1, z: 2, label: red}\n"))
	assert.Error(t, err)

	_, err = LoadPoints(mustWrite(t, "[]\n"))
	assert.Error(t, err)
}

func mustWrite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
