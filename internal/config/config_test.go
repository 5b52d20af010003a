package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadnet/internal/label"
	"quadnet/internal/model"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.InputCount)
	assert.Equal(t, 4, cfg.OutputCount)
	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 10000, cfg.TrainingIterations)

	space, err := cfg.Space()
	require.NoError(t, err)
	assert.Equal(t, label.Quadrants().Labels(), space.Labels())

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, model.InitZero, policy)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
learning_rate: 0.25
init_policy: uniform
seed: 7
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.LearningRate)
	assert.Equal(t, "uniform", cfg.InitPolicy)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 10000, cfg.TrainingIterations)
	assert.Len(t, cfg.Labels, 4)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "batch_size: 32\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"inputs":      func(c *Config) { c.InputCount = 0 },
		"3d inputs":   func(c *Config) { c.InputCount = 3 },
		"outputs":     func(c *Config) { c.OutputCount = -1 },
		"rate":        func(c *Config) { c.LearningRate = 0 },
		"policy":      func(c *Config) { c.InitPolicy = "he" },
		"iterations":  func(c *Config) { c.TrainingIterations = 0 },
		"labels":      func(c *Config) { c.Labels = []string{"a", "a", "b", "c"} },
		"label count": func(c *Config) { c.Labels = []string{"a", "b"} },
		"log level":   func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		TrainingIterations: 50,
		Seed:               9,
		InitPolicy:         "uniform",
		RenderPath:         "out.png",
	})
	assert.Equal(t, 50, cfg.TrainingIterations)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "uniform", cfg.InitPolicy)
	assert.Equal(t, "out.png", cfg.RenderPath)
	assert.Equal(t, 0.1, cfg.LearningRate)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
