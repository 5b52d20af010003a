package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"quadnet/internal/dataset"
	"quadnet/internal/label"
	"quadnet/internal/model"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	InputCount         int      `yaml:"input_count"`
	OutputCount        int      `yaml:"output_count"`
	LearningRate       float64  `yaml:"learning_rate"`
	InitPolicy         string   `yaml:"init_policy"`
	TrainingIterations int      `yaml:"training_iterations"`
	Labels             []string `yaml:"labels"`
	TrainingSet        string   `yaml:"training_set"`
	ClassifyPoints     int      `yaml:"classify_points"`
	Seed               int64    `yaml:"seed"`
	LogEvery           int      `yaml:"log_every"`
	LogLevel           string   `yaml:"log_level"`
	Workers            int      `yaml:"workers"`
	RenderPath         string   `yaml:"render_path"`
	RenderSize         int      `yaml:"render_size"`
	MetricsAddr        string   `yaml:"metrics_addr"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	LearningRate       float64
	InitPolicy         string
	TrainingIterations int
	TrainingSet        string
	ClassifyPoints     int
	Seed               int64
	LogEvery           int
	LogLevel           string
	Workers            int
	RenderPath         string
	MetricsAddr        string
}

// Default returns the reference configuration: 2 inputs, 4 quadrant labels,
// learning rate 0.1, zero weights and 10000 training draws.
func Default() *Config {
	return &Config{
		InputCount:         dataset.PointDims,
		OutputCount:        4,
		LearningRate:       0.1,
		InitPolicy:         model.InitZero.String(),
		TrainingIterations: 10000,
		Labels:             []string{string(label.Blue), string(label.Red), string(label.Green), string(label.Purple)},
		ClassifyPoints:     100,
		LogEvery:           1000,
		LogLevel:           zerolog.InfoLevel.String(),
		Workers:            4,
		RenderSize:         400,
	}
}

// Load reads a Config from YAML on top of Default and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.InitPolicy != "" {
		c.InitPolicy = o.InitPolicy
	}
	if o.TrainingIterations > 0 {
		c.TrainingIterations = o.TrainingIterations
	}
	if o.TrainingSet != "" {
		c.TrainingSet = o.TrainingSet
	}
	if o.ClassifyPoints > 0 {
		c.ClassifyPoints = o.ClassifyPoints
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.RenderPath != "" {
		c.RenderPath = o.RenderPath
	}
	if o.MetricsAddr != "" {
		c.MetricsAddr = o.MetricsAddr
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.InputCount != dataset.PointDims {
		return fmt.Errorf("input_count must be %d, training points are x,y (got %d)", dataset.PointDims, c.InputCount)
	}
	if c.OutputCount <= 0 {
		return fmt.Errorf("output_count must be > 0 (got %d)", c.OutputCount)
	}
	if !(c.LearningRate > 0) {
		return fmt.Errorf("learning_rate must be > 0 (got %v)", c.LearningRate)
	}
	if _, err := model.ParseInitPolicy(c.InitPolicy); err != nil {
		return err
	}
	if c.TrainingIterations <= 0 {
		return fmt.Errorf("training_iterations must be > 0 (got %d)", c.TrainingIterations)
	}
	space, err := label.Parse(c.Labels)
	if err != nil {
		return err
	}
	if space.Len() != c.OutputCount {
		return fmt.Errorf("labels has %d entries but output_count is %d", space.Len(), c.OutputCount)
	}
	if c.ClassifyPoints < 0 {
		return fmt.Errorf("classify_points must be >= 0 (got %d)", c.ClassifyPoints)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1000
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 400
	}
	return nil
}

// Space returns the configured label space.
func (c *Config) Space() (label.Space, error) {
	return label.Parse(c.Labels)
}

// Policy returns the configured weight init policy.
func (c *Config) Policy() (model.InitPolicy, error) {
	return model.ParseInitPolicy(c.InitPolicy)
}
