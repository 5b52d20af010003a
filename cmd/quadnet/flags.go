package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quadnet/internal/config"
)

type cliFlags struct {
	configPath   string
	steps        int
	seed         int64
	learningRate float64
	initPolicy   string
	trainingSet  string
	points       int
	workers      int
	logEvery     int
	logLevel     string
	renderPath   string
	metricsAddr  string
	pretty       bool
}

var flags cliFlags

func attachFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to YAML config (defaults are used when empty)")
	pf.IntVar(&flags.steps, "steps", 0, "Number of training iterations")
	pf.Int64Var(&flags.seed, "seed", 0, "PRNG seed")
	pf.Float64Var(&flags.learningRate, "learning-rate", 0, "Learning rate")
	pf.StringVar(&flags.initPolicy, "init-policy", "", "Weight init policy: zero or uniform")
	pf.StringVar(&flags.trainingSet, "training-set", "", "YAML file with labelled training points")
	pf.IntVar(&flags.points, "points", 0, "Number of random points to classify")
	pf.IntVar(&flags.workers, "workers", 0, "Classification workers")
	pf.IntVar(&flags.logEvery, "log-every", 0, "Log every N steps")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.renderPath, "render", "", "Write a PNG of the classified points to this path")
	pf.StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address, e.g. :9100")
	pf.BoolVar(&flags.pretty, "pretty", false, "Human readable console logging")
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(config.Overrides{
		LearningRate:       flags.learningRate,
		InitPolicy:         flags.initPolicy,
		TrainingIterations: flags.steps,
		TrainingSet:        flags.trainingSet,
		ClassifyPoints:     flags.points,
		Seed:               flags.seed,
		LogEvery:           flags.logEvery,
		LogLevel:           flags.logLevel,
		Workers:            flags.workers,
		RenderPath:         flags.renderPath,
		MetricsAddr:        flags.metricsAddr,
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	setupLogging(cfg.LogLevel, flags.pretty)
	return cfg, nil
}

func setupLogging(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
