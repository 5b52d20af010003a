package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quadnet/internal/dataset"
	"quadnet/internal/render"
	"quadnet/internal/trainer"
)

func train(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.train(ctx); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	points := dataset.RandomPoints(rand.New(rand.NewSource(seed+1)), cfg.ClassifyPoints)
	classified, err := s.classify(ctx, points)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	out := cmd.OutOrStdout()
	render.WriteTable(out, classified)
	render.WriteSummary(out, s.space, classified)

	if cfg.RenderPath != "" {
		if err := writePNG(cfg.RenderPath, s, classified, cfg.RenderSize); err != nil {
			return err
		}
		log.Info().Str("path", cfg.RenderPath).Int("points", len(classified)).Msg("rendered classification")
	}
	return nil
}

func writePNG(path string, s *session, classified []trainer.Classified, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create render: %w", err)
	}
	if err := render.WritePNG(f, s.space, classified, size); err != nil {
		f.Close()
		return fmt.Errorf("render: %w", err)
	}
	return f.Close()
}

func trainCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "train the classifier and classify random points",
		Long:  "train the classifier on the training set, then classify random points in [-1,1]x[-1,1] and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return train(cmd)
		},
	}
}
