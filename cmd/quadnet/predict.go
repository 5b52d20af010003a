package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"quadnet/internal/dataset"
	"quadnet/internal/render"
)

func predict(cmd *cobra.Command, args []string) error {
	points, err := parsePoints(args)
	if err != nil {
		return err
	}
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
	classified, err := s.classify(ctx, points)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	render.WriteTable(cmd.OutOrStdout(), classified)
	return nil
}

// parsePoints reads "x,y" arguments.
func parsePoints(args []string) ([]dataset.Point, error) {
	points := make([]dataset.Point, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("point %q: want x,y", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: x: %w", arg, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: y: %w", arg, err)
		}
		points = append(points, dataset.Point{X: x, Y: y})
	}
	return points, nil
}

func predictCMD() *cobra.Command {
	return &cobra.Command{
		Use:     "predict x,y [x,y...]",
		Short:   "train the classifier and classify the given points",
		Example: "quadnet predict -- -0.3,-0.7 0.9,0.2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return predict(cmd, args)
		},
	}
}
