package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"quadnet/internal/config"
	"quadnet/internal/dataset"
	"quadnet/internal/label"
	"quadnet/internal/metrics"
	"quadnet/internal/model"
	"quadnet/internal/trainer"
)

// session owns the classifier for one CLI invocation.
type session struct {
	cfg       *config.Config
	space     label.Space
	clf       *model.LinearClassifier
	points    []dataset.Point
	collector *metrics.Collector
	server    *http.Server
}

func newSession(cfg *config.Config) (*session, error) {
	space, err := cfg.Space()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	var opts []model.Option
	if cfg.Seed != 0 {
		opts = append(opts, model.WithSeed(cfg.Seed))
	}
	clf, err := model.NewLinearClassifier(cfg.InputCount, cfg.OutputCount, cfg.LearningRate, policy, opts...)
	if err != nil {
		return nil, err
	}

	points := dataset.QuadrantPoints()
	if cfg.TrainingSet != "" {
		points, err = dataset.LoadPoints(cfg.TrainingSet)
		if err != nil {
			return nil, err
		}
	}

	s := &session{cfg: cfg, space: space, clf: clf, points: points}
	if cfg.MetricsAddr != "" {
		s.collector = metrics.NewCollector()
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.collector.Handler())
		s.server = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server stopped")
			}
		}()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
	}
	return s, nil
}

func (s *session) train(ctx context.Context) error {
	log.Info().
		Int("inputs", s.clf.Inputs()).
		Int("outputs", s.clf.Outputs()).
		Float64("learning_rate", s.clf.LearningRate()).
		Str("init_policy", s.clf.Policy().String()).
		Msg("classifier ready")

	_, err := trainer.Run(ctx, trainer.RunConfig{
		Steps:    s.cfg.TrainingIterations,
		LogEvery: s.cfg.LogEvery,
		Seed:     s.cfg.Seed,
		Metrics:  s.collector,
	}, s.clf, s.space, s.points)
	if err != nil {
		return err
	}

	eval, err := trainer.Evaluate(s.clf, s.space, s.points)
	if err != nil {
		return err
	}
	log.Info().
		Int("correct", eval.Correct).
		Int("total", eval.Total).
		Float64("accuracy", eval.Accuracy).
		Float64("loss", eval.Loss).
		Msg("training set evaluation")
	for _, miss := range eval.Misses {
		log.Warn().
			Float64("x", miss.Point.X).
			Float64("y", miss.Point.Y).
			Str("label", string(miss.Point.Label)).
			Str("predicted", string(miss.Predicted)).
			Msg("training point misclassified")
	}
	return nil
}

func (s *session) classify(ctx context.Context, points []dataset.Point) ([]trainer.Classified, error) {
	return trainer.Classify(ctx, s.clf, s.space, points, s.cfg.Workers, s.collector)
}

func (s *session) close() {
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("metrics server shutdown")
	}
}
