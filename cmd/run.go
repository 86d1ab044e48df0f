package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptswipe/internal/app"
	"github.com/abhisek/conceptswipe/internal/config"
	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/llm"
	"github.com/abhisek/conceptswipe/internal/screens/complete"
	"github.com/abhisek/conceptswipe/internal/screens/review"
	"github.com/abhisek/conceptswipe/internal/share"
)

// environment holds what every command builds from the loaded config.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
}

// ingester builds the configured ingestion backend.
func (e *environment) ingester(ctx context.Context) (ingest.Ingester, error) {
	switch e.cfg.Ingest.Source {
	case config.SourceLLM:
		lc, err := e.cfg.LLMConfig()
		if err != nil {
			return nil, err
		}
		provider, err := llm.NewProvider(ctx, lc, e.logger)
		if err != nil {
			return nil, fmt.Errorf("LLM provider: %w", err)
		}
		e.logger.Info("using LLM ingester", "provider", lc.Provider, "model", provider.ModelID())
		return ingest.NewLLM(provider, e.cfg.IngestLLM()), nil
	default:
		return ingest.NewSample(e.cfg.Ingest.Delay), nil
	}
}

func (e *environment) classifier() (*gesture.Classifier, error) {
	cl, err := gesture.New(e.cfg.Thresholds())
	if err != nil {
		return nil, fmt.Errorf("gesture thresholds: %w", err)
	}
	return cl, nil
}

// ingestPace is how long the ingesting screen expects a run to take.
func (e *environment) ingestPace() time.Duration {
	if e.cfg.Ingest.Source == config.SourceSample && e.cfg.Ingest.Delay > 0 {
		return e.cfg.Ingest.Delay
	}
	return ingest.StagesDuration()
}

func (e *environment) open(path string) (ingest.Document, error) {
	return ingest.OpenDocument(path, e.cfg.Ingest.MaxDocumentBytes)
}

// runApp loads config, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	env, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ing, err := env.ingester(ctx)
	if err != nil {
		return err
	}
	cl, err := env.classifier()
	if err != nil {
		return err
	}

	opts := app.Options{
		Machine:    journey.New(ing, journey.WithLogger(env.logger), journey.WithContext(ctx)),
		Classifier: cl,
		Review: review.Config{
			ColumnUnits:      env.cfg.Gesture.ColumnUnits,
			RowUnits:         env.cfg.Gesture.RowUnits,
			FeedbackDuration: env.cfg.Review.FeedbackDuration,
		},
		Open:       env.open,
		Demo:       env.cfg.Ingest.Source == config.SourceSample,
		IngestPace: env.ingestPace(),
		Logger:     env.logger,
	}

	// Sharing is optional; the complete screen disables it without a clipboard.
	var sharer complete.Sharer
	if clip := share.NewClipboard(); clip.Available() {
		sharer = clip
	} else {
		env.logger.Info("clipboard unavailable, sharing disabled")
	}
	opts.Sharer = sharer

	env.logger.Info("starting", "version", version, "source", env.cfg.Ingest.Source)
	return app.Run(opts)
}
