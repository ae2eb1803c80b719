// Command recruitr-seed populates Redis with synthetic participant profiles
// and, when an embedding provider is configured, their description vectors.
package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/config"
	dbRedis "github.com/recruitr-hq/recruitr/internal/db/redis"
	"github.com/recruitr-hq/recruitr/internal/domain"
	logpkg "github.com/recruitr-hq/recruitr/internal/logger"
	"github.com/recruitr-hq/recruitr/internal/metrics"
	participantrepo "github.com/recruitr-hq/recruitr/internal/repository/participant"
	vectorrepo "github.com/recruitr-hq/recruitr/internal/repository/vector"
	openaiEmb "github.com/recruitr-hq/recruitr/internal/transport/openai"
)

const embedBatchSize = 50

func main() {
	count := flag.Int("count", 50, "number of synthetic participants to generate")
	seed := flag.Int64("seed", 1, "random seed for reproducible corpora")
	reset := flag.Bool("reset", false, "delete existing participants before seeding")
	flag.Parse()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	metrics.RegisterEmbeddingMetrics()

	partRepo := participantrepo.New(store)
	var vecRepo *vectorrepo.Repo
	if cfg.Embedding.Enabled() {
		vecRepo = vectorrepo.New(store, cfg.Embedding.Dimensions)
	}

	if *reset {
		if err := deleteExisting(ctx, partRepo, vecRepo, logger); err != nil {
			logger.Fatal("Failed to reset corpus", zap.Error(err))
		}
	}

	gen := newGenerator(*seed)
	participants := make([]domain.Participant, *count)
	for i := range participants {
		participants[i] = gen.participant()
	}

	for i := range participants {
		if err := partRepo.Put(ctx, &participants[i]); err != nil {
			logger.Fatal("Failed to store participant",
				zap.String("participant_id", participants[i].ID()),
				zap.Error(err),
			)
		}
	}
	logger.Info("Participants stored", zap.Int("count", len(participants)))

	if vecRepo == nil {
		logger.Warn("No embedding API key configured, skipping vector index")
		return
	}

	if err := indexVectors(ctx, &cfg, vecRepo, participants, logger); err != nil {
		logger.Fatal("Failed to index vectors", zap.Error(err))
	}

	logger.Info("Seed complete",
		zap.Int("participants", len(participants)),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)
}

func deleteExisting(
	ctx context.Context,
	partRepo *participantrepo.Repo,
	vecRepo *vectorrepo.Repo,
	logger *zap.Logger,
) error {
	existing, err := partRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range existing {
		id := existing[i].ID()
		if err := partRepo.Delete(ctx, id); err != nil {
			return err
		}
		if vecRepo != nil {
			if err := vecRepo.Remove(ctx, id); err != nil {
				logger.Warn("Failed to remove vector doc",
					zap.String("participant_id", id),
					zap.Error(err),
				)
			}
		}
	}
	logger.Info("Existing participants removed", zap.Int("count", len(existing)))
	return nil
}

// indexVectors embeds participant descriptions in batches and writes the
// vector docs the KNN index is built over.
func indexVectors(
	ctx context.Context,
	cfg *config.Config,
	vecRepo *vectorrepo.Repo,
	participants []domain.Participant,
	logger *zap.Logger,
) error {
	embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		RateLimit:  cfg.Embedding.RateLimit,
		Logger:     logger,
	})

	if err := vecRepo.EnsureIndex(ctx); err != nil {
		return err
	}

	for start := 0; start < len(participants); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(participants) {
			end = len(participants)
		}
		batch := participants[start:end]

		texts := make([]string, len(batch))
		for i := range batch {
			texts[i] = batch[i].Description()
		}

		result, err := embedder.BatchEmbed(ctx, texts)
		if err != nil {
			return err
		}

		for i := range batch {
			if err := vecRepo.IndexParticipant(ctx, &batch[i], result.Embeddings[i]); err != nil {
				return err
			}
		}

		logger.Info("Vector batch indexed",
			zap.Int("from", start),
			zap.Int("to", end),
			zap.Int("tokens", result.TotalTokens),
		)
	}

	return nil
}
