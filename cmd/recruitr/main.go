package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/config"
	dbRedis "github.com/recruitr-hq/recruitr/internal/db/redis"
	"github.com/recruitr-hq/recruitr/internal/domain"
	logpkg "github.com/recruitr-hq/recruitr/internal/logger"
	"github.com/recruitr-hq/recruitr/internal/metrics"
	participantrepo "github.com/recruitr-hq/recruitr/internal/repository/participant"
	vectorrepo "github.com/recruitr-hq/recruitr/internal/repository/vector"
	"github.com/recruitr-hq/recruitr/internal/retrieval/hybrid"
	"github.com/recruitr-hq/recruitr/internal/retrieval/semantic"
	chiTransport "github.com/recruitr-hq/recruitr/internal/transport/chi"
	openaiEmb "github.com/recruitr-hq/recruitr/internal/transport/openai"
	"github.com/recruitr-hq/recruitr/internal/usecase/health"
	searchuc "github.com/recruitr-hq/recruitr/internal/usecase/search"
	"github.com/recruitr-hq/recruitr/internal/version"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting recruitr API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

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
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterSearchMetrics()

	// Semantic path is optional: without an API key the hybrid retriever runs
	// keyword-only and health skips the embedding check.
	var (
		semRetriever *semantic.Retriever
		embChecker   health.EmbeddingChecker
	)
	if cfg.Embedding.Enabled() {
		embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.Embedding.APIKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
			Provider:   cfg.Embedding.Provider,
			RateLimit:  cfg.Embedding.RateLimit,
			Logger:     logger,
		})
		embChecker = embedder

		vecRepo := vectorrepo.New(store, cfg.Embedding.Dimensions)
		if err := vecRepo.EnsureIndex(ctx); err != nil {
			logger.Warn("Vector index unavailable, semantic search degraded", zap.Error(err))
		}

		semRetriever = semantic.NewRetriever(
			embedder, vecRepo,
			time.Duration(cfg.Retrieval.SemanticTimeoutMs)*time.Millisecond,
			logger,
		)
		logger.Info("Embedder created",
			zap.String("provider", cfg.Embedding.Provider),
			zap.String("model", cfg.Embedding.Model),
			zap.Int("dimensions", cfg.Embedding.Dimensions),
		)
	} else {
		logger.Warn("No embedding API key configured, search runs keyword-only")
	}

	var builder *hybrid.Builder
	if semRetriever != nil {
		builder = hybrid.NewBuilder(
			semRetriever, cfg.Retrieval.BM25K1, cfg.Retrieval.BM25B, cfg.Retrieval.RRFK, logger,
		)
	} else {
		builder = hybrid.NewBuilder(
			nil, cfg.Retrieval.BM25K1, cfg.Retrieval.BM25B, cfg.Retrieval.RRFK, logger,
		)
	}

	partRepo := participantrepo.New(store)

	searchSvc := searchuc.New(partRepo, func(ps []domain.Participant) (searchuc.Retriever, error) {
		return builder.Build(ps)
	}, logger)

	// Initial snapshot. The server does not start without one.
	count, err := searchSvc.Reload(ctx)
	if err != nil {
		logger.Fatal("Failed to build initial search snapshot", zap.Error(err))
	}
	metrics.SnapshotReloadsTotal.WithLabelValues("ok").Inc()
	metrics.SnapshotParticipants.Set(float64(count))
	logger.Info("Initial search snapshot ready", zap.Int("participants", count))

	healthSvc := health.New(store, embChecker, searchSvc)

	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
