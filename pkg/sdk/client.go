// Package sdk provides an embedded Go client for the recruitr participant
// search engine. It wires the same store, retrievers and orchestrator the
// HTTP server uses, for tools and services that want in-process search
// without running the API.
//
//	client, _ := sdk.New(sdk.WithRedis([]string{"localhost:6379"}, ""))
//	defer client.Close()
//	_, _ = client.Reload(ctx)
//	resp, _ := client.Search(ctx, "remote product manager using Figma", sdk.TopK(10))
package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/recruitr-hq/recruitr/internal/db"
	dbRedis "github.com/recruitr-hq/recruitr/internal/db/redis"
	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
	"github.com/recruitr-hq/recruitr/internal/domain/search/request"
	participantrepo "github.com/recruitr-hq/recruitr/internal/repository/participant"
	vectorrepo "github.com/recruitr-hq/recruitr/internal/repository/vector"
	"github.com/recruitr-hq/recruitr/internal/retrieval/hybrid"
	"github.com/recruitr-hq/recruitr/internal/retrieval/semantic"
	openaiEmb "github.com/recruitr-hq/recruitr/internal/transport/openai"
	searchuc "github.com/recruitr-hq/recruitr/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the embedded search engine entry point.
type Client struct {
	store  db.Store
	search *searchuc.Service
}

// New connects to Redis and assembles the search pipeline.
func New(opts ...Option) (*Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.addrs) == 0 {
		return nil, fmt.Errorf("sdk: at least one redis address is required")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("sdk: create store: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.readinessTimeout)
	defer cancel()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("sdk: store not ready: %w", err)
	}

	var semRetriever *semantic.Retriever
	if cfg.apiKey != "" {
		embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.apiKey,
			BaseURL:    cfg.baseURL,
			Model:      cfg.model,
			Dimensions: cfg.dimensions,
			Provider:   cfg.provider,
			Logger:     cfg.logger,
		})
		vecRepo := vectorrepo.New(store, cfg.dimensions)
		semRetriever = semantic.NewRetriever(embedder, vecRepo, cfg.semanticTimeout, cfg.logger)
	}

	var builder *hybrid.Builder
	if semRetriever != nil {
		builder = hybrid.NewBuilder(semRetriever, cfg.bm25K1, cfg.bm25B, cfg.rrfK, cfg.logger)
	} else {
		builder = hybrid.NewBuilder(nil, cfg.bm25K1, cfg.bm25B, cfg.rrfK, cfg.logger)
	}

	search := searchuc.New(
		participantrepo.New(store),
		func(ps []domain.Participant) (searchuc.Retriever, error) {
			return builder.Build(ps)
		},
		cfg.logger,
	)

	return &Client{store: store, search: search}, nil
}

// newWithService wires a client over an existing orchestrator. Test seam.
func newWithService(search *searchuc.Service) *Client {
	return &Client{search: search}
}

// Reload rebuilds the in-memory snapshot from the store. Must be called once
// before Search. Returns the number of participants indexed.
func (c *Client) Reload(ctx context.Context) (int, error) {
	return c.search.Reload(ctx)
}

// Search runs the hybrid pipeline over the current snapshot.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (*searchuc.Response, error) {
	var cfg searchOptions
	cfg.filters = filter.New()
	for _, opt := range opts {
		opt(&cfg)
	}

	req, err := request.New(query, cfg.topK, cfg.filters)
	if err != nil {
		return nil, err
	}
	return c.search.Search(ctx, &req)
}

// Participant returns one participant by id.
func (c *Client) Participant(ctx context.Context, id string) (domain.Participant, error) {
	return c.search.Participant(ctx, id)
}

// Ready reports whether a snapshot has been published.
func (c *Client) Ready() bool {
	return c.search.Ready()
}

// Close releases the underlying Redis connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}
