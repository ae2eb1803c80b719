package sdk

import (
	"time"

	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
	"github.com/recruitr-hq/recruitr/internal/retrieval/hybrid"
	"github.com/recruitr-hq/recruitr/internal/retrieval/lexical"
	"github.com/recruitr-hq/recruitr/internal/retrieval/semantic"
)

type options struct {
	addrs            []string
	username         string
	password         string
	db               int
	readinessTimeout time.Duration

	apiKey     string
	baseURL    string
	model      string
	dimensions int
	provider   string

	bm25K1          float64
	bm25B           float64
	rrfK            int
	semanticTimeout time.Duration

	logger *zap.Logger
}

func defaultOptions() options {
	return options{
		readinessTimeout: defaultReadinessTimeout,
		model:            "text-embedding-3-small",
		dimensions:       1536,
		provider:         "openai",
		bm25K1:           lexical.DefaultK1,
		bm25B:            lexical.DefaultB,
		rrfK:             hybrid.DefaultRRFK,
		semanticTimeout:  semantic.DefaultTimeout,
		logger:           zap.NewNop(),
	}
}

// Option configures the client.
type Option func(*options)

// WithRedis sets the Redis connection parameters.
func WithRedis(addrs []string, password string) Option {
	return func(o *options) {
		o.addrs = addrs
		o.password = password
	}
}

// WithRedisAuth sets the Redis username and logical database.
func WithRedisAuth(username string, db int) Option {
	return func(o *options) {
		o.username = username
		o.db = db
	}
}

// WithEmbedding enables the semantic path with an OpenAI-compatible provider.
func WithEmbedding(apiKey, model string, dimensions int) Option {
	return func(o *options) {
		o.apiKey = apiKey
		if model != "" {
			o.model = model
		}
		if dimensions > 0 {
			o.dimensions = dimensions
		}
	}
}

// WithEmbeddingBaseURL overrides the provider endpoint.
func WithEmbeddingBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithRetrieval overrides the ranking parameters.
func WithRetrieval(bm25K1, bm25B float64, rrfK int) Option {
	return func(o *options) {
		o.bm25K1 = bm25K1
		o.bm25B = bm25B
		o.rrfK = rrfK
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

type searchOptions struct {
	topK    int
	filters filter.Filters
}

// SearchOption configures one search call.
type SearchOption func(*searchOptions)

// TopK limits the number of results. Defaults to the engine default.
func TopK(n int) SearchOption {
	return func(o *searchOptions) { o.topK = n }
}

// WithFilters applies explicit filters; they win over query-extracted ones.
func WithFilters(f filter.Filters) SearchOption {
	return func(o *searchOptions) { o.filters = f }
}
