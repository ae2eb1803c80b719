// Package semantic retrieves participants by embedding similarity through an
// external embedding provider and a vector search collaborator.
package semantic

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

// DefaultTimeout bounds one semantic search round trip, embedding call
// included.
const DefaultTimeout = 2 * time.Second

// similarityFloor of zero returns every neighbor ranked by similarity; the
// fusion stage decides what survives.
const similarityFloor = 0.0

// VectorSearcher finds the nearest indexed participants to a query embedding.
// Filters are pushed down so the store prunes before the KNN scan.
type VectorSearcher interface {
	Search(ctx context.Context, embedding []float32, floor float64, maxResults int, f filter.Filters) ([]candidate.Candidate, error)
}

// Retriever embeds the query and searches the vector index. It degrades to an
// empty ranking on any failure so keyword retrieval keeps working when the
// embedding provider or vector store is down.
type Retriever struct {
	embedder domain.Embedder
	vectors  VectorSearcher
	timeout  time.Duration
	logger   *zap.Logger
}

// NewRetriever wires the embedding provider and vector searcher. timeout
// falls back to DefaultTimeout when not positive.
func NewRetriever(embedder domain.Embedder, vectors VectorSearcher, timeout time.Duration, logger *zap.Logger) *Retriever {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Retriever{embedder: embedder, vectors: vectors, timeout: timeout, logger: logger}
}

// Name identifies this retriever in fused rankings.
func (r *Retriever) Name() string { return "semantic" }

// Search embeds the query and runs a filtered nearest-neighbor lookup. Every
// failure path logs a warning and returns an empty ranking with a nil error.
func (r *Retriever) Search(
	ctx context.Context, query string, topK int, f filter.Filters,
) ([]candidate.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	embedded, err := r.embedder.Embed(ctx, query)
	if err != nil {
		r.logger.Warn("semantic search degraded, embedding failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, nil
	}

	candidates, err := r.vectors.Search(ctx, embedded.Embedding, similarityFloor, topK, f)
	if err != nil {
		r.logger.Warn("semantic search degraded, vector search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, nil
	}

	candidate.RankDense(candidates)

	r.logger.Debug("semantic search done",
		zap.String("query", query),
		zap.Int("results", len(candidates)),
	)

	return candidates, nil
}
