// Package vector manages the participant embedding index and serves filtered
// nearest-neighbor lookups for the semantic retriever.
package vector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recruitr-hq/recruitr/internal/db"
	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

const (
	indexName = "recruitr_participants_vec"
	keyPrefix = "recruitr:vec:"

	hnswM           = 16
	hnswEFConstruct = 200
)

// store is the consumer interface for vector persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	Del(ctx context.Context, key string) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements vector index management and semantic.VectorSearcher.
type Repo struct {
	store store
	dim   int
}

// New creates a vector repository for embeddings of the given dimension.
func New(s store, dim int) *Repo {
	return &Repo{store: s, dim: dim}
}

// EnsureIndex creates the HNSW index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := &db.IndexDefinition{
		Name:     indexName,
		Prefixes: []string{keyPrefix},
		Fields: []db.IndexField{
			{Name: "remote", Type: db.IndexFieldTag},
			{Name: "tools", Type: db.IndexFieldTag, TagSeparator: ","},
			{Name: "role", Type: db.IndexFieldText},
			{Name: "team_size", Type: db.IndexFieldNumeric},
			{Name: "company_size", Type: db.IndexFieldTag},
			{Name: "experience_years", Type: db.IndexFieldNumeric},
			{
				Name:              "vector",
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         r.dim,
				VectorDistance:    db.DistanceCosine,
				VectorM:           hnswM,
				VectorEFConstruct: hnswEFConstruct,
			},
		},
	}

	err := r.store.CreateIndex(ctx, def)
	if errors.Is(err, db.ErrIndexExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create vector index: %w", err)
	}
	return nil
}

// IndexParticipant stores the participant's embedding with the filterable
// attributes alongside it.
func (r *Repo) IndexParticipant(ctx context.Context, p *domain.Participant, embedding []float32) error {
	if len(embedding) != r.dim {
		return fmt.Errorf("embedding dimension %d, index expects %d", len(embedding), r.dim)
	}

	key := keyPrefix + p.ID()
	if err := r.store.HSet(ctx, key, buildHashFields(p, embedding)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Remove drops a participant's vector document.
func (r *Repo) Remove(ctx context.Context, id string) error {
	key := keyPrefix + id
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Search runs a filtered KNN lookup and keeps hits at or above floor. Errors
// wrap ErrVectorSearchUnavailable so callers can distinguish collaborator
// outage from bad input.
func (r *Repo) Search(
	ctx context.Context, embedding []float32, floor float64, maxResults int, f filter.Filters,
) ([]candidate.Candidate, error) {
	result, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    indexName,
		Vector:       embedding,
		K:            maxResults,
		Filters:      f,
		ReturnFields: []string{"__vector_score"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrVectorSearchUnavailable, err)
	}

	candidates := make([]candidate.Candidate, 0, len(result.Entries))
	for _, entry := range result.Entries {
		if entry.Score < floor {
			continue
		}
		candidates = append(candidates, candidate.New(idFromKey(entry.Key), entry.Score))
	}
	return candidates, nil
}

func idFromKey(key string) string {
	return strings.TrimPrefix(key, keyPrefix)
}
