package hybrid

import (
	"context"

	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
	"github.com/recruitr-hq/recruitr/internal/retrieval/lexical"
)

// Builder constructs a hybrid retriever for a participant snapshot. The
// semantic retriever is long-lived; only the BM25 index is rebuilt per
// snapshot.
type Builder struct {
	semantic subRetriever
	k1       float64
	b        float64
	rrfK     int
	logger   *zap.Logger
}

// NewBuilder wires the snapshot-independent pieces once. A nil semantic
// retriever disables the vector path; search runs keyword-only.
func NewBuilder(semantic subRetriever, k1, b float64, rrfK int, logger *zap.Logger) *Builder {
	if semantic == nil {
		semantic = disabledRetriever{}
	}
	return &Builder{semantic: semantic, k1: k1, b: b, rrfK: rrfK, logger: logger}
}

// disabledRetriever stands in for the semantic path when no embedding
// provider is configured. It always reports an empty ranking.
type disabledRetriever struct{}

func (disabledRetriever) Search(
	context.Context, string, int, filter.Filters,
) ([]candidate.Candidate, error) {
	return nil, nil
}

func (disabledRetriever) Name() string { return "semantic_disabled" }

// Build indexes the participants for keyword search and pairs the result with
// the shared semantic retriever.
func (b *Builder) Build(participants []domain.Participant) (*Retriever, error) {
	lex := lexical.NewRetriever(participants, b.k1, b.b, b.logger)
	return NewRetriever(lex, b.semantic, b.rrfK, b.logger), nil
}
