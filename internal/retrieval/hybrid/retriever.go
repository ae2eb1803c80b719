package hybrid

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

// overFetchFactor widens each sub-retriever's candidate pool before fusion, so
// a result ranked just outside topK in one ranking can still surface after
// fusion boosts it.
const overFetchFactor = 2

// subRetriever is one ranked candidate source feeding the fusion.
type subRetriever interface {
	Search(ctx context.Context, query string, topK int, f filter.Filters) ([]candidate.Candidate, error)
	Name() string
}

// Retriever runs the lexical and semantic retrievers concurrently and fuses
// their rankings.
type Retriever struct {
	lexical  subRetriever
	semantic subRetriever
	rrfK     int
	logger   *zap.Logger
}

// NewRetriever wires the two sub-retrievers. rrfK falls back to DefaultRRFK
// when not positive.
func NewRetriever(lexical, semantic subRetriever, rrfK int, logger *zap.Logger) *Retriever {
	if rrfK <= 0 {
		rrfK = DefaultRRFK
	}
	return &Retriever{lexical: lexical, semantic: semantic, rrfK: rrfK, logger: logger}
}

// Name identifies the fused ranking method.
func (r *Retriever) Name() string { return "hybrid_rrf" }

// Search fans out to both sub-retrievers, each fetching twice topK, and fuses
// the rankings lexical first. A lexical failure fails the whole search; the
// semantic retriever degrades internally and reports an empty ranking instead
// of an error when its collaborators are down.
func (r *Retriever) Search(
	ctx context.Context, query string, topK int, f filter.Filters,
) ([]candidate.Candidate, error) {
	fetchK := topK * overFetchFactor

	var lexicalRanked, semanticRanked []candidate.Candidate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lexicalRanked, err = r.lexical.Search(gctx, query, fetchK, f)
		return err
	})
	g.Go(func() error {
		var err error
		semanticRanked, err = r.semantic.Search(gctx, query, fetchK, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fused := fuse([][]candidate.Candidate{lexicalRanked, semanticRanked}, r.rrfK, topK)

	r.logger.Debug("hybrid search fused",
		zap.String("query", query),
		zap.Int(r.lexical.Name(), len(lexicalRanked)),
		zap.Int(r.semantic.Name(), len(semanticRanked)),
		zap.Int("fused", len(fused)),
	)

	return fused, nil
}
