// Package lexical implements BM25 keyword retrieval over an in-memory
// participant corpus with field-weighted document synthesis.
package lexical

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

// Retriever scores queries against a BM25 index and applies structured
// filters after scoring.
type Retriever struct {
	index        *Index
	participants map[string]domain.Participant
	logger       *zap.Logger
}

// NewRetriever builds the BM25 index for the given participants.
func NewRetriever(participants []domain.Participant, k1, b float64, logger *zap.Logger) *Retriever {
	byID := make(map[string]domain.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID()] = p
	}

	idx := BuildIndex(participants, k1, b)
	logger.Info("BM25 index built",
		zap.Int("documents", idx.Len()),
		zap.Float64("k1", k1),
		zap.Float64("b", b),
	)

	return &Retriever{index: idx, participants: byID, logger: logger}
}

// Name identifies this retriever in fused rankings.
func (r *Retriever) Name() string { return "bm25" }

// Search scores the query against every document, keeps strictly positive
// scores, applies filters over the full candidate set and only then truncates
// to topK, so rank position reflects relevance among the filtered subset.
// Ranks are reassigned densely after truncation.
func (r *Retriever) Search(
	_ context.Context, query string, topK int, f filter.Filters,
) ([]candidate.Candidate, error) {
	tokens := tokenize(query)
	if len(tokens) == 0 || r.index.Len() == 0 {
		return nil, nil
	}

	scores := r.index.Scores(tokens)

	// Candidates in corpus order; the stable sort below keeps corpus order as
	// the deterministic tie-break for equal scores.
	candidates := make([]candidate.Candidate, 0, len(scores))
	for i, score := range scores {
		if score > 0 {
			candidates = append(candidates, candidate.New(r.index.IDs()[i], score))
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score() > candidates[j].Score()
	})

	if !f.IsEmpty() {
		filtered := candidates[:0]
		for _, c := range candidates {
			p, ok := r.participants[c.ParticipantID()]
			if !ok {
				continue
			}
			if f.Matches(&p) {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	candidate.RankDense(candidates)

	r.logger.Debug("BM25 search done",
		zap.String("query", query),
		zap.Int("results", len(candidates)),
	)

	return candidates, nil
}
