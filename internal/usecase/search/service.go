// Package search orchestrates the participant search pipeline: prompt
// interpretation, query preprocessing, hybrid retrieval and result
// enrichment, over an atomically swappable corpus snapshot.
package search

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
	"github.com/recruitr-hq/recruitr/internal/domain/search/request"
	"github.com/recruitr-hq/recruitr/internal/domain/search/result"
	"github.com/recruitr-hq/recruitr/internal/retrieval/explain"
	"github.com/recruitr-hq/recruitr/internal/retrieval/interpret"
	"github.com/recruitr-hq/recruitr/internal/retrieval/queryproc"
)

// snapshot is an immutable view of the corpus and its retriever. Searches
// read one snapshot end to end; Reload publishes a replacement wholesale.
type snapshot struct {
	participants map[string]domain.Participant
	retriever    Retriever
}

// Response is what the orchestrator reports upward.
type Response struct {
	Query           string
	ExpandedQuery   string
	Results         []result.Result
	Count           int
	RetrievalTimeMs float64
	Method          string
	FiltersApplied  filter.Filters
}

// Service is the search orchestrator.
type Service struct {
	source      ParticipantSource
	build       RetrieverBuilder
	interpreter *interpret.Interpreter
	processor   *queryproc.Processor
	explainer   *explain.Explainer
	logger      *zap.Logger

	snap atomic.Pointer[snapshot]
}

// New creates a search service. Call Reload before serving searches.
func New(source ParticipantSource, build RetrieverBuilder, logger *zap.Logger) *Service {
	return &Service{
		source:      source,
		build:       build,
		interpreter: interpret.New(),
		processor:   queryproc.New(),
		explainer:   explain.NewExplainer(),
		logger:      logger,
	}
}

// Reload loads the corpus, rebuilds the retriever and swaps the snapshot in
// atomically. In-flight searches finish against the old snapshot. Returns the
// number of participants loaded.
func (s *Service) Reload(ctx context.Context) (int, error) {
	start := time.Now()

	participants, err := s.source.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load participants: %w", err)
	}

	retriever, err := s.build(participants)
	if err != nil {
		return 0, fmt.Errorf("build retriever: %w", err)
	}

	byID := make(map[string]domain.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID()] = p
	}

	s.snap.Store(&snapshot{participants: byID, retriever: retriever})

	s.logger.Info("search snapshot published",
		zap.Int("participants", len(participants)),
		zap.Duration("took", time.Since(start)),
	)
	return len(participants), nil
}

// Search runs the full pipeline. Lexical and fusion failures propagate; the
// semantic path degrades inside the retriever. Candidates whose participant
// record has vanished between index build and query are skipped and the
// remaining results re-ranked densely.
func (s *Service) Search(ctx context.Context, req *request.Request) (*Response, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, domain.ErrIndexNotReady
	}

	start := time.Now()

	cleaned, extracted := s.interpreter.Extract(req.Query())
	processed := s.processor.Process(cleaned)

	// Explicit filters win over extracted ones per key.
	merged := extracted.Merge(req.Filters())

	s.logger.Debug("search pipeline prepared",
		zap.String("query", req.Query()),
		zap.String("expanded", processed.Expanded),
	)

	candidates, err := snap.retriever.Search(ctx, processed.Expanded, req.TopK(), merged)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	results := make([]result.Result, 0, len(candidates))
	for _, c := range candidates {
		p, ok := snap.participants[c.ParticipantID()]
		if !ok {
			s.logger.Warn("candidate without participant record, skipping",
				zap.String("participant_id", c.ParticipantID()),
			)
			continue
		}
		reasons := s.explainer.Explain(&p, merged, processed.Terms)
		results = append(results, result.New(
			p, c.Score(), len(results)+1, snap.retriever.Name(), reasons,
		))
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	s.logger.Info("search completed",
		zap.String("query", req.Query()),
		zap.Int("results", len(results)),
		zap.Float64("retrieval_time_ms", elapsed),
	)

	return &Response{
		Query:           req.Query(),
		ExpandedQuery:   processed.Expanded,
		Results:         results,
		Count:           len(results),
		RetrievalTimeMs: elapsed,
		Method:          snap.retriever.Name(),
		FiltersApplied:  merged,
	}, nil
}

// Participant returns one participant by id from the backing store.
func (s *Service) Participant(ctx context.Context, id string) (domain.Participant, error) {
	return s.source.Get(ctx, id)
}

// Ready reports whether a snapshot has been published.
func (s *Service) Ready() bool {
	return s.snap.Load() != nil
}
