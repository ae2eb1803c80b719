package search

import (
	"context"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

// ParticipantSource reads participant profiles from the backing store. The
// search path never writes to it.
type ParticipantSource interface {
	List(ctx context.Context) ([]domain.Participant, error)
	Get(ctx context.Context, id string) (domain.Participant, error)
}

// Retriever produces a ranked candidate list for a query.
type Retriever interface {
	Search(ctx context.Context, query string, topK int, f filter.Filters) ([]candidate.Candidate, error)
	Name() string
}

// RetrieverBuilder constructs a retriever over a participant snapshot. Called
// at startup and on every reload.
type RetrieverBuilder func(participants []domain.Participant) (Retriever, error)
