package result

import "github.com/recruitr-hq/recruitr/internal/domain"

// Result is the final externally visible search hit: the full participant
// record with its fused score, dense rank and human-readable match reasons.
type Result struct {
	participant  domain.Participant
	score        float64
	rank         int
	method       string
	matchReasons []string
}

// New creates a search result.
func New(
	p domain.Participant, score float64, rank int,
	method string, matchReasons []string,
) Result {
	return Result{
		participant:  p,
		score:        score,
		rank:         rank,
		method:       method,
		matchReasons: matchReasons,
	}
}

// Participant returns the full participant record.
func (r *Result) Participant() domain.Participant { return r.participant }

// Score returns the fused relevance score.
func (r *Result) Score() float64 { return r.score }

// Rank returns the 1-based dense rank.
func (r *Result) Rank() int { return r.rank }

// Method returns the retrieval method that produced this result.
func (r *Result) Method() string { return r.method }

// MatchReasons returns the ordered match explanations (at most five).
func (r *Result) MatchReasons() []string { return r.matchReasons }
