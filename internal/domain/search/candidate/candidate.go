package candidate

// Candidate is a single scored hit from one retriever. Score scales differ
// between retrievers (BM25 vs cosine similarity) and must only be compared
// within one retriever's result list.
type Candidate struct {
	participantID string
	score         float64
	rank          int
}

// New creates an unranked candidate.
func New(participantID string, score float64) Candidate {
	return Candidate{participantID: participantID, score: score}
}

// ParticipantID returns the matched participant's identifier.
func (c *Candidate) ParticipantID() string { return c.participantID }

// Score returns the retriever-specific relevance score.
func (c *Candidate) Score() float64 { return c.score }

// Rank returns the 1-based dense rank within the result list.
func (c *Candidate) Rank() int { return c.rank }

// RankDense assigns dense 1..N ranks in slice order.
func RankDense(cs []Candidate) {
	for i := range cs {
		cs[i].rank = i + 1
	}
}
