package hybrid

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
	"github.com/recruitr-hq/recruitr/internal/retrieval/lexical"
)

type stubRetriever struct {
	name       string
	candidates []candidate.Candidate
	err        error
	gotTopK    int
}

func (s *stubRetriever) Search(
	_ context.Context, _ string, topK int, _ filter.Filters,
) ([]candidate.Candidate, error) {
	s.gotTopK = topK
	return s.candidates, s.err
}

func (s *stubRetriever) Name() string { return s.name }

func ranked(ids ...string) []candidate.Candidate {
	cs := make([]candidate.Candidate, 0, len(ids))
	for _, id := range ids {
		cs = append(cs, candidate.New(id, 1.0))
	}
	candidate.RankDense(cs)
	return cs
}

func TestFuse_ScoresAndOrder(t *testing.T) {
	const k = 60

	fused := fuse([][]candidate.Candidate{
		ranked("A", "B", "C"),
		ranked("B", "A", "D"),
	}, k, 10)

	if len(fused) != 4 {
		t.Fatalf("expected 4 fused candidates, got %d", len(fused))
	}

	wantScores := map[string]float64{
		"A": 1.0/(k+1) + 1.0/(k+2),
		"B": 1.0/(k+2) + 1.0/(k+1),
		"C": 1.0 / (k + 3),
		"D": 1.0 / (k + 3),
	}
	for _, c := range fused {
		want := wantScores[c.ParticipantID()]
		if math.Abs(c.Score()-want) > 1e-12 {
			t.Errorf("score(%s) = %v, want %v", c.ParticipantID(), c.Score(), want)
		}
	}

	// A and B tie exactly; A was seen first (lexical ranking) so it wins. C
	// and D tie too, C first.
	wantOrder := []string{"A", "B", "C", "D"}
	for i, id := range wantOrder {
		if fused[i].ParticipantID() != id {
			t.Errorf("position %d = %s, want %s", i, fused[i].ParticipantID(), id)
		}
	}
	for i, c := range fused {
		if c.Rank() != i+1 {
			t.Errorf("rank at %d = %d, want %d", i, c.Rank(), i+1)
		}
	}
}

func TestFuse_BothRankingsBeatOne(t *testing.T) {
	// X appears mid-list in both rankings, Y tops just one. X's summed
	// contributions should outrank Y.
	fused := fuse([][]candidate.Candidate{
		ranked("Y", "X"),
		ranked("X", "Z"),
	}, DefaultRRFK, 10)

	if fused[0].ParticipantID() != "X" {
		t.Errorf("expected X first, got %s", fused[0].ParticipantID())
	}
}

func TestFuse_Truncates(t *testing.T) {
	fused := fuse([][]candidate.Candidate{
		ranked("A", "B", "C", "D", "E"),
	}, DefaultRRFK, 2)

	if len(fused) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(fused))
	}
	if fused[0].ParticipantID() != "A" || fused[1].ParticipantID() != "B" {
		t.Errorf("unexpected order: %s, %s", fused[0].ParticipantID(), fused[1].ParticipantID())
	}
}

func TestFuse_Empty(t *testing.T) {
	fused := fuse([][]candidate.Candidate{nil, nil}, DefaultRRFK, 10)
	if len(fused) != 0 {
		t.Errorf("expected no candidates, got %d", len(fused))
	}
}

func TestSearch_OverFetchesAndFuses(t *testing.T) {
	lex := &stubRetriever{name: "bm25", candidates: ranked("A", "B")}
	sem := &stubRetriever{name: "semantic", candidates: ranked("B", "C")}
	r := NewRetriever(lex, sem, DefaultRRFK, zap.NewNop())

	fused, err := r.Search(context.Background(), "query", 5, filter.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lex.gotTopK != 10 || sem.gotTopK != 10 {
		t.Errorf("sub-retrievers should fetch 2x topK, got %d and %d", lex.gotTopK, sem.gotTopK)
	}
	if len(fused) != 3 {
		t.Fatalf("expected 3 fused candidates, got %d", len(fused))
	}
	if fused[0].ParticipantID() != "B" {
		t.Errorf("B appears in both rankings and should lead, got %s", fused[0].ParticipantID())
	}
}

func TestSearch_LexicalErrorPropagates(t *testing.T) {
	wantErr := errors.New("index corrupt")
	lex := &stubRetriever{name: "bm25", err: wantErr}
	sem := &stubRetriever{name: "semantic", candidates: ranked("A")}
	r := NewRetriever(lex, sem, DefaultRRFK, zap.NewNop())

	_, err := r.Search(context.Background(), "query", 5, filter.New())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected lexical error to propagate, got %v", err)
	}
}

func TestSearch_EmptySemanticStillReturnsLexical(t *testing.T) {
	lex := &stubRetriever{name: "bm25", candidates: ranked("A", "B")}
	sem := &stubRetriever{name: "semantic"}
	r := NewRetriever(lex, sem, DefaultRRFK, zap.NewNop())

	fused, err := r.Search(context.Background(), "query", 5, filter.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fused) != 2 || fused[0].ParticipantID() != "A" {
		t.Errorf("expected lexical ranking to pass through, got %+v", fused)
	}
}

func TestBuilder_NilSemanticRunsKeywordOnly(t *testing.T) {
	b := NewBuilder(nil, lexical.DefaultK1, lexical.DefaultB, DefaultRRFK, zap.NewNop())

	r, err := b.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	fused, err := r.Search(context.Background(), "product manager", 5, filter.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fused) != 0 {
		t.Errorf("empty corpus should yield no candidates, got %+v", fused)
	}
}
