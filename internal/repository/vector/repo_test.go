package vector

import (
	"context"
	"errors"
	"testing"

	"github.com/recruitr-hq/recruitr/internal/db"
	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

func sample() domain.Participant {
	return domain.Reconstruct(
		"p1", "Avery", "Product Manager", "Technology", "Acme", "50-200",
		true, 6, 8,
		[]string{"Figma", "Slack"}, []string{"Roadmapping"}, "desc",
	)
}

func TestEnsureIndex_CreatesHNSWSchema(t *testing.T) {
	var gotDef *db.IndexDefinition
	store := &mockStore{
		createIndexFn: func(_ context.Context, def *db.IndexDefinition) error {
			gotDef = def
			return nil
		},
	}

	if err := New(store, 1536).EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDef.Name != "recruitr_participants_vec" {
		t.Errorf("index name = %s", gotDef.Name)
	}
	var vec *db.IndexField
	for i := range gotDef.Fields {
		if gotDef.Fields[i].Type == db.IndexFieldVector {
			vec = &gotDef.Fields[i]
		}
	}
	if vec == nil {
		t.Fatal("no vector field in schema")
	}
	if vec.VectorDim != 1536 || vec.VectorAlgo != db.VectorHNSW || vec.VectorDistance != db.DistanceCosine {
		t.Errorf("unexpected vector field: %+v", vec)
	}
}

func TestEnsureIndex_ExistingIndexIsFine(t *testing.T) {
	store := &mockStore{
		createIndexFn: func(context.Context, *db.IndexDefinition) error {
			return db.ErrIndexExists
		},
	}

	if err := New(store, 8).EnsureIndex(context.Background()); err != nil {
		t.Errorf("existing index should not error, got %v", err)
	}
}

func TestIndexParticipant_FieldMapping(t *testing.T) {
	var gotKey string
	var gotFields map[string]string
	store := &mockStore{
		hsetFn: func(_ context.Context, key string, fields map[string]string) error {
			gotKey, gotFields = key, fields
			return nil
		},
	}

	p := sample()
	embedding := []float32{0.1, 0.2, 0.3, 0.4}
	if err := New(store, 4).IndexParticipant(context.Background(), &p, embedding); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != "recruitr:vec:p1" {
		t.Errorf("key = %s", gotKey)
	}
	if gotFields["remote"] != "true" || gotFields["tools"] != "Figma,Slack" {
		t.Errorf("unexpected fields: %v", gotFields)
	}
	if gotFields["team_size"] != "6" || gotFields["experience_years"] != "8" {
		t.Errorf("unexpected numerics: %v", gotFields)
	}
	if len(gotFields["vector"]) != 16 {
		t.Errorf("vector blob length = %d, want 16", len(gotFields["vector"]))
	}
}

func TestIndexParticipant_DimensionMismatch(t *testing.T) {
	p := sample()
	err := New(&mockStore{}, 4).IndexParticipant(context.Background(), &p, []float32{0.1})
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestSearch_MapsEntriesAndAppliesFloor(t *testing.T) {
	var gotQuery *db.KNNQuery
	store := &mockStore{
		searchKNNFn: func(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
			gotQuery = q
			return &db.SearchResult{
				Total: 3,
				Entries: []db.SearchEntry{
					{Key: "recruitr:vec:a", Score: 0.92},
					{Key: "recruitr:vec:b", Score: 0.41},
					{Key: "recruitr:vec:c", Score: 0.10},
				},
			}, nil
		},
	}

	f := filter.New().WithRemote(true)
	got, err := New(store, 4).Search(context.Background(), []float32{0.1, 0.2, 0.3, 0.4}, 0.3, 10, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery.K != 10 || gotQuery.IndexName != "recruitr_participants_vec" {
		t.Errorf("unexpected query: %+v", gotQuery)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates above floor, got %d", len(got))
	}
	if got[0].ParticipantID() != "a" || got[1].ParticipantID() != "b" {
		t.Errorf("unexpected ids: %s, %s", got[0].ParticipantID(), got[1].ParticipantID())
	}
}

func TestSearch_WrapsUnavailable(t *testing.T) {
	store := &mockStore{
		searchKNNFn: func(context.Context, *db.KNNQuery) (*db.SearchResult, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := New(store, 4).Search(context.Background(), []float32{0.1}, 0, 10, filter.New())
	if !errors.Is(err, domain.ErrVectorSearchUnavailable) {
		t.Errorf("expected ErrVectorSearchUnavailable, got %v", err)
	}
}
