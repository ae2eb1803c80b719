package participant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/recruitr-hq/recruitr/internal/db"
	"github.com/recruitr-hq/recruitr/internal/domain"
)

func sample() domain.Participant {
	return domain.Reconstruct(
		"p1", "Avery", "Product Manager", "Technology", "Acme", "50-200",
		true, 6, 8,
		[]string{"Figma"}, []string{"Roadmapping"}, "Owns discovery",
	)
}

func TestPut_WritesDocAndRoster(t *testing.T) {
	var gotKey, gotPath string
	var gotData []byte
	var rosterMembers []string

	store := &mockStore{
		jsonSetFn: func(_ context.Context, key, path string, data []byte) error {
			gotKey, gotPath, gotData = key, path, data
			return nil
		},
		sAddFn: func(_ context.Context, _ string, members ...string) error {
			rosterMembers = members
			return nil
		},
	}

	p := sample()
	if err := New(store).Put(context.Background(), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != "recruitr:participant:p1" || gotPath != "$" {
		t.Errorf("wrote to %s %s", gotKey, gotPath)
	}
	if len(rosterMembers) != 1 || rosterMembers[0] != "p1" {
		t.Errorf("roster members = %v", rosterMembers)
	}

	var doc participantDoc
	if err := json.Unmarshal(gotData, &doc); err != nil {
		t.Fatalf("stored payload is not JSON: %v", err)
	}
	if doc.Role != "Product Manager" || !doc.Remote || doc.ExperienceYears != 8 {
		t.Errorf("unexpected doc: %+v", doc)
	}
}

func TestGet_WrappedArrayPayload(t *testing.T) {
	store := &mockStore{
		jsonGetFn: func(_ context.Context, key string, _ ...string) ([]byte, error) {
			if key != "recruitr:participant:p1" {
				t.Errorf("unexpected key %s", key)
			}
			return []byte(`[{"id":"p1","role":"Product Manager","remote":true,"tools":["Figma"]}]`), nil
		},
	}

	p, err := New(store).Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "p1" || p.Role() != "Product Manager" || !p.Remote() {
		t.Errorf("unexpected participant: %+v", p)
	}
}

func TestGet_NotFound(t *testing.T) {
	store := &mockStore{
		jsonGetFn: func(context.Context, string, ...string) ([]byte, error) {
			return nil, db.ErrKeyNotFound
		},
	}

	_, err := New(store).Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestList_SortedAndSkipsVanished(t *testing.T) {
	docs := map[string]string{
		"recruitr:participant:a": `[{"id":"a","role":"Engineer","remote":false}]`,
		"recruitr:participant:c": `[{"id":"c","role":"Designer","remote":true}]`,
	}
	store := &mockStore{
		sMembersFn: func(context.Context, string) ([]string, error) {
			return []string{"c", "b", "a"}, nil
		},
		jsonGetFn: func(_ context.Context, key string, _ ...string) ([]byte, error) {
			raw, ok := docs[key]
			if !ok {
				return nil, db.ErrKeyNotFound
			}
			return []byte(raw), nil
		},
	}

	got, err := New(store).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(got))
	}
	if got[0].ID() != "a" || got[1].ID() != "c" {
		t.Errorf("expected sorted ids a,c got %s,%s", got[0].ID(), got[1].ID())
	}
}

func TestList_StoreErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection reset")
	store := &mockStore{
		sMembersFn: func(context.Context, string) ([]string, error) {
			return nil, wantErr
		},
	}

	_, err := New(store).List(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestDelete_RemovesDocAndRoster(t *testing.T) {
	var deleted string
	var removed []string
	store := &mockStore{
		delFn: func(_ context.Context, key string) error {
			deleted = key
			return nil
		},
		sRemFn: func(_ context.Context, _ string, members ...string) error {
			removed = members
			return nil
		},
	}

	if err := New(store).Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "recruitr:participant:p1" {
		t.Errorf("deleted key = %s", deleted)
	}
	if len(removed) != 1 || removed[0] != "p1" {
		t.Errorf("roster removal = %v", removed)
	}
}
