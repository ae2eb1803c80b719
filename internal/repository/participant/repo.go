// Package participant persists participant profiles as JSON documents with a
// set-based roster of ids.
package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/recruitr-hq/recruitr/internal/db"
	"github.com/recruitr-hq/recruitr/internal/domain"
)

const (
	keyPrefix = "recruitr:participant:"
	rosterKey = "recruitr:participants"
)

// store is the consumer interface for participant persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) error
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements participant storage over db.Store.
type Repo struct {
	store store
}

// New creates a participant repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Put stores the participant document and registers its id in the roster.
func (r *Repo) Put(ctx context.Context, p *domain.Participant) error {
	data, err := json.Marshal(fromDomain(p))
	if err != nil {
		return fmt.Errorf("marshal participant %s: %w", p.ID(), err)
	}

	key := keyPrefix + p.ID()
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, rosterKey, p.ID()); err != nil {
		return fmt.Errorf("roster add %s: %w", p.ID(), err)
	}
	return nil
}

// Get returns one participant by id.
func (r *Repo) Get(ctx context.Context, id string) (domain.Participant, error) {
	key := keyPrefix + id
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.Participant{}, domain.ErrParticipantNotFound
		}
		return domain.Participant{}, fmt.Errorf("json.get %s: %w", key, err)
	}
	return parseDoc(id, raw)
}

// Delete removes the participant document and its roster entry.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := keyPrefix + id
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.SRem(ctx, rosterKey, id); err != nil {
		return fmt.Errorf("roster remove %s: %w", id, err)
	}
	return nil
}

// List loads every registered participant, sorted by id so corpus order is
// stable across reloads. Roster entries whose document vanished are skipped.
func (r *Repo) List(ctx context.Context) ([]domain.Participant, error) {
	ids, err := r.store.SMembers(ctx, rosterKey)
	if err != nil {
		return nil, fmt.Errorf("roster list: %w", err)
	}
	sort.Strings(ids)

	participants := make([]domain.Participant, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrParticipantNotFound) {
				continue
			}
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// parseDoc unmarshals a JSON.GET payload. With the "$" path the server wraps
// the document in a one-element array.
func parseDoc(id string, raw []byte) (domain.Participant, error) {
	var docs []participantDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		var doc participantDoc
		if err2 := json.Unmarshal(raw, &doc); err2 != nil {
			return domain.Participant{}, fmt.Errorf("unmarshal participant %s: %w", id, err)
		}
		return doc.toDomain(id), nil
	}
	if len(docs) == 0 {
		return domain.Participant{}, domain.ErrParticipantNotFound
	}
	return docs[0].toDomain(id), nil
}
