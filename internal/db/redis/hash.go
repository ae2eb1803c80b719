package redis

import (
	"context"

	"github.com/recruitr-hq/recruitr/internal/db"
)

// HSet writes hash fields at the given key.
func (s *Store) HSet(ctx context.Context, key string, fields map[string]string) error {
	builder := s.b().Hset().Key(key).FieldValue()
	for field, value := range fields {
		builder = builder.FieldValue(field, value)
	}
	if err := s.do(ctx, builder.Build()).Error(); err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	return nil
}
